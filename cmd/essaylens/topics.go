package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvnguyen/essaylens/internal/samples"
)

func newTopicsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List available topics and their sample requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := samples.Load()
			if err != nil {
				return fmt.Errorf("samples.Load() > %w", err)
			}

			out := cmd.OutOrStdout()
			for _, topic := range bank.Topics() {
				fmt.Fprintln(out, topic.Name)
				for _, request := range topic.Requests {
					fmt.Fprintf(out, "  - %s\n", request)
				}
			}
			return nil
		},
	}
}

func newSampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample essay",
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := samples.Load()
			if err != nil {
				return fmt.Errorf("samples.Load() > %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), bank.Essay())
			return nil
		},
	}
}
