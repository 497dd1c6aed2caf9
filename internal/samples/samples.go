// Package samples holds the embedded bank of topics, sample requests, and
// the sample essay used to pre-fill a submission.
package samples

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed bank.yml
var rawBank []byte

// Topic is one essay topic together with its suggested requests.
type Topic struct {
	Name     string   `yaml:"name" json:"name"`
	Requests []string `yaml:"requests" json:"requests"`
}

type bankFile struct {
	Topics      []Topic `yaml:"topics"`
	SampleEssay string  `yaml:"sample_essay"`
}

// Bank is the loaded sample bank. Immutable after Load.
type Bank struct {
	topics []Topic
	essay  string
}

// Load parses the embedded bank.
func Load() (*Bank, error) {
	var file bankFile
	if err := yaml.Unmarshal(rawBank, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	if len(file.Topics) == 0 {
		return nil, fmt.Errorf("sample bank has no topics")
	}
	return &Bank{topics: file.Topics, essay: file.SampleEssay}, nil
}

// Topics returns every topic with its sample requests.
func (b *Bank) Topics() []Topic {
	return b.topics
}

// TopicNames returns the topic names in bank order.
func (b *Bank) TopicNames() []string {
	names := make([]string, 0, len(b.topics))
	for _, topic := range b.topics {
		names = append(names, topic.Name)
	}
	return names
}

// Requests returns the sample requests for a topic name.
func (b *Bank) Requests(topic string) ([]string, bool) {
	for _, t := range b.topics {
		if t.Name == topic {
			return t.Requests, true
		}
	}
	return nil, false
}

// Essay returns the sample essay text.
func (b *Bank) Essay() string {
	return b.essay
}
