package samples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	bank, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Energy",
		"Radiation Tech",
		"Agriculture and Food Security",
		"Water and Environment",
	}, bank.TopicNames())

	for _, topic := range bank.Topics() {
		assert.NotEmpty(t, topic.Requests, "topic %q has no requests", topic.Name)
	}

	assert.NotEmpty(t, bank.Essay())
}

func TestBank_Requests(t *testing.T) {
	bank, err := Load()
	require.NoError(t, err)

	t.Run("Known topic", func(t *testing.T) {
		requests, ok := bank.Requests("Energy")
		assert.True(t, ok)
		assert.NotEmpty(t, requests)
	})

	t.Run("Unknown topic", func(t *testing.T) {
		requests, ok := bank.Requests("Space Exploration")
		assert.False(t, ok)
		assert.Nil(t, requests)
	})
}
