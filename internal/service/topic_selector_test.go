package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCatalog = []string{"Loops", "Arrays", "Recursion"}

func TestTopicSelector_DrawCountAndMembership(t *testing.T) {
	s := NewTopicSelector(testCatalog, rand.New(rand.NewSource(1)))

	topics := s.Draw(8)
	assert.Len(t, topics, 8)
	for _, topic := range topics {
		assert.Contains(t, testCatalog, topic)
	}
}

func TestTopicSelector_DeterministicWithSeed(t *testing.T) {
	a := NewTopicSelector(testCatalog, rand.New(rand.NewSource(42)))
	b := NewTopicSelector(testCatalog, rand.New(rand.NewSource(42)))

	assert.Equal(t, a.Draw(10), b.Draw(10))
}

func TestTopicSelector_AllowsRepeats(t *testing.T) {
	// 目錄只有一個主題時，抽 N 次必定重複
	s := NewTopicSelector([]string{"Only"}, rand.New(rand.NewSource(7)))
	assert.Equal(t, []string{"Only", "Only", "Only"}, s.Draw(3))
}
