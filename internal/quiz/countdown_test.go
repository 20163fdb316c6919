package quiz_test

import (
	"testing"

	"github.com/lshigami/assessflow/internal/quiz"
	"github.com/stretchr/testify/assert"
)

func TestCountdown(t *testing.T) {
	const timeLimit = 2
	c := quiz.NewCountdown(timeLimit * 60)
	assert.Equal(t, 120, c.Remaining())

	for i := 0; i < 60; i++ {
		assert.False(t, c.Tick())
	}
	assert.Equal(t, timeLimit*60-60, c.Remaining())

	fired := 0
	for i := 0; i < 100; i++ {
		if c.Tick() {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, c.Remaining())
	assert.True(t, c.Expired())
}

func TestCountdownNegativeStart(t *testing.T) {
	c := quiz.NewCountdown(-5)
	assert.Equal(t, 0, c.Remaining())
	assert.True(t, c.Tick())
	assert.False(t, c.Tick())
}
