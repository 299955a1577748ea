package bonsai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthyStats() Stats {
	return Stats{Water: 70, Hunger: 30, Energy: 70, Cleanliness: 70, Hydration: 70, PruningQuality: 70}
}

func droughtStats() Stats {
	s := healthyStats()
	s.Water = 5
	s.Hydration = 5
	return s
}

func TestOnsetRequiresDwellTime(t *testing.T) {
	h := newHealthMachine(3, 3)

	// Two bad ticks are not enough.
	assert.False(t, h.step(droughtStats()))
	assert.False(t, h.step(droughtStats()))
	assert.Equal(t, Healthy, h.current)

	// The third consecutive bad tick commits.
	assert.True(t, h.step(droughtStats()))
	assert.Equal(t, Drought, h.current)
}

func TestSingleGoodTickResetsOnset(t *testing.T) {
	h := newHealthMachine(3, 3)

	h.step(droughtStats())
	h.step(droughtStats())
	h.step(healthyStats()) // trigger clears; count restarts

	h.step(droughtStats())
	h.step(droughtStats())
	assert.Equal(t, Healthy, h.current)
	assert.True(t, h.step(droughtStats()))
	assert.Equal(t, Drought, h.current)
}

func TestRecoveryRequiresDwellTime(t *testing.T) {
	h := newHealthMachine(1, 3)
	require.True(t, h.step(droughtStats()))
	require.Equal(t, Drought, h.current)

	// One good tick is not recovery.
	assert.False(t, h.step(healthyStats()))
	assert.Equal(t, Drought, h.current)

	// A relapse resets the recovery count.
	h.step(droughtStats())
	h.step(healthyStats())
	h.step(healthyStats())
	assert.Equal(t, Drought, h.current)

	// Three consecutive good ticks recover.
	assert.True(t, h.step(healthyStats()))
	assert.Equal(t, Healthy, h.current)
}

func TestConditionPriority(t *testing.T) {
	s := healthyStats()
	s.Energy = 5
	s.Hunger = 95
	s.Cleanliness = 5 // pests also triggered, blight wins

	h := newHealthMachine(1, 1)
	require.True(t, h.step(s))
	assert.Equal(t, Blight, h.current)
}

func TestTriggers(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Stats)
		condition Condition
	}{
		{"low water", func(s *Stats) { s.Water = 10 }, Drought},
		{"low hydration", func(s *Stats) { s.Hydration = 5 }, Drought},
		{"waterlogged", func(s *Stats) { s.Water = 99; s.Hydration = 95 }, Overwatered},
		{"dirty", func(s *Stats) { s.Cleanliness = 10 }, Pests},
		{"starved and exhausted", func(s *Stats) { s.Energy = 5; s.Hunger = 95 }, Blight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := healthyStats()
			tt.mutate(&s)
			assert.True(t, tt.condition.triggered(s))
			assert.False(t, tt.condition.triggered(healthyStats()))
		})
	}
}

func TestParseConditionRoundTrip(t *testing.T) {
	for c := Healthy; c <= Pests; c++ {
		parsed, err := ParseCondition(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	_, err := ParseCondition("mildew")
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
