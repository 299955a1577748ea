package bonsai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// statsWithWellbeing builds stats whose composite score equals the given
// value, since the weights sum to 1.
func statsWithWellbeing(score float64) Stats {
	return Stats{
		Water:       score,
		Hunger:      MaxStat - score,
		Energy:      score,
		Cleanliness: score,
	}
}

func TestWellbeingWeights(t *testing.T) {
	s := Stats{Water: 10, Hunger: 90, Energy: 15, Cleanliness: 100}
	assert.InDelta(t, 24.75, Wellbeing(s), 0.001)
}

func TestNeglectedTreeIsMiserable(t *testing.T) {
	s := Stats{Water: 10, Hunger: 90, Energy: 15, Cleanliness: 100}
	assert.Equal(t, Miserable, MoodFor(s))
}

func TestMoodBuckets(t *testing.T) {
	tests := []struct {
		score float64
		want  Mood
	}{
		{0, Miserable},
		{24.9, Miserable},
		{25, Sad},
		{39.9, Sad},
		{40, Unhappy},
		{50, Neutral},
		{60, Content},
		{70, Happy},
		{84.9, Happy},
		{85, Ecstatic},
		{100, Ecstatic},
	}
	for _, tt := range tests {
		got := MoodFor(statsWithWellbeing(tt.score))
		assert.Equal(t, tt.want, got, "score %.1f", tt.score)
	}
}

func TestMoodMonotonicInWellbeing(t *testing.T) {
	prev := Miserable
	for score := 0.0; score <= 100; score += 0.5 {
		mood := MoodFor(statsWithWellbeing(score))
		assert.GreaterOrEqual(t, mood, prev, "mood regressed at score %.1f", score)
		prev = mood
	}
}

func TestClassifierIsPure(t *testing.T) {
	s := Stats{Water: 42, Hunger: 33, Energy: 71, Cleanliness: 58, Hydration: 64, PruningQuality: 50}
	assert.Equal(t, MoodFor(s), MoodFor(s))
	assert.Equal(t, Wellbeing(s), Wellbeing(s))
}

func TestStageForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  GrowthStage
	}{
		{0, Seedling},
		{1, Sprout},
		{2, Sprout},
		{3, Sapling},
		{5, Sapling},
		{6, YoungTree},
		{10, Mature},
		{14, Mature},
		{15, Ancient},
		{40, Ancient},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StageForLevel(tt.level), "level %d", tt.level)
	}
}

func TestStageNeverRegresses(t *testing.T) {
	prev := Seedling
	for level := 0; level <= 30; level++ {
		stage := StageForLevel(level)
		assert.GreaterOrEqual(t, stage, prev, "stage regressed at level %d", level)
		prev = stage
	}
}
