package bonsai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	mockRand(t, 0)
	return New("test", DefaultParams())
}

func TestMorningWateringScalesBenefit(t *testing.T) {
	e := newTestEngine(t)
	e.env.Clock.Hour = 8
	e.stats.Set(StatHydration, 50)

	require.NoError(t, e.Do(ActionWater))

	// 15 base hydration, x1.2 in the morning.
	assert.InDelta(t, 68.0, e.stats.Hydration, 0.001)
}

func TestNightScalesBenefitButNotCost(t *testing.T) {
	e := newTestEngine(t)
	e.env.Clock.Hour = 23
	e.stats.Set(StatPruningQuality, 60)
	e.stats.Set(StatEnergy, 90)

	require.NoError(t, e.Do(ActionPrune))

	// The +20 benefit shrinks to x0.8; the -5 energy cost lands in full.
	assert.InDelta(t, 76.0, e.stats.PruningQuality, 0.001)
	assert.InDelta(t, 85.0, e.stats.Energy, 0.001)
}

func TestFeedVariants(t *testing.T) {
	tests := []struct {
		food       FoodKind
		wantHunger float64
		check      func(*testing.T, Stats)
	}{
		{FoodBasic, 35, func(t *testing.T, s Stats) {}},
		{FoodPremium, 25, func(t *testing.T, s Stats) {
			assert.InDelta(t, 75.0, s.Energy, 0.001)
		}},
		{FoodOrganic, 40, func(t *testing.T, s Stats) {
			assert.InDelta(t, 55.0, s.Cleanliness, 0.001)
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.food), func(t *testing.T) {
			e := newTestEngine(t)
			e.env.Clock.Hour = 13 // neutral daytime, factor 1.0
			e.stats = Stats{Water: 50, Hunger: 60, Energy: 70, Cleanliness: 50, Hydration: 50, PruningQuality: 50}

			require.NoError(t, e.Feed(tt.food))
			assert.InDelta(t, tt.wantHunger, e.stats.Hunger, 0.001)
			tt.check(t, e.stats)
		})
	}
}

func TestHungerReductionCountsAsBenefit(t *testing.T) {
	e := newTestEngine(t)
	e.env.Clock.Hour = 8
	e.stats.Set(StatHunger, 60)

	require.NoError(t, e.Feed(FoodBasic))

	// -25 hunger is beneficial, so it scales: 60 - 25*1.2 = 30.
	assert.InDelta(t, 30.0, e.stats.Hunger, 0.001)
}

func TestUnknownActionRejected(t *testing.T) {
	e := newTestEngine(t)
	err := e.Do(Action("photosynthesize"))
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "action", cfgErr.Field)
}

func TestUnknownFoodKindRejected(t *testing.T) {
	e := newTestEngine(t)
	err := e.Feed(FoodKind("candy"))
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestActionClampsAtMax(t *testing.T) {
	e := newTestEngine(t)
	e.env.Clock.Hour = 8
	e.stats.Set(StatCleanliness, 95)

	require.NoError(t, e.Do(ActionClean))
	assert.Equal(t, MaxStat, e.stats.Cleanliness)
}

func TestCareBonusScalesWithTimeOfDay(t *testing.T) {
	e := newTestEngine(t)
	e.env.Clock.Hour = 8

	require.NoError(t, e.Do(ActionPlay))
	assert.InDelta(t, PlayCareBonus*MorningBonusFactor, e.careScore, 0.001)
}

func TestActionSetsTransientActivity(t *testing.T) {
	params := DefaultParams()
	params.ActivityTicks = 2
	mockRand(t, 0)
	e := New("test", params)
	e.env.Clock.Hour = 13

	require.NoError(t, e.Do(ActionMeditate))
	assert.Equal(t, Meditating, e.Activity())

	e.Tick()
	assert.Equal(t, Meditating, e.Activity())
	e.Tick()
	assert.Equal(t, Idle, e.Activity())
}

func TestActionEmitsNotificationWithFactor(t *testing.T) {
	e := newTestEngine(t)
	e.env.Clock.Hour = 8

	var got []Notification
	e.Subscribe(func(n Notification) { got = append(got, n) })

	require.NoError(t, e.Do(ActionWater))
	require.Len(t, got, 1)
	assert.Equal(t, NoteActionApplied, got[0].Type)
	assert.Equal(t, string(ActionWater), got[0].New)
	assert.Equal(t, MorningBonusFactor, got[0].Factor)
}
