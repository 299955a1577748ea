package bonsai

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the flat serializable form of the whole simulation: identity,
// stats, health machine, activity, and environment. Round-tripping through
// Snapshot/Restore is lossless for every field.
type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	SavedAt   time.Time `json:"saved_at"`

	Water          float64 `json:"water"`
	Hunger         float64 `json:"hunger"`
	Energy         float64 `json:"energy"`
	Cleanliness    float64 `json:"cleanliness"`
	Hydration      float64 `json:"hydration"`
	PruningQuality float64 `json:"pruning_quality"`

	Level     int     `json:"level"`
	CareScore float64 `json:"care_score"`

	Condition        string `json:"condition"`
	PendingCondition string `json:"pending_condition"`
	OnsetTicks       int    `json:"onset_ticks"`
	RecoveryTicks    int    `json:"recovery_ticks"`

	Activity     string `json:"activity"`
	ActivityLeft int    `json:"activity_left"`

	Day            int    `json:"day"`
	Hour           int    `json:"hour"`
	Minute         int    `json:"minute"`
	DaysIntoSeason int    `json:"days_into_season"`
	Season         string `json:"season"`
	Weather        string `json:"weather"`
}

// Snapshot captures the current state for persistence.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		ID:        e.id,
		Name:      e.name,
		CreatedAt: e.createdAt,
		SavedAt:   TimeNow(),

		Water:          e.stats.Water,
		Hunger:         e.stats.Hunger,
		Energy:         e.stats.Energy,
		Cleanliness:    e.stats.Cleanliness,
		Hydration:      e.stats.Hydration,
		PruningQuality: e.stats.PruningQuality,

		Level:     e.level,
		CareScore: e.careScore,

		Condition:        e.health.current.String(),
		PendingCondition: e.health.pending.String(),
		OnsetTicks:       e.health.onsetTicks,
		RecoveryTicks:    e.health.recoveryTicks,

		Activity:     e.activity.String(),
		ActivityLeft: e.activityLeft,

		Day:            e.env.Clock.Day,
		Hour:           e.env.Clock.Hour,
		Minute:         e.env.Clock.Minute,
		DaysIntoSeason: e.env.DaysIntoSeason,
		Season:         e.env.Season.String(),
		Weather:        e.env.Weather.String(),
	}
}

// Restore rebuilds an engine from a snapshot. Unknown enum values and a
// weather that is impossible for the stored season come back as
// ConfigurationError; the caller decides whether to start fresh. Stat values
// outside [0,100] are clamped per the usual policy.
func Restore(snap Snapshot, params Params) (*Engine, error) {
	season, err := ParseSeason(snap.Season)
	if err != nil {
		return nil, err
	}
	weather, err := ParseWeather(snap.Weather)
	if err != nil {
		return nil, err
	}
	if !WeatherValidFor(weather, season) {
		return nil, &ConfigurationError{Field: "weather for " + snap.Season, Value: snap.Weather}
	}
	condition, err := ParseCondition(snap.Condition)
	if err != nil {
		return nil, err
	}
	pending, err := ParseCondition(snap.PendingCondition)
	if err != nil {
		return nil, err
	}
	activity, err := ParseActivity(snap.Activity)
	if err != nil {
		return nil, err
	}

	params = params.normalized()

	name := snap.Name
	if name == "" {
		name = DefaultTreeName
	}
	id := snap.ID
	if id == "" {
		id = uuid.NewString()
	}

	stats := Stats{
		Water:          snap.Water,
		Hunger:         snap.Hunger,
		Energy:         snap.Energy,
		Cleanliness:    snap.Cleanliness,
		Hydration:      snap.Hydration,
		PruningQuality: snap.PruningQuality,
	}.Clamped()

	env := NewEnvironment(params.SeasonLengthDays)
	env.Clock = Clock{Day: snap.Day, Hour: snap.Hour, Minute: snap.Minute}
	env.Season = season
	env.Weather = weather
	env.DaysIntoSeason = snap.DaysIntoSeason
	if env.DaysIntoSeason < 1 {
		env.DaysIntoSeason = 1
	}

	health := newHealthMachine(params.OnsetDwellTicks, params.RecoveryDwellTicks)
	health.current = condition
	health.pending = pending
	health.onsetTicks = snap.OnsetTicks
	health.recoveryTicks = snap.RecoveryTicks

	level := snap.Level
	if level < 0 {
		level = 0
	}

	e := &Engine{
		id:           id,
		name:         name,
		createdAt:    snap.CreatedAt,
		stats:        stats,
		level:        level,
		careScore:    snap.CareScore,
		env:          env,
		health:       health,
		activity:     activity,
		activityLeft: snap.ActivityLeft,
		params:       params,
	}
	e.prevMood = MoodFor(e.stats)
	e.prevStage = StageForLevel(e.level)
	e.critical = criticalSet(e.stats)
	return e, nil
}
