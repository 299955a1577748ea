package bonsai

// NotificationType identifies what changed.
type NotificationType string

const (
	NoteStatChanged        NotificationType = "stat_changed"
	NoteMoodChanged        NotificationType = "mood_changed"
	NoteHealthChanged      NotificationType = "health_changed"
	NoteGrowthStageChanged NotificationType = "growth_stage_changed"
	NoteSeasonChanged      NotificationType = "season_changed"
	NoteWeatherChanged     NotificationType = "weather_changed"
	NoteTimeOfDayChanged   NotificationType = "time_of_day_changed"
	NoteLevelUp            NotificationType = "level_up"
	NoteActionApplied      NotificationType = "action_applied"
)

// Notification is a typed change event emitted by the engine. Observers are
// invoked synchronously on the caller's goroutine, so the host's
// single-writer discipline extends to them.
type Notification struct {
	Type    NotificationType
	Message string

	// Old and New carry the string form of the changed value where one
	// exists (mood, season, weather, condition, period).
	Old string
	New string

	// Stat is set for StatChanged notifications.
	Stat StatName
	// Level is set for LevelUp notifications.
	Level int
	// Factor is set for ActionApplied notifications.
	Factor float64
}

// Observer receives engine notifications.
type Observer func(Notification)

// Subscribe registers an observer. Observers run synchronously during Tick
// and action processing; they must not call back into the engine.
func (e *Engine) Subscribe(fn Observer) {
	e.observers = append(e.observers, fn)
}

func (e *Engine) emit(n Notification) {
	for _, fn := range e.observers {
		fn(n)
	}
}
