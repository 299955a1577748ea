package bonsai

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Params are the tuning knobs the host passes in explicitly instead of the
// engine reading ambient settings.
type Params struct {
	// TimeSpeed is how many in-game minutes one tick advances.
	TimeSpeed int
	// SeasonLengthDays is the in-game days per season.
	SeasonLengthDays int
	// OnsetDwellTicks is how long a trigger must hold before a health
	// condition commits.
	OnsetDwellTicks int
	// RecoveryDwellTicks is how long stats must stay clear before the tree
	// returns to Healthy.
	RecoveryDwellTicks int
	// ActivityTicks is how long a transient activity lasts before Idle.
	ActivityTicks int
	// LevelThreshold is the accumulated care score needed per level.
	LevelThreshold float64
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		TimeSpeed:          DefaultTimeSpeed,
		SeasonLengthDays:   DefaultSeasonLengthDays,
		OnsetDwellTicks:    DefaultOnsetDwellTicks,
		RecoveryDwellTicks: DefaultRecoveryDwellTicks,
		ActivityTicks:      DefaultActivityTicks,
		LevelThreshold:     DefaultLevelThreshold,
	}
}

func (p Params) normalized() Params {
	def := DefaultParams()
	if p.TimeSpeed < 1 {
		p.TimeSpeed = def.TimeSpeed
	}
	if p.SeasonLengthDays < 1 {
		p.SeasonLengthDays = def.SeasonLengthDays
	}
	if p.OnsetDwellTicks < 1 {
		p.OnsetDwellTicks = def.OnsetDwellTicks
	}
	if p.RecoveryDwellTicks < 1 {
		p.RecoveryDwellTicks = def.RecoveryDwellTicks
	}
	if p.ActivityTicks < 1 {
		p.ActivityTicks = def.ActivityTicks
	}
	if p.LevelThreshold <= 0 {
		p.LevelThreshold = def.LevelThreshold
	}
	return p
}

// Engine drives one tree through discrete simulation steps. It is not safe
// for concurrent use: the host must serialize Tick and action calls onto one
// goroutine, which a Bubble Tea update loop does naturally.
type Engine struct {
	id        string
	name      string
	createdAt time.Time

	stats     Stats
	level     int
	careScore float64

	env    *Environment
	health healthMachine

	activity     Activity
	activityLeft int

	params    Params
	observers []Observer

	prevMood  Mood
	prevStage GrowthStage
	critical  map[StatName]bool
}

// New creates an engine for a freshly potted tree.
func New(name string, params Params) *Engine {
	if name == "" {
		name = DefaultTreeName
	}
	params = params.normalized()
	e := &Engine{
		id:        uuid.NewString(),
		name:      name,
		createdAt: TimeNow(),
		stats:     NewStats(),
		env:       NewEnvironment(params.SeasonLengthDays),
		health:    newHealthMachine(params.OnsetDwellTicks, params.RecoveryDwellTicks),
		activity:  Idle,
		params:    params,
	}
	e.prevMood = MoodFor(e.stats)
	e.prevStage = StageForLevel(e.level)
	e.critical = criticalSet(e.stats)
	return e
}

// Accessors. Derived values are recomputed from current state on demand and
// never stored, so reading twice always agrees.

func (e *Engine) ID() string           { return e.id }
func (e *Engine) Name() string         { return e.name }
func (e *Engine) Stats() Stats         { return e.stats }
func (e *Engine) Level() int           { return e.level }
func (e *Engine) CareScore() float64   { return e.careScore }
func (e *Engine) Season() Season       { return e.env.Season }
func (e *Engine) Weather() Weather     { return e.env.Weather }
func (e *Engine) Clock() Clock         { return e.env.Clock }
func (e *Engine) Condition() Condition { return e.health.current }
func (e *Engine) Activity() Activity   { return e.activity }
func (e *Engine) Mood() Mood           { return MoodFor(e.stats) }
func (e *Engine) Stage() GrowthStage   { return StageForLevel(e.level) }
func (e *Engine) Wellbeing() float64   { return Wellbeing(e.stats) }
func (e *Engine) Params() Params       { return e.params }
func (e *Engine) Describe() string     { return e.env.Describe() }

// Tick advances the simulation by one step: clock, decay, care score, health
// machine, then derived-state diffing. It cannot fail; persistence is the
// host's problem.
func (e *Engine) Tick() {
	ch := e.env.Advance(e.params.TimeSpeed)
	if ch.seasonChanged {
		e.emit(Notification{
			Type:    NoteSeasonChanged,
			New:     e.env.Season.String(),
			Message: fmt.Sprintf("the season turned to %s", e.env.Season),
		})
	}
	if ch.weatherChanged {
		e.emit(Notification{
			Type:    NoteWeatherChanged,
			New:     e.env.Weather.String(),
			Message: fmt.Sprintf("the weather shifted to %s", e.env.Weather),
		})
	}
	if ch.periodChanged {
		period := PeriodFor(e.env.Clock.Hour)
		e.emit(Notification{
			Type:    NoteTimeOfDayChanged,
			New:     period.String(),
			Message: fmt.Sprintf("it is now %s", period),
		})
	}

	e.decay()
	e.accumulateCare()

	if e.health.step(e.stats) {
		e.emit(Notification{
			Type:    NoteHealthChanged,
			New:     e.health.current.String(),
			Message: healthMessage(e.health.current),
		})
	}

	if mood := MoodFor(e.stats); mood != e.prevMood {
		e.emit(Notification{
			Type:    NoteMoodChanged,
			Old:     e.prevMood.String(),
			New:     mood.String(),
			Message: fmt.Sprintf("mood is now %s", mood),
		})
		e.prevMood = mood
	}

	e.emitCriticalEdges()

	if e.activityLeft > 0 {
		e.activityLeft--
		if e.activityLeft == 0 {
			e.activity = Idle
		}
	}
}

// decay applies per-tick stat drift, modulated by season and weather. Hot
// sunny weather dries the tree faster; rain slows water loss; winter slows
// evaporation but drains energy; storms and wind dirty the foliage.
func (e *Engine) decay() {
	minutes := float64(e.params.TimeSpeed)

	water := WaterDecayRate
	hydration := HydrationDecayRate
	energy := EnergyDecayRate
	cleanliness := CleanlinessDecayRate

	switch e.env.Season {
	case Summer:
		water *= 1.5
		hydration *= 1.5
	case Winter:
		water *= 0.7
		hydration *= 0.7
		energy *= 1.4
	}

	switch e.env.Weather {
	case Sunny:
		water *= 1.3
		hydration *= 1.2
	case Rain:
		water *= 0.4
		hydration *= 0.6
	case Snow:
		energy *= 1.2
	case Storm:
		cleanliness *= 2.0
	case Windy:
		cleanliness *= 1.5
	case Fog:
		hydration *= 0.8
	}

	e.stats.Add(StatWater, -water*minutes)
	e.stats.Add(StatHydration, -hydration*minutes)
	e.stats.Add(StatHunger, HungerGrowthRate*minutes)
	e.stats.Add(StatEnergy, -energy*minutes)
	e.stats.Add(StatCleanliness, -cleanliness*minutes)
	e.stats.Add(StatPruningQuality, -PruningDecayRate*minutes)
}

// accumulateCare grows the care score in proportion to wellbeing and levels
// up when the threshold is crossed. Level and growth stage only ever move
// forward.
func (e *Engine) accumulateCare() {
	e.careScore += Wellbeing(e.stats) / MaxStat * float64(e.params.TimeSpeed)
	if e.careScore < e.params.LevelThreshold {
		return
	}
	e.careScore -= e.params.LevelThreshold
	e.level++
	e.emit(Notification{
		Type:    NoteLevelUp,
		Level:   e.level,
		Message: fmt.Sprintf("reached level %d", e.level),
	})

	if stage := StageForLevel(e.level); stage != e.prevStage {
		e.emit(Notification{
			Type:    NoteGrowthStageChanged,
			Old:     e.prevStage.String(),
			New:     stage.String(),
			Message: fmt.Sprintf("the tree grew into a %s", stage),
		})
		e.prevStage = stage
	}
}

// emitCriticalEdges fires StatChanged when a stat enters or leaves its
// critical band, rather than on every per-tick drift.
func (e *Engine) emitCriticalEdges() {
	now := criticalSet(e.stats)
	for _, name := range AllStats {
		if now[name] == e.critical[name] {
			continue
		}
		msg := fmt.Sprintf("%s recovered", name.Label())
		if now[name] {
			msg = fmt.Sprintf("%s is critical", name.Label())
		}
		e.emit(Notification{Type: NoteStatChanged, Stat: name, Message: msg})
	}
	e.critical = now
}

func criticalSet(s Stats) map[StatName]bool {
	out := make(map[StatName]bool, len(AllStats))
	for _, name := range AllStats {
		if name == StatHunger {
			out[name] = s.Hunger > CriticalHungerThreshold
			continue
		}
		out[name] = s.Get(name) < CriticalLowThreshold
	}
	return out
}

// ApplyBoost shifts a stat directly, clamped, bypassing the time-of-day
// factor. Shop items use this entry point.
func (e *Engine) ApplyBoost(stat StatName, amount float64) {
	e.stats.Add(stat, amount)
}

func healthMessage(c Condition) string {
	switch c {
	case Healthy:
		return "the tree recovered"
	case Blight:
		return "blight has set in"
	case Drought:
		return "the tree is suffering drought"
	case Overwatered:
		return "the roots are waterlogged"
	case Pests:
		return "pests have infested the tree"
	}
	return ""
}
