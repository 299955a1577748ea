package bonsai

// Condition is the tree's health state. Healthy is the initial state; every
// ailment is recoverable, so the machine is cyclic with no terminal state.
type Condition int

const (
	Healthy Condition = iota
	Blight
	Drought
	Overwatered
	Pests
)

func (c Condition) String() string {
	switch c {
	case Healthy:
		return "healthy"
	case Blight:
		return "blight"
	case Drought:
		return "drought"
	case Overwatered:
		return "overwatered"
	case Pests:
		return "pests"
	}
	return "unknown"
}

// ParseCondition converts a snapshot string back to a Condition.
func ParseCondition(v string) (Condition, error) {
	for c := Healthy; c <= Pests; c++ {
		if c.String() == v {
			return c, nil
		}
	}
	return Healthy, &ConfigurationError{Field: "condition", Value: v}
}

// triggered reports whether the stats instantaneously satisfy the condition's
// trigger predicate. A single bad reading is not enough to commit a
// transition; the health machine requires the predicate to hold for a dwell
// period first.
func (c Condition) triggered(s Stats) bool {
	switch c {
	case Blight:
		return s.Energy < BlightEnergyThreshold && s.Hunger > BlightHungerThreshold
	case Drought:
		return s.Water < DroughtWaterThreshold || s.Hydration < DroughtHydrationThreshold
	case Overwatered:
		return s.Water > OverwaterWaterThreshold && s.Hydration > OverwaterHydration
	case Pests:
		return s.Cleanliness < PestsCleanlinessThreshold
	}
	return false
}

// conditionPriority orders ailments for simultaneous triggers.
var conditionPriority = []Condition{Blight, Drought, Overwatered, Pests}

// healthMachine tracks the active condition with dwell-time hysteresis on
// both onset and recovery, so a single good or bad tick never flips the
// state.
type healthMachine struct {
	current       Condition
	pending       Condition
	onsetTicks    int
	recoveryTicks int

	onsetDwell    int
	recoveryDwell int
}

func newHealthMachine(onsetDwell, recoveryDwell int) healthMachine {
	if onsetDwell < 1 {
		onsetDwell = DefaultOnsetDwellTicks
	}
	if recoveryDwell < 1 {
		recoveryDwell = DefaultRecoveryDwellTicks
	}
	return healthMachine{
		current:       Healthy,
		pending:       Healthy,
		onsetDwell:    onsetDwell,
		recoveryDwell: recoveryDwell,
	}
}

// step advances the machine by one tick and reports whether the active
// condition changed. While an ailment is active the tree must fully recover
// before a different ailment can begin its onset count.
func (h *healthMachine) step(s Stats) (changed bool) {
	if h.current == Healthy {
		active := Healthy
		for _, c := range conditionPriority {
			if c.triggered(s) {
				active = c
				break
			}
		}

		if active == Healthy {
			h.pending = Healthy
			h.onsetTicks = 0
			return false
		}
		if active != h.pending {
			h.pending = active
			h.onsetTicks = 1
			return false
		}
		h.onsetTicks++
		if h.onsetTicks >= h.onsetDwell {
			h.current = active
			h.pending = Healthy
			h.onsetTicks = 0
			h.recoveryTicks = 0
			return true
		}
		return false
	}

	if h.current.triggered(s) {
		h.recoveryTicks = 0
		return false
	}
	h.recoveryTicks++
	if h.recoveryTicks >= h.recoveryDwell {
		h.current = Healthy
		h.recoveryTicks = 0
		return true
	}
	return false
}
