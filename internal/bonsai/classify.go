package bonsai

// Mood is the seven-level ordered mood scale, derived from the wellbeing
// score. It is recomputed, never stored.
type Mood int

const (
	Miserable Mood = iota
	Sad
	Unhappy
	Neutral
	Content
	Happy
	Ecstatic
)

func (m Mood) String() string {
	switch m {
	case Miserable:
		return "miserable"
	case Sad:
		return "sad"
	case Unhappy:
		return "unhappy"
	case Neutral:
		return "neutral"
	case Content:
		return "content"
	case Happy:
		return "happy"
	case Ecstatic:
		return "ecstatic"
	}
	return "unknown"
}

// GrowthStage is the tree's maturity. It only advances, never regresses.
type GrowthStage int

const (
	Seedling GrowthStage = iota
	Sprout
	Sapling
	YoungTree
	Mature
	Ancient
)

func (g GrowthStage) String() string {
	switch g {
	case Seedling:
		return "seedling"
	case Sprout:
		return "sprout"
	case Sapling:
		return "sapling"
	case YoungTree:
		return "young tree"
	case Mature:
		return "mature"
	case Ancient:
		return "ancient"
	}
	return "unknown"
}

// Activity is the transient behavior state set by the most recent action.
// It decays back to Idle after a few ticks.
type Activity int

const (
	Idle Activity = iota
	Drinking
	Eating
	Pruning
	Resting
	Playing
	Exercising
	Training
	Meditating
	Cleaning
)

func (a Activity) String() string {
	switch a {
	case Idle:
		return "idle"
	case Drinking:
		return "drinking"
	case Eating:
		return "eating"
	case Pruning:
		return "pruning"
	case Resting:
		return "resting"
	case Playing:
		return "playing"
	case Exercising:
		return "exercising"
	case Training:
		return "training"
	case Meditating:
		return "meditating"
	case Cleaning:
		return "cleaning"
	}
	return "unknown"
}

// ParseActivity converts a snapshot string back to an Activity.
func ParseActivity(v string) (Activity, error) {
	for a := Idle; a <= Cleaning; a++ {
		if a.String() == v {
			return a, nil
		}
	}
	return Idle, &ConfigurationError{Field: "activity", Value: v}
}

// Wellbeing collapses the stats into a single [0,100] care score. Hunger is
// inverted: a full tree (hunger 0) contributes the most.
func Wellbeing(s Stats) float64 {
	return HungerWeight*(MaxStat-s.Hunger) +
		WaterWeight*s.Water +
		EnergyWeight*s.Energy +
		CleanlinessWeight*s.Cleanliness
}

// MoodFor buckets the wellbeing score into the mood scale. The mapping is a
// monotonic step function: a higher score never yields a lower mood.
func MoodFor(s Stats) Mood {
	score := Wellbeing(s)
	switch {
	case score < MiserableBelow:
		return Miserable
	case score < SadBelow:
		return Sad
	case score < UnhappyBelow:
		return Unhappy
	case score < NeutralBelow:
		return Neutral
	case score < ContentBelow:
		return Content
	case score < HappyBelow:
		return Happy
	default:
		return Ecstatic
	}
}

// StageForLevel maps the level to a growth stage. Level never decreases, so
// neither does the stage.
func StageForLevel(level int) GrowthStage {
	switch {
	case level >= 15:
		return Ancient
	case level >= 10:
		return Mature
	case level >= 6:
		return YoungTree
	case level >= 3:
		return Sapling
	case level >= 1:
		return Sprout
	default:
		return Seedling
	}
}
