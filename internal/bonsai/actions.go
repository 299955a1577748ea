package bonsai

import "fmt"

// Action names a player operation on the tree.
type Action string

const (
	ActionWater    Action = "water"
	ActionFeed     Action = "feed"
	ActionPrune    Action = "prune"
	ActionRest     Action = "rest"
	ActionPlay     Action = "play"
	ActionExercise Action = "exercise"
	ActionTrain    Action = "train"
	ActionMeditate Action = "meditate"
	ActionClean    Action = "clean"
)

// Actions lists every action in menu order.
var Actions = []Action{
	ActionWater, ActionFeed, ActionPrune, ActionRest, ActionPlay,
	ActionExercise, ActionTrain, ActionMeditate, ActionClean,
}

// FoodKind selects a feed variant.
type FoodKind string

const (
	FoodBasic   FoodKind = "basic"
	FoodPremium FoodKind = "premium"
	FoodOrganic FoodKind = "organic"
)

// FoodKinds lists the feed variants in cycle order.
var FoodKinds = []FoodKind{FoodBasic, FoodPremium, FoodOrganic}

// statDelta is one stat change carried by an action. Positive amounts raise
// the stat, negative lower it.
type statDelta struct {
	stat   StatName
	amount float64
}

type actionSpec struct {
	activity  Activity
	deltas    []statDelta
	careBonus float64
}

// specFor resolves an action (and feed variant) to its stat deltas. Unknown
// names are a ConfigurationError so a mis-wired caller shows up in testing
// instead of being silently dropped.
func specFor(a Action, food FoodKind) (actionSpec, error) {
	switch a {
	case ActionWater:
		return actionSpec{
			activity: Drinking,
			deltas: []statDelta{
				{StatWater, WaterWaterIncrease},
				{StatHydration, WaterHydrationIncrease},
			},
		}, nil
	case ActionFeed:
		switch food {
		case FoodBasic:
			return actionSpec{
				activity: Eating,
				deltas:   []statDelta{{StatHunger, -FeedBasicHunger}},
			}, nil
		case FoodPremium:
			return actionSpec{
				activity: Eating,
				deltas: []statDelta{
					{StatHunger, -FeedPremiumHunger},
					{StatEnergy, FeedPremiumEnergy},
				},
			}, nil
		case FoodOrganic:
			return actionSpec{
				activity: Eating,
				deltas: []statDelta{
					{StatHunger, -FeedOrganicHunger},
					{StatCleanliness, FeedOrganicCleanliness},
				},
			}, nil
		}
		return actionSpec{}, &ConfigurationError{Field: "food kind", Value: string(food)}
	case ActionPrune:
		return actionSpec{
			activity: Pruning,
			deltas: []statDelta{
				{StatPruningQuality, PruneQualityIncrease},
				{StatEnergy, -PruneEnergyCost},
			},
		}, nil
	case ActionRest:
		return actionSpec{
			activity: Resting,
			deltas: []statDelta{
				{StatEnergy, RestEnergyIncrease},
				{StatHunger, RestHungerCost},
			},
		}, nil
	case ActionPlay:
		return actionSpec{
			activity: Playing,
			deltas: []statDelta{
				{StatEnergy, -PlayEnergyCost},
				{StatHunger, PlayHungerCost},
				{StatCleanliness, -PlayCleanlinessCost},
			},
			careBonus: PlayCareBonus,
		}, nil
	case ActionExercise:
		return actionSpec{
			activity: Exercising,
			deltas: []statDelta{
				{StatEnergy, -ExerciseEnergyCost},
				{StatHunger, ExerciseHungerCost},
			},
			careBonus: ExerciseCareBonus,
		}, nil
	case ActionTrain:
		return actionSpec{
			activity: Training,
			deltas: []statDelta{
				{StatPruningQuality, TrainQualityIncrease},
				{StatEnergy, -TrainEnergyCost},
			},
		}, nil
	case ActionMeditate:
		return actionSpec{
			activity:  Meditating,
			deltas:    []statDelta{{StatEnergy, MeditateEnergyIncrease}},
			careBonus: MeditateCareBonus,
		}, nil
	case ActionClean:
		return actionSpec{
			activity: Cleaning,
			deltas:   []statDelta{{StatCleanliness, CleanIncrease}},
		}, nil
	}
	return actionSpec{}, &ConfigurationError{Field: "action", Value: string(a)}
}

// beneficial reports whether the delta helps the tree. Hunger is the one
// stat where lower is better.
func (d statDelta) beneficial() bool {
	if d.stat == StatHunger {
		return d.amount < 0
	}
	return d.amount > 0
}

// Do applies the named action. Feed uses the basic food; use Feed for a
// specific variant. One call applies exactly one delta set; there is no
// cooldown between calls.
func (e *Engine) Do(a Action) error {
	return e.apply(a, FoodBasic)
}

// Feed applies the feed action with the given food kind.
func (e *Engine) Feed(kind FoodKind) error {
	return e.apply(ActionFeed, kind)
}

// apply realizes an action's deltas against the stats. The time-of-day
// factor scales only the beneficial deltas; costs land at full strength
// regardless of the hour.
func (e *Engine) apply(a Action, food FoodKind) error {
	spec, err := specFor(a, food)
	if err != nil {
		return err
	}

	factor := BonusFactor(e.env.Clock.Hour)
	for _, d := range spec.deltas {
		realized := d.amount
		if d.beneficial() {
			realized *= factor
		}
		e.stats.Add(d.stat, realized)
	}
	if spec.careBonus > 0 {
		e.careScore += spec.careBonus * factor
	}

	e.activity = spec.activity
	e.activityLeft = e.params.ActivityTicks

	e.emit(Notification{
		Type:    NoteActionApplied,
		Message: actionMessage(a, factor),
		New:     string(a),
		Factor:  factor,
	})
	return nil
}

func actionMessage(a Action, factor float64) string {
	switch {
	case factor > 1.0:
		return fmt.Sprintf("%s was extra effective (x%.1f)", a, factor)
	case factor < 1.0:
		return fmt.Sprintf("%s was less effective (x%.1f)", a, factor)
	default:
		return fmt.Sprintf("%s applied", a)
	}
}
