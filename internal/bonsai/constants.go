package bonsai

// Tuning constants for the simulation
const (
	DefaultTreeName = "Bonsai"
	MaxStat         = 100.0
	MinStat         = 0.0

	// Starting stats for a freshly potted tree
	InitialWater          = 80.0
	InitialHunger         = 20.0
	InitialEnergy         = 90.0
	InitialCleanliness    = 90.0
	InitialHydration      = 75.0
	InitialPruningQuality = 60.0

	// Base decay per in-game minute (hunger grows, the rest shrink)
	WaterDecayRate       = 0.05
	HydrationDecayRate   = 0.04
	HungerGrowthRate     = 0.04
	EnergyDecayRate      = 0.03
	CleanlinessDecayRate = 0.02
	PruningDecayRate     = 0.008

	// Time-of-day action effectiveness
	MorningBonusFactor = 1.2
	EveningBonusFactor = 1.1
	NightPenaltyFactor = 0.8

	// Wellbeing weights (hunger is inverted before weighting)
	HungerWeight      = 0.30
	WaterWeight       = 0.30
	EnergyWeight      = 0.25
	CleanlinessWeight = 0.15

	// Mood bucket thresholds on the wellbeing score
	MiserableBelow = 25.0
	SadBelow       = 40.0
	UnhappyBelow   = 50.0
	NeutralBelow   = 60.0
	ContentBelow   = 70.0
	HappyBelow     = 85.0

	// Health condition trigger thresholds
	DroughtWaterThreshold     = 15.0
	DroughtHydrationThreshold = 10.0
	OverwaterWaterThreshold   = 95.0
	OverwaterHydration        = 90.0
	PestsCleanlinessThreshold = 20.0
	BlightEnergyThreshold     = 12.0
	BlightHungerThreshold     = 85.0

	// Critical-stat boundaries for change notifications
	CriticalLowThreshold    = 15.0
	CriticalHungerThreshold = 85.0

	// Base action deltas
	WaterWaterIncrease     = 18.0
	WaterHydrationIncrease = 15.0
	FeedBasicHunger        = 25.0
	FeedPremiumHunger      = 35.0
	FeedPremiumEnergy      = 5.0
	FeedOrganicHunger      = 20.0
	FeedOrganicCleanliness = 5.0
	PruneQualityIncrease   = 20.0
	PruneEnergyCost        = 5.0
	RestEnergyIncrease     = 25.0
	RestHungerCost         = 4.0
	PlayEnergyCost         = 8.0
	PlayHungerCost         = 6.0
	PlayCleanlinessCost    = 3.0
	PlayCareBonus          = 3.0
	ExerciseEnergyCost     = 12.0
	ExerciseHungerCost     = 8.0
	ExerciseCareBonus      = 5.0
	TrainQualityIncrease   = 10.0
	TrainEnergyCost        = 8.0
	MeditateEnergyIncrease = 8.0
	MeditateCareBonus      = 2.0
	CleanIncrease          = 30.0
)

// Clock and schedule defaults
const (
	DefaultTimeSpeed          = 1   // in-game minutes per tick
	DefaultSeasonLengthDays   = 7   // in-game days per season
	DefaultOnsetDwellTicks    = 120 // ticks a trigger must hold before a condition commits
	DefaultRecoveryDwellTicks = 120 // ticks of clear readings before recovery commits
	DefaultActivityTicks      = 5   // ticks a transient activity lasts before Idle
	DefaultLevelThreshold     = 480 // accumulated care score per level
)
