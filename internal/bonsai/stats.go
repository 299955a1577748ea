package bonsai

import "fmt"

// StatName identifies one of the tree's bounded attributes.
type StatName string

const (
	StatWater          StatName = "water"
	StatHunger         StatName = "hunger"
	StatEnergy         StatName = "energy"
	StatCleanliness    StatName = "cleanliness"
	StatHydration      StatName = "hydration"
	StatPruningQuality StatName = "pruning_quality"
)

// AllStats lists every stat in display order.
var AllStats = []StatName{
	StatWater, StatHunger, StatEnergy,
	StatCleanliness, StatHydration, StatPruningQuality,
}

// Stats holds the tree's needs. Every value stays within [MinStat, MaxStat];
// out-of-range writes are clamped silently rather than rejected.
type Stats struct {
	Water          float64 `json:"water"`
	Hunger         float64 `json:"hunger"`
	Energy         float64 `json:"energy"`
	Cleanliness    float64 `json:"cleanliness"`
	Hydration      float64 `json:"hydration"`
	PruningQuality float64 `json:"pruning_quality"`
}

// NewStats returns the starting stats for a freshly potted tree.
func NewStats() Stats {
	return Stats{
		Water:          InitialWater,
		Hunger:         InitialHunger,
		Energy:         InitialEnergy,
		Cleanliness:    InitialCleanliness,
		Hydration:      InitialHydration,
		PruningQuality: InitialPruningQuality,
	}
}

// Get returns the current value of the named stat. Unknown names return 0.
func (s Stats) Get(name StatName) float64 {
	switch name {
	case StatWater:
		return s.Water
	case StatHunger:
		return s.Hunger
	case StatEnergy:
		return s.Energy
	case StatCleanliness:
		return s.Cleanliness
	case StatHydration:
		return s.Hydration
	case StatPruningQuality:
		return s.PruningQuality
	}
	return 0
}

// Set writes the named stat, clamping to [MinStat, MaxStat].
func (s *Stats) Set(name StatName, v float64) {
	v = clamp(v)
	switch name {
	case StatWater:
		s.Water = v
	case StatHunger:
		s.Hunger = v
	case StatEnergy:
		s.Energy = v
	case StatCleanliness:
		s.Cleanliness = v
	case StatHydration:
		s.Hydration = v
	case StatPruningQuality:
		s.PruningQuality = v
	}
}

// Add shifts the named stat by delta, clamping the result.
func (s *Stats) Add(name StatName, delta float64) {
	s.Set(name, s.Get(name)+delta)
}

// Clamped returns a copy with every field forced into range. Used when
// restoring snapshots written by older builds.
func (s Stats) Clamped() Stats {
	out := s
	for _, name := range AllStats {
		out.Set(name, out.Get(name))
	}
	return out
}

// Label returns a display-friendly name for the stat.
func (n StatName) Label() string {
	switch n {
	case StatWater:
		return "Water"
	case StatHunger:
		return "Hunger"
	case StatEnergy:
		return "Energy"
	case StatCleanliness:
		return "Cleanliness"
	case StatHydration:
		return "Hydration"
	case StatPruningQuality:
		return "Pruning"
	}
	return fmt.Sprintf("Unknown(%s)", string(n))
}

func clamp(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
