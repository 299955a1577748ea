package bonsai

import (
	"fmt"
	"math/rand"
	"time"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now().UTC() }
	RandFloat64 = rand.Float64
)

// Season is the cyclic four-season calendar.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	}
	return "unknown"
}

// Next returns the season that follows s in cyclic order.
func (s Season) Next() Season {
	return (s + 1) % 4
}

// ParseSeason converts a snapshot string back to a Season.
func ParseSeason(v string) (Season, error) {
	switch v {
	case "spring":
		return Spring, nil
	case "summer":
		return Summer, nil
	case "autumn":
		return Autumn, nil
	case "winter":
		return Winter, nil
	}
	return Spring, &ConfigurationError{Field: "season", Value: v}
}

// Weather is the current sky state. Each season allows only a subset.
type Weather int

const (
	Sunny Weather = iota
	Cloudy
	Rain
	Storm
	Fog
	Windy
	Snow
)

func (w Weather) String() string {
	switch w {
	case Sunny:
		return "sunny"
	case Cloudy:
		return "cloudy"
	case Rain:
		return "rain"
	case Storm:
		return "storm"
	case Fog:
		return "fog"
	case Windy:
		return "windy"
	case Snow:
		return "snow"
	}
	return "unknown"
}

// ParseWeather converts a snapshot string back to a Weather.
func ParseWeather(v string) (Weather, error) {
	switch v {
	case "sunny":
		return Sunny, nil
	case "cloudy":
		return Cloudy, nil
	case "rain":
		return Rain, nil
	case "storm":
		return Storm, nil
	case "fog":
		return Fog, nil
	case "windy":
		return Windy, nil
	case "snow":
		return Snow, nil
	}
	return Sunny, &ConfigurationError{Field: "weather", Value: v}
}

type weightedWeather struct {
	weather Weather
	weight  int
}

// weatherWeights returns the season's weighted weather table. Snow appears
// only in winter; storms never in winter.
func weatherWeights(s Season) []weightedWeather {
	switch s {
	case Summer:
		return []weightedWeather{
			{Sunny, 38}, {Cloudy, 18}, {Rain, 14},
			{Storm, 12}, {Windy, 18},
		}
	case Autumn:
		return []weightedWeather{
			{Sunny, 14}, {Cloudy, 26}, {Rain, 24},
			{Storm, 8}, {Fog, 14}, {Windy, 14},
		}
	case Winter:
		return []weightedWeather{
			{Snow, 34}, {Cloudy, 26}, {Fog, 14},
			{Windy, 14}, {Sunny, 12},
		}
	default: // Spring
		return []weightedWeather{
			{Sunny, 24}, {Cloudy, 20}, {Rain, 26},
			{Storm, 6}, {Fog, 10}, {Windy, 14},
		}
	}
}

// ValidWeather returns the weather values allowed in the given season.
func ValidWeather(s Season) []Weather {
	weights := weatherWeights(s)
	out := make([]Weather, 0, len(weights))
	for _, entry := range weights {
		if entry.weight > 0 {
			out = append(out, entry.weather)
		}
	}
	return out
}

// WeatherValidFor reports whether w may occur during season s.
func WeatherValidFor(w Weather, s Season) bool {
	for _, valid := range ValidWeather(s) {
		if w == valid {
			return true
		}
	}
	return false
}

// DayPeriod divides the day into the windows that drive the bonus factor.
type DayPeriod int

const (
	Morning DayPeriod = iota
	Daytime
	Evening
	Night
)

func (p DayPeriod) String() string {
	switch p {
	case Morning:
		return "morning"
	case Daytime:
		return "daytime"
	case Evening:
		return "evening"
	case Night:
		return "night"
	}
	return "unknown"
}

// PeriodFor returns the day period containing the given hour.
func PeriodFor(hour int) DayPeriod {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Daytime
	case hour >= 17 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// BonusFactor returns the action-effectiveness multiplier for the given hour.
// It scales the useful part of an action, never the cost.
func BonusFactor(hour int) float64 {
	switch PeriodFor(hour) {
	case Morning:
		return MorningBonusFactor
	case Evening:
		return EveningBonusFactor
	case Night:
		return NightPenaltyFactor
	}
	return 1.0
}

// Clock is the in-game calendar position.
type Clock struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Environment owns the season, weather, and in-game clock.
type Environment struct {
	Clock          Clock
	Season         Season
	Weather        Weather
	DaysIntoSeason int

	seasonLengthDays int
}

// envChanges reports which environment transitions a call to Advance produced.
type envChanges struct {
	hourRolled     bool
	dayRolled      bool
	seasonChanged  bool
	weatherChanged bool
	periodChanged  bool
}

// NewEnvironment starts a session at spring, day 1, 08:00, with a rolled
// spring weather.
func NewEnvironment(seasonLengthDays int) *Environment {
	if seasonLengthDays < 1 {
		seasonLengthDays = DefaultSeasonLengthDays
	}
	e := &Environment{
		Clock:            Clock{Day: 1, Hour: 8, Minute: 0},
		Season:           Spring,
		DaysIntoSeason:   1,
		seasonLengthDays: seasonLengthDays,
	}
	e.Weather = e.rollWeather()
	return e
}

// Advance moves the clock forward by the given number of in-game minutes.
// Weather re-rolls once per in-game hour, not per tick, so it holds steady
// between rolls. Season advances when the day counter crosses the season
// length, in cyclic order.
func (e *Environment) Advance(minutes int) envChanges {
	var ch envChanges
	if minutes <= 0 {
		return ch
	}

	prevPeriod := PeriodFor(e.Clock.Hour)

	e.Clock.Minute += minutes
	for e.Clock.Minute >= 60 {
		e.Clock.Minute -= 60
		e.Clock.Hour++
		ch.hourRolled = true

		if e.Clock.Hour >= 24 {
			e.Clock.Hour = 0
			e.Clock.Day++
			e.DaysIntoSeason++
			ch.dayRolled = true

			if e.DaysIntoSeason > e.seasonLengthDays {
				e.Season = e.Season.Next()
				e.DaysIntoSeason = 1
				ch.seasonChanged = true
			}
		}
	}

	if ch.hourRolled {
		next := e.rollWeather()
		ch.weatherChanged = next != e.Weather
		e.Weather = next
	}

	if PeriodFor(e.Clock.Hour) != prevPeriod {
		ch.periodChanged = true
	}
	return ch
}

// rollWeather draws a weighted weather from the current season's table.
func (e *Environment) rollWeather() Weather {
	weights := weatherWeights(e.Season)
	total := 0
	for _, entry := range weights {
		total += entry.weight
	}
	roll := int(RandFloat64() * float64(total))
	if roll >= total {
		roll = total - 1
	}
	cumulative := 0
	for _, entry := range weights {
		cumulative += entry.weight
		if roll < cumulative {
			return entry.weather
		}
	}
	return weights[len(weights)-1].weather
}

// Describe returns a short display line for the environment.
func (e *Environment) Describe() string {
	return fmt.Sprintf("Day %d, %02d:%02d — %s, %s",
		e.Clock.Day, e.Clock.Hour, e.Clock.Minute, e.Season, e.Weather)
}
