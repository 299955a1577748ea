// Package shop holds the care-item economy: a credit wallet funded by
// level-ups and a fixed catalog of items whose boosts feed the engine's
// clamped boost entry point.
package shop

import (
	"errors"
	"fmt"

	"bonsai/internal/bonsai"
)

const (
	// StartingCredits is the wallet balance for a new session.
	StartingCredits = 40
	// LevelUpReward is the credit payout per level gained.
	LevelUpReward = 25
)

// ErrInsufficientCredits means the wallet cannot cover the item's cost.
var ErrInsufficientCredits = errors.New("insufficient credits")

// Wallet tracks the player's credits.
type Wallet struct {
	Credits int
}

// NewWallet returns a wallet with the starting balance.
func NewWallet() *Wallet {
	return &Wallet{Credits: StartingCredits}
}

// Deposit adds credits.
func (w *Wallet) Deposit(n int) {
	if n > 0 {
		w.Credits += n
	}
}

// Spend removes credits or fails without touching the balance.
func (w *Wallet) Spend(n int) error {
	if n > w.Credits {
		return ErrInsufficientCredits
	}
	w.Credits -= n
	return nil
}

// Boost is one stat change an item grants.
type Boost struct {
	Stat   bonsai.StatName
	Amount float64
}

// Item is a purchasable care product.
type Item struct {
	ID     string
	Name   string
	Cost   int
	Boosts []Boost
}

// Catalog returns the items for sale, in display order.
func Catalog() []Item {
	return []Item{
		{
			ID:   "fertilizer",
			Name: "Fertilizer",
			Cost: 20,
			Boosts: []Boost{
				{bonsai.StatHunger, -40},
			},
		},
		{
			ID:   "humidifier",
			Name: "Humidifier Pack",
			Cost: 15,
			Boosts: []Boost{
				{bonsai.StatHydration, 30},
				{bonsai.StatWater, 10},
			},
		},
		{
			ID:   "pest_spray",
			Name: "Pest Spray",
			Cost: 25,
			Boosts: []Boost{
				{bonsai.StatCleanliness, 35},
			},
		},
		{
			ID:   "tonic",
			Name: "Root Tonic",
			Cost: 30,
			Boosts: []Boost{
				{bonsai.StatEnergy, 25},
				{bonsai.StatWater, 10},
			},
		},
	}
}

// Find returns the catalog item with the given ID.
func Find(id string) (Item, error) {
	for _, item := range Catalog() {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, fmt.Errorf("unknown item %q", id)
}

// Purchase spends the item's cost from the wallet and returns the item so
// the caller can apply its boosts. The wallet is untouched on failure.
func Purchase(w *Wallet, id string) (Item, error) {
	item, err := Find(id)
	if err != nil {
		return Item{}, err
	}
	if err := w.Spend(item.Cost); err != nil {
		return Item{}, fmt.Errorf("buying %s: %w", item.Name, err)
	}
	return item, nil
}
