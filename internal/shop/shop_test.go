package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseDeductsCredits(t *testing.T) {
	w := NewWallet()
	item, err := Purchase(w, "humidifier")
	require.NoError(t, err)

	assert.Equal(t, "Humidifier Pack", item.Name)
	assert.Equal(t, StartingCredits-15, w.Credits)
	assert.Len(t, item.Boosts, 2)
}

func TestPurchaseInsufficientCredits(t *testing.T) {
	w := &Wallet{Credits: 10}
	_, err := Purchase(w, "tonic")
	assert.ErrorIs(t, err, ErrInsufficientCredits)
	assert.Equal(t, 10, w.Credits, "failed purchase must not touch the balance")
}

func TestPurchaseUnknownItem(t *testing.T) {
	w := NewWallet()
	_, err := Purchase(w, "miracle_gro")
	assert.Error(t, err)
	assert.Equal(t, StartingCredits, w.Credits)
}

func TestDepositIgnoresNonPositive(t *testing.T) {
	w := &Wallet{Credits: 5}
	w.Deposit(LevelUpReward)
	w.Deposit(-100)
	w.Deposit(0)
	assert.Equal(t, 5+LevelUpReward, w.Credits)
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range Catalog() {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.Greater(t, item.Cost, 0)
		assert.NotEmpty(t, item.Boosts)
	}
}

func TestFind(t *testing.T) {
	item, err := Find("fertilizer")
	require.NoError(t, err)
	assert.Equal(t, 20, item.Cost)

	_, err = Find("unknown")
	assert.Error(t, err)
}
