package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bonsai/internal/bonsai"
	"bonsai/internal/store"
)

func TestLoadOrCreateStartsFreshWithoutSave(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "bonsai.json"))
	eng := loadOrCreate(st, bonsai.DefaultParams(), "Maple", zap.NewNop())

	require.NotNil(t, eng)
	assert.Equal(t, "Maple", eng.Name())
	assert.Equal(t, 0, eng.Level())
}

func TestLoadOrCreateRestoresSavedTree(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "bonsai.json"))
	saved := bonsai.New("Juniper", bonsai.DefaultParams())
	require.NoError(t, st.Save(saved.Snapshot()))

	eng := loadOrCreate(st, bonsai.DefaultParams(), "ignored", zap.NewNop())
	assert.Equal(t, saved.ID(), eng.ID())
	assert.Equal(t, "Juniper", eng.Name())
}

func TestLoadOrCreateSurvivesCorruptSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bonsai.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	eng := loadOrCreate(store.New(path), bonsai.DefaultParams(), "Pine", zap.NewNop())
	require.NotNil(t, eng)
	assert.Equal(t, "Pine", eng.Name())
}

func TestLoadOrCreateRejectsBadSnapshot(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "bonsai.json"))
	snap := bonsai.New("x", bonsai.DefaultParams()).Snapshot()
	snap.Weather = "hail"
	require.NoError(t, st.Save(snap))

	eng := loadOrCreate(st, bonsai.DefaultParams(), "Elm", zap.NewNop())
	assert.Equal(t, "Elm", eng.Name(), "unparseable snapshot must fall back to a fresh tree")
}
