package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bonsai/internal/bonsai"
	"bonsai/internal/config"
	"bonsai/internal/observability"
	"bonsai/internal/shop"
	"bonsai/internal/store"
	"bonsai/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	treeName := flag.String("name", "", "name for a newly potted tree")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	savePath := cfg.Save.Path
	if savePath == "" {
		savePath, err = store.DefaultPath()
		if err != nil {
			logger.Fatal("resolving save path", zap.Error(err))
		}
	}
	st := store.New(savePath)

	params := bonsai.DefaultParams()
	params.TimeSpeed = cfg.Time.Speed

	eng := loadOrCreate(st, params, *treeName, logger)

	m := ui.NewModel(eng, shop.NewWallet(), st, cfg, logger)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		logger.Fatal("running program", zap.Error(err))
	}
}

// loadOrCreate restores the saved tree, falling back to a fresh one when the
// save is missing or unreadable. Load problems are never fatal.
func loadOrCreate(st *store.Store, params bonsai.Params, name string, logger *zap.Logger) *bonsai.Engine {
	snap, err := st.Load()
	switch {
	case err == nil:
		eng, restoreErr := bonsai.Restore(snap, params)
		if restoreErr == nil {
			logger.Info("restored tree",
				zap.String("id", eng.ID()),
				zap.Int("level", eng.Level()))
			return eng
		}
		logger.Warn("snapshot rejected, starting fresh", zap.Error(restoreErr))
	case errors.Is(err, store.ErrNotFound):
		logger.Info("no save file, potting a new tree")
	case errors.Is(err, store.ErrLoadFailed):
		logger.Warn("save file unreadable, starting fresh", zap.Error(err))
	default:
		logger.Warn("loading save", zap.Error(err))
	}
	return bonsai.New(name, params)
}
