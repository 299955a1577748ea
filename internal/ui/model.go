package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bonsai/internal/bonsai"
	"bonsai/internal/config"
	"bonsai/internal/shop"
	"bonsai/internal/store"
)

// The menu lists every action, then Shop, then Quit.
var (
	menuShopIndex = len(bonsai.Actions)
	menuQuitIndex = len(bonsai.Actions) + 1
	menuEntries   = len(bonsai.Actions) + 2
)

// maxMessages caps the notification feed shown in the view.
const maxMessages = 4

// messageLog collects notification text across Update calls. It lives behind
// a pointer because Bubble Tea copies the model by value.
type messageLog struct {
	lines []string
}

func (l *messageLog) add(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > maxMessages {
		l.lines = l.lines[len(l.lines)-maxMessages:]
	}
}

// Model is the Bubble Tea host for the simulation. All engine mutation
// happens inside Update, so ticks and actions are serialized on one
// goroutine as the core requires.
type Model struct {
	Engine *bonsai.Engine
	Wallet *shop.Wallet
	Store  *store.Store
	Cfg    config.Config
	Logger *zap.Logger

	Choice     int
	FoodIndex  int
	InShop     bool
	ShopChoice int
	Quitting   bool

	messages *messageLog
	ticks    int
}

type tickMsg time.Time

// NewModel wires the engine's notifications into the message feed and the
// wallet's level-up payouts.
func NewModel(eng *bonsai.Engine, wallet *shop.Wallet, st *store.Store, cfg config.Config, logger *zap.Logger) Model {
	m := Model{
		Engine:   eng,
		Wallet:   wallet,
		Store:    st,
		Cfg:      cfg,
		Logger:   logger,
		messages: &messageLog{},
	}

	eng.Subscribe(func(n bonsai.Notification) {
		if n.Type == bonsai.NoteLevelUp {
			wallet.Deposit(shop.LevelUpReward)
			m.messages.add(fmt.Sprintf("%s (+%d credits)", n.Message, shop.LevelUpReward))
		} else if n.Message != "" {
			m.messages.add(n.Message)
		}
		logger.Debug("notification",
			zap.String("type", string(n.Type)),
			zap.String("message", n.Message))
	})

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.InShop {
			return m.updateShop(msg)
		}
		return m.updateMenu(msg)

	case tickMsg:
		m.Engine.Tick()
		m.ticks++
		m.maybeAutosave()
		return m, tick()
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.saveNow("quit")
		m.Quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < menuEntries-1 {
			m.Choice++
		}
	case "f":
		m.FoodIndex = (m.FoodIndex + 1) % len(bonsai.FoodKinds)
	case "s":
		m.InShop = true
		m.ShopChoice = 0
	case "enter", " ":
		switch {
		case m.Choice == menuShopIndex:
			m.InShop = true
			m.ShopChoice = 0
		case m.Choice == menuQuitIndex:
			m.saveNow("quit")
			m.Quitting = true
			return m, tea.Quit
		default:
			m.doAction(bonsai.Actions[m.Choice])
		}
	}
	return m, nil
}

func (m Model) updateShop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	catalog := shop.Catalog()
	switch msg.String() {
	case "ctrl+c", "q":
		m.saveNow("quit")
		m.Quitting = true
		return m, tea.Quit
	case "esc", "s":
		m.InShop = false
	case "up", "k":
		if m.ShopChoice > 0 {
			m.ShopChoice--
		}
	case "down", "j":
		if m.ShopChoice < len(catalog)-1 {
			m.ShopChoice++
		}
	case "enter", " ":
		m.buySelected()
	}
	return m, nil
}

// doAction routes a menu action into the engine.
func (m *Model) doAction(a bonsai.Action) {
	var err error
	if a == bonsai.ActionFeed {
		err = m.Engine.Feed(bonsai.FoodKinds[m.FoodIndex])
	} else {
		err = m.Engine.Do(a)
	}
	if err != nil {
		// Unknown action names indicate a mis-wired menu.
		m.Logger.Error("action rejected", zap.String("action", string(a)), zap.Error(err))
		m.messages.add(err.Error())
	}
}

// buySelected purchases the highlighted item and applies its boosts.
func (m *Model) buySelected() {
	catalog := shop.Catalog()
	if m.ShopChoice < 0 || m.ShopChoice >= len(catalog) {
		return
	}
	item, err := shop.Purchase(m.Wallet, catalog[m.ShopChoice].ID)
	if err != nil {
		m.messages.add(err.Error())
		return
	}
	for _, b := range item.Boosts {
		m.Engine.ApplyBoost(b.Stat, b.Amount)
	}
	m.messages.add(fmt.Sprintf("bought %s (-%d credits)", item.Name, item.Cost))
	m.Logger.Info("purchase", zap.String("item", item.ID), zap.Int("credits", m.Wallet.Credits))
}

// maybeAutosave saves on the configured real-time schedule. One tick is one
// real second.
func (m *Model) maybeAutosave() {
	if !m.Cfg.Autosave.Enabled {
		return
	}
	interval := m.Cfg.Autosave.IntervalMinutes * 60
	if interval <= 0 || m.ticks%interval != 0 {
		return
	}
	m.saveNow("autosave")
}

// saveNow persists a snapshot. Save failures are reported, never fatal: the
// scheduler itself cannot fail, and a missed save only costs progress.
func (m *Model) saveNow(reason string) {
	if err := m.Store.Save(m.Engine.Snapshot()); err != nil {
		m.Logger.Error("save failed", zap.String("reason", reason), zap.Error(err))
		m.messages.add("save failed: " + err.Error())
		return
	}
	m.Logger.Debug("saved", zap.String("reason", reason))
}
