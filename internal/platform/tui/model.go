package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bowling/internal/core"
	"github.com/vovakirdan/tui-bowling/internal/games/bowling"
)

// tableMinHeight is the terminal height needed to show the frame table.
const tableMinHeight = 24

// maxScreenW caps the scoreboard buffer on very wide terminals.
const maxScreenW = 160

// Options configures the game screen.
type Options struct {
	Player    string
	Theme     bowling.Theme
	ShowTable bool          // Start with the frame table visible
	Flash     time.Duration // Frame message lifetime; 0 keeps it until the next one
	Logger    *log.Logger   // Nil discards logs
}

// frameFeed collects frame events from the game between updates.
// The model is copied on every update, so it holds the feed by pointer.
type frameFeed struct {
	events []bowling.FrameEvent
}

func (f *frameFeed) drain() []bowling.FrameEvent {
	events := f.events
	f.events = nil
	return events
}

// Model is the Bubble Tea model for a game of bowling.
type Model struct {
	game      *bowling.Game
	opts      Options
	config    core.RuntimeConfig
	screen    *core.Screen
	input     textinput.Model
	table     table.Model
	help      help.Model
	keys      KeyMap
	feed      *frameFeed
	logger    *log.Logger
	showTable bool
	flash     string
	flashSeq  int
	errMsg    string
	quitting  bool
}

// NewModel creates a new Bubble Tea model that records rolls into game.
func NewModel(game *bowling.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	feed := &frameFeed{}
	game.OnFrameComplete(func(ev bowling.FrameEvent) {
		feed.events = append(feed.events, ev)
	})

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0-10, / or X"
	ti.CharLimit = 3
	ti.Width = len(ti.Placeholder)
	ti.Focus()

	cfg := core.DefaultConfig()
	m := Model{
		game:      game,
		opts:      opts,
		config:    cfg,
		screen:    core.NewScreen(cfg.ScreenW, bowling.BoardHeight),
		input:     ti,
		table:     newFrameTable(),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		feed:      feed,
		logger:    logger,
		showTable: opts.ShowTable,
	}
	m.table.SetRows(frameRows(game))
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FlashExpiredMsg:
		if msg.Seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionSubmit:
		return m.submit()

	case core.ActionNewGame:
		m.game.Reset()
		m.feed.drain()
		m.errMsg = ""
		m.setFlash("New game")
		m.input.Reset()
		m.table.SetRows(frameRows(m.game))
		m.logger.Info("new game", "player", m.opts.Player)
		return m, m.flashExpiry()

	case core.ActionToggleTable:
		m.showTable = !m.showTable
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records the typed roll.
func (m Model) submit() (tea.Model, tea.Cmd) {
	token := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	if token == "" {
		return m, nil
	}
	if m.game.IsComplete() {
		m.errMsg = "Game over. Press ctrl+r for a new game."
		return m, nil
	}

	pos := m.game.Position()
	if err := m.game.RollToken(token); err != nil {
		m.errMsg = fmt.Sprintf("Invalid input: %v. Try again.", err)
		m.logger.Warn("rejected roll", "input", token, "frame", pos.Frame, "roll", pos.Roll, "err", err)
		return m, nil
	}

	m.errMsg = ""
	m.logger.Debug("roll", "input", token, "frame", pos.Frame, "roll", pos.Roll, "score", m.game.Score())
	m.table.SetRows(frameRows(m.game))

	events := m.feed.drain()
	if len(events) == 0 {
		return m, nil
	}
	for _, ev := range events {
		m.logger.Info("frame complete", "frame", ev.Frame, "score", ev.Score)
		if ev.Complete {
			m.setFlash(fmt.Sprintf("Game Over! Final Score is: %d", ev.Score))
			m.logger.Info("game over", "player", m.opts.Player, "score", ev.Score)
		} else {
			m.setFlash(fmt.Sprintf("Frame %d complete. Score: %d", ev.Frame, ev.Score))
		}
	}
	return m, m.flashExpiry()
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashSeq++
}

// flashExpiry schedules clearing of the current flash message.
func (m Model) flashExpiry() tea.Cmd {
	if m.opts.Flash <= 0 {
		return nil
	}
	return flashCmd(m.opts.Flash, m.flashSeq)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(core.Clamp(msg.Width, 1, maxScreenW), bowling.BoardHeight)
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "BOWLING"
	if m.opts.Player != "" {
		title += " - " + m.opts.Player
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	m.game.Render(m.screen, m.opts.Theme)
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n\n")

	if m.game.IsComplete() {
		fmt.Fprintf(&b, "Game Over! Final Score is: %d", m.game.Score())
	} else {
		fmt.Fprintf(&b, "Frame %d, Roll %d: %s", m.game.Frame(), m.game.SubRoll(), m.input.View())
	}
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.flash != "":
		b.WriteString(flashStyle.Render(m.flash))
	}
	b.WriteString("\n")

	if m.showTable {
		if m.config.ScreenH < tableMinHeight {
			b.WriteString(helpStyle.Render("Enlarge the window to see the frame table"))
		} else {
			b.WriteString(tableBoxStyle.Render(m.table.View()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Game returns the game being played.
func (m Model) Game() *bowling.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *bowling.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
