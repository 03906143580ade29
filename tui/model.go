// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model hosting the deck, faces, and gesture engine

// Package tui provides the interactive matching screen: a deck of candidate
// cards browsed with swipes, plus a profile face and a per-card detail face.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"mentordeck/deck"
	"mentordeck/face"
	"mentordeck/gesture"
	"mentordeck/match"
	"mentordeck/profile"
)

// Layout constants for UI dimensions
const (
	titleHeight     = 1 // App title line
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line
	totalUIChrome   = titleHeight + statusBarHeight + helpHeight

	cardWidth   = 44 // Candidate card face width
	detailWidth = 64 // Detail face text width

	// Minimum dimensions to ensure usability
	minFaceHeight = 7
	minDetailView = 3
)

// Interaction constants
const (
	statusMessageDuration = 5 * time.Second // How long to show transient status messages

	// transitionFrames is even so the commit lands exactly between the
	// slide-out and slide-in halves.
	transitionFrames   = 8
	transitionMidFrame = transitionFrames / 2
	minFrameInterval   = 15 * time.Millisecond
)

// catalogLoadedMsg carries a fresh candidate deck from the provider
type catalogLoadedMsg struct {
	candidates []deck.Candidate
	reset      bool // true when the user asked for a reload
	err        error
}

// transitionFrameMsg advances the active transition by one frame.
// seq identifies which transition the tick belongs to.
type transitionFrameMsg struct {
	seq int
}

// matchRecordedMsg reports the outcome of recording a match
type matchRecordedMsg struct {
	match match.Match
	err   error
}

// recentMatchesMsg carries the match history shown on the profile face
type recentMatchesMsg struct {
	matches []match.Match
	err     error
}

// watchEventMsg signals that the watched deck source changed on disk
type watchEventMsg struct{}

// activeTransition tracks one animated transition through its frames
type activeTransition struct {
	plan  face.Transition
	frame int
	seq   int
}

// model holds the matching screen state
type model struct {
	// Injected dependencies
	deps Dependencies
	opts Options

	// Engine state (nil until the first catalog load lands)
	nav   *deck.Navigator
	faces *face.Controller

	// In-flight transition
	trans    *activeTransition
	transSeq int // increments per transition so stale frame ticks are dropped

	// Gesture input
	drag gesture.Drag

	// Profile face data
	viewer   profile.Profile
	progress profile.Progress
	recent   []match.Match

	// Session counters, folded into stored progress on quit
	sessionSeen    int
	sessionMatches int

	// File watching
	watcher *fsnotify.Watcher

	// UI state
	width        int
	height       int
	ready        bool
	quitting     bool
	spin         spinner.Model
	detail       viewport.Model // scrolls the detail face bio
	statusMsg    string         // Temporary status message (e.g., "Matched with Ana")
	statusMsgAge time.Time      // When status message was set
	loadErr      error          // Last catalog load failure, shown with a retry hint
}

// Key bindings
type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Match  key.Binding
	Reload key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "next card"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "previous card"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "details"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "your profile"),
	),
	Match: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "match"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload deck"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2).
			Width(cardWidth)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)

	cardNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardHeadlineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7"))

	cardMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	skillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	faceLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Align(lipgloss.Center)

	matchedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Run starts the matching screen with injected dependencies
func Run(opts Options, deps Dependencies) error {
	m := initModel(opts, deps)

	if opts.WatchPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			deps.Logger.Debugf("[WATCH] disabled, cannot create watcher: %v", err)
		} else if err := watcher.Add(opts.WatchPath); err != nil {
			deps.Logger.Debugf("[WATCH] disabled, cannot watch %s: %v", opts.WatchPath, err)
			watcher.Close()
		} else {
			m.watcher = watcher
			defer watcher.Close()
		}
	}

	// Mouse cell motion reports press, drag, and release coordinates,
	// which the swipe classifier needs.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("matching screen error: %w", err)
	}

	return nil
}

// initModel creates the initial model; the deck itself arrives
// asynchronously via the command Init kicks off
func initModel(opts Options, deps Dependencies) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	viewer, err := deps.Profiles.LoadProfile()
	if err != nil {
		deps.Logger.Debugf("[TUI] could not load profile: %v", err)
	}
	progress, err := deps.Profiles.LoadProgress()
	if err != nil {
		deps.Logger.Debugf("[TUI] could not load progress: %v", err)
	}

	return model{
		deps:     deps,
		opts:     opts,
		viewer:   viewer,
		progress: progress,
		spin:     s,
		detail:   viewport.New(0, 0), // sized on first WindowSizeMsg
	}
}

// Init kicks off the catalog load and, when configured, file watching
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, m.loadCatalog(false)}
	if m.watcher != nil {
		cmds = append(cmds, waitForWatchEvent(m.watcher, m.deps.Logger))
	}
	return tea.Batch(cmds...)
}

// loadCatalog fetches the deck off the update loop. reset marks a reload
// requested by the user, as opposed to the initial load.
func (m model) loadCatalog(reset bool) tea.Cmd {
	provider := m.deps.Catalog
	return func() tea.Msg {
		candidates, err := provider.LoadAll(context.Background())
		return catalogLoadedMsg{candidates: candidates, reset: reset, err: err}
	}
}

// loadRecent fetches the recent match history for the profile face
func (m model) loadRecent() tea.Cmd {
	recorder := m.deps.Matches
	limit := m.deps.Config.RecentMatches
	return func() tea.Msg {
		matches, err := recorder.Recent(context.Background(), limit)
		return recentMatchesMsg{matches: matches, err: err}
	}
}

// recordMatch persists a committed selection for the candidate
func (m model) recordMatch(c deck.Candidate) tea.Cmd {
	recorder := m.deps.Matches
	return func() tea.Msg {
		rec, err := recorder.Record(context.Background(), c)
		return matchRecordedMsg{match: rec, err: err}
	}
}

// transitionTick schedules the next animation frame for the active
// transition. The seq baked into the message lets Update drop ticks that
// belong to a transition that already ended.
func (m model) transitionTick() tea.Cmd {
	seq := m.trans.seq
	return tea.Tick(m.frameInterval(), func(time.Time) tea.Msg {
		return transitionFrameMsg{seq: seq}
	})
}

// frameInterval splits the configured transition duration across frames
func (m model) frameInterval() time.Duration {
	d := time.Duration(m.deps.Config.TransitionMs) * time.Millisecond / transitionFrames
	if d < minFrameInterval {
		return minFrameInterval
	}
	return d
}
