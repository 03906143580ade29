// ABOUTME: Event handling and state updates for the matching screen
// ABOUTME: Implements the Bubble Tea Update() function and message handlers

package tui

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"mentordeck/deck"
	"mentordeck/face"
	"mentordeck/gesture"
	"mentordeck/match"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.deps.Logger.Debugf("[PANIC] Update panic: %v", r)
			m.deps.Logger.Debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sizeDetailViewport()
		m.refreshDetailContent()
		return m, nil

	case spinner.TickMsg:
		// The spinner only runs while the catalog loads.
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case recentMatchesMsg:
		if msg.err != nil {
			m.deps.Logger.Debugf("[MATCH] failed to load recent matches: %v", msg.err)
			return m, nil
		}
		m.recent = msg.matches
		return m, nil

	case matchRecordedMsg:
		return m.handleMatchRecorded(msg)

	case transitionFrameMsg:
		return m.handleTransitionFrame(msg)

	case watchEventMsg:
		m.setStatus("Deck changed on disk, press r to reload")
		return m, waitForWatchEvent(m.watcher, m.deps.Logger)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleCatalogLoaded swaps in a freshly loaded deck. Both the navigator
// and the face controller are rebuilt, which also drops any transition
// that was in flight when a reload landed.
func (m model) handleCatalogLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.deps.Logger.Debugf("[TUI] catalog load failed: %v", msg.err)
		if m.nav != nil {
			// A deck is already showing, keep it and surface the failure
			m.setStatus("Reload failed, keeping the current deck")
			return m, nil
		}
		m.loadErr = msg.err
		m.ready = true
		return m, nil
	}
	m.loadErr = nil

	m.nav = deck.New(msg.candidates)
	m.faces = face.New(m.nav)
	m.trans = nil
	m.ready = true

	switch {
	case msg.reset:
		m.setStatus(fmt.Sprintf("Deck reloaded: %d cards", len(msg.candidates)))
	case len(msg.candidates) == 0:
		m.setStatus("The catalog is empty, import a deck file first")
	}

	m.deps.Logger.Debugf("[TUI] deck loaded: %d candidates (reset=%v)", len(msg.candidates), msg.reset)
	m.sizeDetailViewport()
	m.refreshDetailContent()

	return m, m.loadRecent()
}

// handleMatchRecorded folds a saved match into the screen state
func (m model) handleMatchRecorded(msg matchRecordedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.deps.Logger.Debugf("[MATCH] record failed: %v", msg.err)
		m.setStatus("Could not save the match")
		return m, nil
	}

	m.sessionMatches++
	m.setStatus(fmt.Sprintf("Matched with %s", msg.match.CandidateName))
	m.deps.Logger.Debugf("[MATCH] recorded %s (%s)", msg.match.CandidateName, msg.match.ID)

	// Keep the profile face list fresh without another query.
	m.recent = append([]match.Match{msg.match}, m.recent...)
	if limit := m.deps.Config.RecentMatches; limit > 0 && len(m.recent) > limit {
		m.recent = m.recent[:limit]
	}

	return m, nil
}

// handleTransitionFrame advances the active transition one frame, running
// the commit exactly at the midpoint and releasing the lock at the end
func (m model) handleTransitionFrame(msg transitionFrameMsg) (tea.Model, tea.Cmd) {
	if m.trans == nil || msg.seq != m.trans.seq {
		// Stale tick from a transition that already ended.
		return m, nil
	}

	m.trans.frame++

	if m.trans.frame == transitionMidFrame {
		m.faces.Commit(m.trans.plan)
		m.afterCommit(m.trans.plan)
	}

	if m.trans.frame >= transitionFrames {
		m.faces.Finish()
		m.trans = nil
		return m, nil
	}

	return m, m.transitionTick()
}

// handleKey routes key presses: quit always works, everything else waits
// for the deck to be ready
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m.handleQuit()
	}

	if !m.ready {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Left):
		return m, m.handleGesture(gesture.Left)

	case key.Matches(msg, keys.Right):
		return m, m.handleGesture(gesture.Right)

	case key.Matches(msg, keys.Up):
		return m, m.handleGesture(gesture.Up)

	case key.Matches(msg, keys.Down):
		return m, m.handleGesture(gesture.Down)

	case key.Matches(msg, keys.Match):
		return m, m.commitMatch()

	case key.Matches(msg, keys.Reload):
		return m, m.requestReload()
	}

	// Remaining keys (pgup/pgdn and friends) scroll the detail face.
	if m.faces != nil && m.faces.Face() == face.Lower {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleMouse tracks press/drag/release and classifies the swipe on
// release. Wheel events scroll the detail face.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if m.faces != nil && m.faces.Face() == face.Lower {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drag.Press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		m.drag.Move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		dir := m.drag.Release(msg.X, msg.Y, m.deps.Config.SwipeThreshold)
		if dir != gesture.None {
			return m, m.handleGesture(dir)
		}
	}

	return m, nil
}

// handleGesture routes one classified swipe through the face controller.
// Gestures rejected by the controller are dropped, never queued.
func (m *model) handleGesture(dir gesture.Direction) tea.Cmd {
	if m.faces == nil {
		return nil
	}
	if m.faces.Busy() {
		m.deps.Logger.Debugf("[GESTURE] %s dropped: transition in flight", dir)
		return nil
	}

	if !m.deps.Config.Animate {
		t, ok := m.faces.Dispatch(dir)
		if !ok {
			m.deps.Logger.Debugf("[GESTURE] %s rejected on %s face", dir, m.faces.Face())
			return nil
		}
		m.afterCommit(t)
		return nil
	}

	t, ok := m.faces.Begin(dir)
	if !ok {
		m.deps.Logger.Debugf("[GESTURE] %s rejected on %s face", dir, m.faces.Face())
		return nil
	}

	m.transSeq++
	m.trans = &activeTransition{plan: t, seq: m.transSeq}
	m.deps.Logger.Debugf("[GESTURE] %s begins %s -> %s", dir, t.From, t.To)

	return m.transitionTick()
}

// afterCommit applies screen-level effects of a committed transition:
// session counters, detail content, and the exhaustion hint
func (m *model) afterCommit(t face.Transition) {
	switch t.Move {
	case face.MoveAdvance:
		m.sessionSeen++
		m.refreshDetailContent()
		if m.nav.Exhausted() {
			m.setStatus("End of deck, press r to show everything again")
		}
	case face.MoveRetreat:
		m.refreshDetailContent()
	default:
		if t.To == face.Lower {
			m.refreshDetailContent()
			m.detail.GotoTop()
		}
	}
}

// commitMatch records the current card as a match. Only legal on the
// Primary face with a card showing and no transition in flight.
func (m *model) commitMatch() tea.Cmd {
	if m.faces == nil || m.faces.Face() != face.Primary || m.faces.Busy() {
		return nil
	}

	current, ok := m.nav.Current()
	if !ok {
		m.setStatus("No card to match")
		return nil
	}

	if m.opts.DryRun {
		m.setStatus(fmt.Sprintf("dry-run: would match with %s", current.Name))
		return nil
	}

	return m.recordMatch(current)
}

// requestReload reloads the deck from the provider. Rejected while a
// transition is in flight: reload replaces the navigator, and nothing may
// mutate deck state while a transition holds the lock.
func (m *model) requestReload() tea.Cmd {
	if m.faces != nil && m.faces.Busy() {
		m.deps.Logger.Debugf("[TUI] reload dropped: transition in flight")
		return nil
	}
	m.setStatus("Reloading deck...")
	return m.loadCatalog(true)
}

// handleQuit persists session progress and quits
func (m *model) handleQuit() (model, tea.Cmd) {
	if m.quitting {
		return *m, tea.Quit
	}
	m.quitting = true

	if m.opts.DryRun {
		return *m, tea.Quit
	}

	m.progress.CardsSeen += m.sessionSeen
	m.progress.Matches += m.sessionMatches
	m.progress.LastSession = time.Now().UTC()
	if err := m.deps.Profiles.SaveProgress(m.progress); err != nil {
		m.deps.Logger.Debugf("[TUI] Failed to save progress on quit: %v", err)
		// Continue anyway - don't block quit on a save failure
	}

	return *m, tea.Quit
}

// setStatus shows a transient message in the status bar
func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}
