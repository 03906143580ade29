// ABOUTME: Rendering and display functions for the matching screen
// ABOUTME: Implements the Bubble Tea View() function and all render helpers

package tui

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"mentordeck/face"
	"mentordeck/gesture"
)

// View renders the matching screen
func (m model) View() string {
	defer func() {
		if r := recover(); r != nil {
			m.deps.Logger.Debugf("[PANIC] View panic: %v", r)
			m.deps.Logger.Debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	if m.quitting {
		return "Saving progress and exiting...\n"
	}

	if !m.ready {
		loading := fmt.Sprintf("%s Loading deck...", m.spin.View())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, loading)
	}

	return m.renderTitle() + "\n" +
		m.renderFaceArea() + "\n" +
		m.renderStatus() + "\n" +
		m.renderHelp()
}

// renderTitle renders the title line
func (m model) renderTitle() string {
	title := " mentordeck"
	if m.opts.DryRun {
		title += " (dry-run)"
	}
	return titleStyle.Render(title)
}

// renderFaceArea renders the current face, positioned for the slide
// animation when a transition is in flight
func (m model) renderFaceArea() string {
	if m.loadErr != nil {
		msg := fmt.Sprintf("Could not load the deck:\n%v\n\nPress r to retry", m.loadErr)
		return lipgloss.Place(m.width, m.faceAreaHeight(),
			lipgloss.Center, lipgloss.Center, emptyStyle.Render(msg))
	}

	x, y := lipgloss.Center, lipgloss.Center
	switch {
	case m.trans != nil:
		x, y = m.transitionPosition()
	case m.drag.Active():
		x, y = m.dragNudge()
	}

	return lipgloss.Place(m.width, m.faceAreaHeight(), x, y, m.renderFace(m.faces.Face()))
}

// transitionPosition computes where the face sits mid-slide. The first
// half moves the old face out toward the exit edge, the second half
// brings the new face in from the opposite edge. The controller commits
// at the midpoint, so the face rendered either side of it differs.
func (m model) transitionPosition() (lipgloss.Position, lipgloss.Position) {
	exitX, exitY, enterX, enterY := slideAnchors(m.trans.plan.Dir)

	if m.trans.frame < transitionMidFrame {
		t := float64(m.trans.frame) / float64(transitionMidFrame)
		return lerp(lipgloss.Center, exitX, t), lerp(lipgloss.Center, exitY, t)
	}

	t := float64(m.trans.frame-transitionMidFrame) / float64(transitionFrames-transitionMidFrame)
	return lerp(enterX, lipgloss.Center, t), lerp(enterY, lipgloss.Center, t)
}

// slideAnchors gives the exit and enter screen positions for a swipe.
// A left swipe pushes the card out the left edge and pulls the next one
// in from the right, and likewise for the other directions.
func slideAnchors(dir gesture.Direction) (exitX, exitY, enterX, enterY lipgloss.Position) {
	switch dir {
	case gesture.Left:
		return lipgloss.Left, lipgloss.Center, lipgloss.Right, lipgloss.Center
	case gesture.Right:
		return lipgloss.Right, lipgloss.Center, lipgloss.Left, lipgloss.Center
	case gesture.Up:
		return lipgloss.Center, lipgloss.Top, lipgloss.Center, lipgloss.Bottom
	case gesture.Down:
		return lipgloss.Center, lipgloss.Bottom, lipgloss.Center, lipgloss.Top
	}
	return lipgloss.Center, lipgloss.Center, lipgloss.Center, lipgloss.Center
}

// lerp interpolates between two placement positions
func lerp(from, to lipgloss.Position, t float64) lipgloss.Position {
	return lipgloss.Position(float64(from) + (float64(to)-float64(from))*t)
}

// dragNudge shifts the face slightly toward the drag direction so a
// swipe in progress gives feedback before release
func (m model) dragNudge() (lipgloss.Position, lipgloss.Position) {
	dx, dy := m.drag.Delta()
	return nudge(dx, m.width), nudge(dy, m.faceAreaHeight())
}

// nudge offsets the centered position by a fraction of the drag
// distance, capped so the face stays in the middle of the screen
func nudge(delta, extent int) lipgloss.Position {
	if extent <= 0 {
		return lipgloss.Center
	}
	shift := float64(delta) / float64(extent)
	const maxShift = 0.15
	if shift > maxShift {
		shift = maxShift
	}
	if shift < -maxShift {
		shift = -maxShift
	}
	return lipgloss.Position(float64(lipgloss.Center) + shift)
}

// renderFace renders one of the three faces
func (m model) renderFace(f face.Face) string {
	switch f {
	case face.Upper:
		return m.renderProfileFace()
	case face.Lower:
		return m.renderDetailFace()
	default:
		return m.renderCardFace()
	}
}

// renderCardFace renders the primary candidate card
func (m model) renderCardFace() string {
	current, ok := m.nav.Current()
	if !ok {
		return cardStyle.Render(emptyStyle.Render("No more cards\n\nPress r to start over"))
	}

	var b strings.Builder
	b.WriteString(cardNameStyle.Render(current.Name) + "\n")
	b.WriteString(cardHeadlineStyle.Render(current.Headline) + "\n\n")

	meta := current.Category
	if current.Years > 0 {
		meta = fmt.Sprintf("%s · %d yrs", meta, current.Years)
	}
	b.WriteString(cardMetaStyle.Render(meta) + "\n")

	if len(current.Skills) > 0 {
		b.WriteString(skillStyle.Render(strings.Join(current.Skills, " · ")) + "\n")
	}

	b.WriteString("\n" + faceLabelStyle.Render("↑ details   ↓ profile   enter match"))

	return cardStyle.Render(b.String())
}

// renderProfileFace renders the viewer profile and match history
func (m model) renderProfileFace() string {
	var b strings.Builder

	name := m.viewer.Name
	if name == "" {
		name = "Anonymous mentee"
	}
	b.WriteString(cardNameStyle.Render(name) + "\n")
	if m.viewer.Role != "" {
		b.WriteString(cardHeadlineStyle.Render(m.viewer.Role) + "\n")
	}
	if m.viewer.Goals != "" {
		b.WriteString(cardMetaStyle.Render("Goals: "+m.viewer.Goals) + "\n")
	}
	if len(m.viewer.Interests) > 0 {
		b.WriteString(skillStyle.Render(strings.Join(m.viewer.Interests, " · ")) + "\n")
	}

	seen := m.progress.CardsSeen + m.sessionSeen
	matches := m.progress.Matches + m.sessionMatches
	b.WriteString("\n" + cardMetaStyle.Render(fmt.Sprintf("Cards seen: %d   Matches: %d", seen, matches)) + "\n")

	if len(m.recent) > 0 {
		b.WriteString("\n" + cardHeadlineStyle.Render("Recent matches") + "\n")
		for _, rec := range m.recent {
			b.WriteString(matchedStyle.Render("♥ ") + rec.CandidateName +
				cardMetaStyle.Render(rec.MatchedAt.Format(" · Jan 02")) + "\n")
		}
	}

	b.WriteString("\n" + faceLabelStyle.Render("↑ back to cards"))

	return cardStyle.Render(b.String())
}

// renderDetailFace renders the scrollable candidate detail view
func (m model) renderDetailFace() string {
	current, ok := m.nav.Current()
	if !ok {
		return detailStyle.Render(emptyStyle.Render("No card selected"))
	}

	var b strings.Builder
	b.WriteString(cardNameStyle.Render(current.Name) + "\n")
	b.WriteString(cardHeadlineStyle.Render(current.Headline) + "\n\n")
	b.WriteString(m.detail.View() + "\n")
	b.WriteString("\n" + faceLabelStyle.Render("↓ back to cards   wheel/pgup/pgdn scroll"))

	return detailStyle.Render(b.String())
}

// refreshDetailContent rebuilds the detail viewport for the current card
func (m *model) refreshDetailContent() {
	if m.nav == nil {
		return
	}
	current, ok := m.nav.Current()
	if !ok {
		m.detail.SetContent("")
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Category: %s\n", current.Category))
	b.WriteString(fmt.Sprintf("Experience: %d years\n", current.Years))
	if len(current.Skills) > 0 {
		b.WriteString("Skills: " + strings.Join(current.Skills, ", ") + "\n")
	}
	b.WriteString("\n")

	bio := current.Bio
	if bio == "" {
		bio = "No bio provided."
	}
	// Wrap to the viewport width so long bios scroll instead of overflow
	b.WriteString(lipgloss.NewStyle().Width(m.detail.Width).Render(bio))

	m.detail.SetContent(b.String())
}

// sizeDetailViewport fits the detail viewport to the current terminal
func (m *model) sizeDetailViewport() {
	w := detailWidth
	if m.width > 0 && w > m.width-8 {
		w = m.width - 8
	}
	if w < 1 {
		w = 1
	}
	h := m.faceAreaHeight() - 4
	if h < minDetailView {
		h = minDetailView
	}
	m.detail.Width = w
	m.detail.Height = h
}

// faceAreaHeight is the vertical space left for the face between the
// title line and the status bar
func (m model) faceAreaHeight() int {
	h := m.height - totalUIChrome
	if h < minFaceHeight {
		return minFaceHeight
	}
	return h
}

// renderStatus renders the status bar
func (m model) renderStatus() string {
	// Show status message if recent
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return statusStyle.Width(m.width).Render(m.statusMsg)
	}

	if m.nav == nil {
		return statusStyle.Width(m.width).Render("")
	}

	var cardInfo string
	if m.nav.Exhausted() {
		cardInfo = fmt.Sprintf("End of deck (%d seen)", m.nav.SeenCount())
	} else {
		pos := m.nav.PastLen() + 1
		total := pos + m.nav.Remaining()
		cardInfo = fmt.Sprintf("Card %d/%d", pos, total)
	}

	status := fmt.Sprintf("%s | Seen: %d | Matches: %d | Face: %s",
		cardInfo,
		m.progress.CardsSeen+m.sessionSeen,
		m.progress.Matches+m.sessionMatches,
		m.faces.Face(),
	)

	return statusStyle.Width(m.width).Render(status)
}

// renderHelp renders the help text
func (m model) renderHelp() string {
	return helpStyle.Render(" ←/h: next | →/l: back | ↑/k: details | ↓/j: profile | enter: match | r: reload | q: quit")
}
