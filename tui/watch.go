// ABOUTME: File watching for the deck source
// ABOUTME: Turns fsnotify events into debounced Bubble Tea messages

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long to wait after a change before reporting it,
// so atomic save patterns (write tmp, rename) land as one event
const watchDebounce = 100 * time.Millisecond

// waitForWatchEvent returns a command that waits for the deck source to
// change on disk. The caller re-issues it after each watchEventMsg.
func waitForWatchEvent(watcher *fsnotify.Watcher, logger Logger) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				// Debounce, then drain whatever the same save burst produced
				time.Sleep(watchDebounce)
				for {
					select {
					case _, ok := <-watcher.Events:
						if !ok {
							return watchEventMsg{}
						}
					default:
						return watchEventMsg{}
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				logger.Debugf("[WATCH] error: %v", err)
			}
		}
	}
}
