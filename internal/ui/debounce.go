package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"prlinks/internal/domain"
)

// DefaultDebounceDelay is the quiescence window for query edits
const DefaultDebounceDelay = 300 * time.Millisecond

// debounceMsg fires when a debounce window elapses
type debounceMsg struct {
	tag int
}

// debouncer buffers the latest query draft and releases it only once no
// newer edit arrived within the delay. Each Push bumps the tag; a tick whose
// tag is stale is dropped. It never touches a fetch already in flight.
type debouncer struct {
	delay time.Duration
	draft domain.QueryParameters
	tag   int
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// Push records draft and schedules its release
func (d *debouncer) Push(draft domain.QueryParameters) tea.Cmd {
	d.tag++
	d.draft = draft
	tag := d.tag

	if d.delay <= 0 {
		return func() tea.Msg { return debounceMsg{tag: tag} }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceMsg{tag: tag}
	})
}

// Settle returns the buffered draft if msg belongs to the latest Push
func (d *debouncer) Settle(msg debounceMsg) (domain.QueryParameters, bool) {
	if msg.tag != d.tag {
		return domain.QueryParameters{}, false
	}
	return d.draft, true
}

// Cancel drops the buffered draft; ticks already scheduled become stale
func (d *debouncer) Cancel() {
	d.tag++
}
