package storage

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/DivyomSharma/invoicer/models"
)

// DefaultAutosaveDelay is the quiet period before an edit is persisted.
const DefaultAutosaveDelay = time.Second

// Autosaver debounces draft writes: every Notify resets the timer and only
// the last value within a quiet window reaches the store. Saves are
// fire-and-forget; failures are logged, never surfaced to the editor.
type Autosaver struct {
	drafts *DraftStore
	delay  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *models.InvoiceData
	closed  bool
}

func NewAutosaver(drafts *DraftStore, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{drafts: drafts, delay: delay}
}

// Notify schedules data to be saved once the quiet period elapses,
// superseding any save still pending.
func (a *Autosaver) Notify(data models.InvoiceData) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = &data
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	data := a.pending
	a.pending = nil
	a.mu.Unlock()

	if data == nil {
		return
	}
	if err := a.drafts.SaveDraft(context.Background(), *data); err != nil {
		log.Printf("autosave: %v", err)
	}
}

// Flush writes any pending draft immediately. Used on shutdown.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	a.fire()
}

// Close stops the autosaver after flushing pending work.
func (a *Autosaver) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	a.Flush()
}
