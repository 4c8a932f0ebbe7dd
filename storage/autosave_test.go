package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DivyomSharma/invoicer/models"
)

func TestAutosaverDebounce(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftStore(setupGormKV(t))
	saver := NewAutosaver(drafts, 30*time.Millisecond)
	defer saver.Close()

	// A burst of edits inside the quiet window persists only the last one.
	for _, notes := range []string{"one", "two", "three"} {
		data := models.NewInvoiceData()
		data.Notes = notes
		saver.Notify(data)
		time.Sleep(5 * time.Millisecond)
	}

	_, ok := drafts.LoadDraft(ctx)
	assert.False(t, ok, "nothing should be saved before the quiet window elapses")

	assert.Eventually(t, func() bool {
		saved, ok := drafts.LoadDraft(ctx)
		return ok && saved.Notes == "three"
	}, time.Second, 10*time.Millisecond)
}

func TestAutosaverFlush(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftStore(setupGormKV(t))
	saver := NewAutosaver(drafts, time.Hour)
	defer saver.Close()

	data := models.NewInvoiceData()
	data.Notes = "pending"
	saver.Notify(data)

	saver.Flush()

	saved, ok := drafts.LoadDraft(ctx)
	assert.True(t, ok)
	assert.Equal(t, "pending", saved.Notes)
}

func TestAutosaverCloseRejectsFurtherNotifies(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftStore(setupGormKV(t))
	saver := NewAutosaver(drafts, 10*time.Millisecond)

	saver.Close()
	data := models.NewInvoiceData()
	data.Notes = "late"
	saver.Notify(data)

	time.Sleep(50 * time.Millisecond)
	_, ok := drafts.LoadDraft(ctx)
	assert.False(t, ok)
}
