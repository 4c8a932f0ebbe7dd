package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/DivyomSharma/invoicer/models"
)

const (
	draftKey     = "invoicer_draft"
	templatesKey = "invoicer_templates"
)

// DraftStore persists the work-in-progress invoice and named templates to a
// key-value store.
type DraftStore struct {
	kv KV
}

func NewDraftStore(kv KV) *DraftStore {
	return &DraftStore{kv: kv}
}

// SaveDraft writes the current invoice under the fixed draft key.
func (s *DraftStore) SaveDraft(ctx context.Context, data models.InvoiceData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("storage: marshal draft: %w", err)
	}
	return s.kv.Set(ctx, draftKey, raw)
}

// LoadDraft returns the saved draft, or ok=false when there is none or the
// stored value does not parse. A broken draft is never an error; the caller
// falls back to defaults.
func (s *DraftStore) LoadDraft(ctx context.Context) (models.InvoiceData, bool) {
	raw, err := s.kv.Get(ctx, draftKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("load draft: %v", err)
		}
		return models.InvoiceData{}, false
	}
	var data models.InvoiceData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("load draft: discarding unparseable draft: %v", err)
		return models.InvoiceData{}, false
	}
	return data, true
}

// ClearDraft removes the saved draft.
func (s *DraftStore) ClearDraft(ctx context.Context) error {
	return s.kv.Delete(ctx, draftKey)
}

// SaveTemplate stores the invoice as a reusable named template.
func (s *DraftStore) SaveTemplate(ctx context.Context, name string, data models.InvoiceData) error {
	templates := s.templates(ctx)
	templates[name] = data
	raw, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("storage: marshal templates: %w", err)
	}
	return s.kv.Set(ctx, templatesKey, raw)
}

// Template returns the named template.
func (s *DraftStore) Template(ctx context.Context, name string) (models.InvoiceData, bool) {
	data, ok := s.templates(ctx)[name]
	return data, ok
}

// TemplateNames lists saved template names in sorted order.
func (s *DraftStore) TemplateNames(ctx context.Context) []string {
	templates := s.templates(ctx)
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeleteTemplate removes the named template. Unknown names are a no-op.
func (s *DraftStore) DeleteTemplate(ctx context.Context, name string) error {
	templates := s.templates(ctx)
	if _, ok := templates[name]; !ok {
		return nil
	}
	delete(templates, name)
	raw, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("storage: marshal templates: %w", err)
	}
	return s.kv.Set(ctx, templatesKey, raw)
}

func (s *DraftStore) templates(ctx context.Context) map[string]models.InvoiceData {
	templates := map[string]models.InvoiceData{}
	raw, err := s.kv.Get(ctx, templatesKey)
	if err != nil {
		return templates
	}
	if err := json.Unmarshal(raw, &templates); err != nil {
		return map[string]models.InvoiceData{}
	}
	return templates
}
