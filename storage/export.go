package storage

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DivyomSharma/invoicer/models"
)

// ExportFilename names the download artifact after the invoice number,
// falling back to "draft" when it is empty.
func ExportFilename(data models.InvoiceData) string {
	number := data.InvoiceNumber
	if number == "" {
		number = "draft"
	}
	return fmt.Sprintf("invoice-%s.json", number)
}

// ExportJSON serializes the full invoice as pretty-printed JSON. The output
// round-trips exactly through ImportJSON.
func ExportJSON(data models.InvoiceData) ([]byte, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("storage: export: %w", err)
	}
	return raw, nil
}

// ImportJSON parses an exported invoice file. The whole document is replaced
// on success; missing fields read as zero values. Invalid JSON is a parse
// error for the caller to surface.
func ImportJSON(r io.Reader) (models.InvoiceData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return models.InvoiceData{}, fmt.Errorf("storage: read import: %w", err)
	}
	var data models.InvoiceData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.InvoiceData{}, fmt.Errorf("storage: invalid JSON file: %w", err)
	}
	return data, nil
}
