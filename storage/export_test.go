package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DivyomSharma/invoicer/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	logo := "data:image/png;base64,iVBORw0KGgo="
	data := models.NewInvoiceData()
	data.InvoiceNumber = "INV-654321"
	data.Sender.Name = "Acme Ltd"
	data.Sender.State = "Karnataka"
	data.Sender.Logo = &logo
	data.Client.Name = "Globex"
	data.Client.State = "Delhi"
	data.Items[0].Description = "Consulting"
	data.Items[0].Quantity = 2
	data.Items[0].Rate = 500
	data.Items[0].Amount = 1000
	data.DiscountType = models.DiscountFixed
	data.DiscountRate = 50
	data.PlaceOfSupply = "Karnataka"

	raw, err := ExportJSON(data)
	assert.NoError(t, err)

	imported, err := ImportJSON(bytes.NewReader(raw))
	assert.NoError(t, err)
	assert.Equal(t, data, imported)
}

func TestExportJSONIsPrettyPrinted(t *testing.T) {
	raw, err := ExportJSON(models.NewInvoiceData())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \""))
}

func TestExportFilename(t *testing.T) {
	data := models.NewInvoiceData()
	data.InvoiceNumber = "INV-000042"
	assert.Equal(t, "invoice-INV-000042.json", ExportFilename(data))

	data.InvoiceNumber = ""
	assert.Equal(t, "invoice-draft.json", ExportFilename(data))
}

func TestImportJSONInvalid(t *testing.T) {
	_, err := ImportJSON(strings.NewReader("{broken"))
	assert.Error(t, err)
}

func TestImportJSONMissingFieldsZeroValue(t *testing.T) {
	imported, err := ImportJSON(strings.NewReader(`{"invoiceNumber":"INV-1"}`))
	assert.NoError(t, err)
	assert.Equal(t, "INV-1", imported.InvoiceNumber)
	assert.Empty(t, imported.Items)
	assert.Equal(t, "", imported.Currency)
}
