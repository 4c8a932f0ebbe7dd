package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DivyomSharma/invoicer/invoice"
	"github.com/DivyomSharma/invoicer/models"
)

func TestPDFRendererRender(t *testing.T) {
	data := models.NewInvoiceData()
	data.InvoiceNumber = "INV-123456"
	data.Sender.Name = "Acme Ltd"
	data.Sender.State = "Karnataka"
	data.Client.Name = "Globex"
	data.Client.State = "Karnataka"
	data.Items[0].Description = "Consulting"
	data.Items[0].Quantity = 2
	data.Items[0].Rate = 500
	data.Notes = "Thank you for your business."

	out, err := NewPDFRenderer().Render(data, invoice.Summarize(data))

	assert.NoError(t, err)
	assert.True(t, len(out) > 1000)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFRendererEmptyInvoice(t *testing.T) {
	data := models.NewInvoiceData()
	data.Items = nil

	out, err := NewPDFRenderer().Render(data, invoice.Summarize(data))

	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
