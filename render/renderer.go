package render

import "github.com/DivyomSharma/invoicer/models"

// Renderer turns an invoice and its summary into a printable document. The
// core never depends on a concrete rendering backend.
type Renderer interface {
	Render(data models.InvoiceData, summary models.InvoiceSummary) ([]byte, error)
}
