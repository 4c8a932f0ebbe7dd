package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/DivyomSharma/invoicer/models"
)

// PDFRenderer renders an A4 portrait invoice document.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(data models.InvoiceData, summary models.InvoiceSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	translate := pdf.UnicodeTranslatorFromDescriptor("")
	symbol := translate(models.CurrencySymbol(data.Currency))
	money := func(v float64) string {
		return fmt.Sprintf("%s%.2f", symbol, v)
	}

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(100, 10, "INVOICE")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 10, translate(data.InvoiceNumber), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "Invoice Date: "+data.InvoiceDate, "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, "Due Date: "+data.DueDate, "", 1, "R", false, 0, "")
	pdf.Ln(6)

	r.party(pdf, translate, "From", data.Sender.Name, data.Sender.Address,
		data.Sender.City, data.Sender.State, data.Sender.Pincode, data.Sender.GSTIN)
	pdf.Ln(2)
	r.party(pdf, translate, "Bill To", data.Client.Name, data.Client.Address,
		data.Client.City, data.Client.State, data.Client.Pincode, data.Client.GSTIN)
	pdf.Ln(6)

	showHSN := data.Currency == "INR"

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(80, 7, "Description", "1", 0, "L", true, 0, "")
	if showHSN {
		pdf.CellFormat(20, 7, "HSN/SAC", "1", 0, "L", true, 0, "")
	}
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, item := range data.Items {
		pdf.CellFormat(80, 7, translate(item.Description), "1", 0, "L", false, 0, "")
		if showHSN {
			pdf.CellFormat(20, 7, translate(item.HSNSAC), "1", 0, "L", false, 0, "")
		}
		pdf.CellFormat(20, 7, fmt.Sprintf("%g", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, money(item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, money(item.Quantity*item.Rate), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	r.summaryLine(pdf, "Subtotal", money(summary.Subtotal), false)
	if summary.CGSTAmount > 0 || summary.SGSTAmount > 0 {
		r.summaryLine(pdf, fmt.Sprintf("CGST (%g%%)", data.CGSTRate), money(summary.CGSTAmount), false)
		r.summaryLine(pdf, fmt.Sprintf("SGST (%g%%)", data.SGSTRate), money(summary.SGSTAmount), false)
	} else if summary.IGSTAmount > 0 {
		r.summaryLine(pdf, fmt.Sprintf("IGST (%g%%)", data.IGSTRate), money(summary.IGSTAmount), false)
	} else if summary.TaxAmount > 0 {
		r.summaryLine(pdf, "Tax", money(summary.TaxAmount), false)
	}
	if summary.DiscountAmount > 0 {
		r.summaryLine(pdf, "Discount", "-"+money(summary.DiscountAmount), false)
	}
	r.summaryLine(pdf, "Total", money(summary.Total), true)

	if data.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, translate(data.Notes), "", "L", false)
	}
	if data.Terms != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 5, "Terms", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, translate(data.Terms), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) party(pdf *gofpdf.Fpdf, translate func(string) string, label, name, address, city, state, pincode, gstin string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, label, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range []string{name, address, joinLocation(city, state, pincode)} {
		if line != "" {
			pdf.CellFormat(0, 5, translate(line), "", 1, "L", false, 0, "")
		}
	}
	if gstin != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+translate(gstin), "", 1, "L", false, 0, "")
	}
}

func (r *PDFRenderer) summaryLine(pdf *gofpdf.Fpdf, label, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Arial", style, 10)
	pdf.CellFormat(130, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, value, "", 1, "R", false, 0, "")
}

func joinLocation(city, state, pincode string) string {
	out := city
	if state != "" {
		if out != "" {
			out += ", "
		}
		out += state
	}
	if pincode != "" {
		if out != "" {
			out += " "
		}
		out += pincode
	}
	return out
}
