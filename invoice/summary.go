package invoice

import (
	"math"

	"github.com/DivyomSharma/invoicer/models"
)

// Summarize derives the monetary summary for an invoice. It is a pure
// function: same input, same output, no side effects.
//
// Tax regime selection: the GST branch applies only when the currency is INR
// and the tax type is not "none". Within it, IGST applies when both party
// states are set and differ (inter-state), otherwise CGST + SGST. Every other
// case uses the generic per-item tax plus the invoice-level tax rate; per-item
// tax values are ignored under GST.
func Summarize(d models.InvoiceData) models.InvoiceSummary {
	var subtotal float64
	for _, item := range d.Items {
		// Quantity and Rate are the source of truth, not the cached Amount.
		subtotal += item.Quantity * item.Rate
	}

	interState := d.Sender.State != "" && d.Client.State != "" &&
		d.Sender.State != d.Client.State

	var s models.InvoiceSummary
	s.Subtotal = subtotal

	if d.Currency == "INR" && d.TaxType != models.TaxNone {
		if interState {
			s.IGSTAmount = subtotal * d.IGSTRate / 100
			s.TaxAmount = s.IGSTAmount
		} else {
			s.CGSTAmount = subtotal * d.CGSTRate / 100
			s.SGSTAmount = subtotal * d.SGSTRate / 100
			s.TaxAmount = s.CGSTAmount + s.SGSTAmount
		}
	} else {
		var itemTax float64
		for _, item := range d.Items {
			itemTax += item.Quantity * item.Rate * item.Tax / 100
		}
		s.TaxAmount = itemTax + subtotal*d.TaxRate/100
	}

	if d.DiscountType == models.DiscountPercentage {
		s.DiscountAmount = subtotal * d.DiscountRate / 100
	} else {
		// Fixed discount is an absolute currency amount.
		s.DiscountAmount = d.DiscountRate
	}

	s.Total = math.Max(0, subtotal+s.TaxAmount-s.DiscountAmount)
	return s
}
