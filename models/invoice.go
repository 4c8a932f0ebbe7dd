package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DiscountType selects how the invoice-level discount is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// TaxType selects the tax regime. "igst" is accepted on imported documents
// for compatibility but the calculation never branches on it; intra- vs
// inter-state is decided by the sender/client states alone.
type TaxType string

const (
	TaxGST  TaxType = "gst"
	TaxIGST TaxType = "igst"
	TaxNone TaxType = "none"
)

// LineItem is a single billable row on the invoice. Amount is a denormalized
// cache of Quantity * Rate, maintained by the store on every quantity or rate
// write; totals are always recomputed from Quantity and Rate directly.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	HSNSAC      string  `json:"hsnSac"` // HSN/SAC classification code, Indian GST only
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Tax         float64 `json:"tax"` // per-item tax %, ignored under the GST regime
	Amount      float64 `json:"amount"`
}

// SenderInfo describes the issuing party.
type SenderInfo struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Pincode string  `json:"pincode"`
	Logo    *string `json:"logo"` // inline data URL, nil when unset
	GSTIN   string  `json:"gstin"`
	PAN     string  `json:"pan"`
}

// ClientInfo describes the billed party.
type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
	GSTIN   string `json:"gstin"`
}

// InvoiceData is the root invoice document. It is a plain serializable value;
// all mutation goes through the invoice store.
type InvoiceData struct {
	InvoiceNumber string       `json:"invoiceNumber"`
	InvoiceDate   string       `json:"invoiceDate"` // ISO date, no time component
	DueDate       string       `json:"dueDate"`
	Currency      string       `json:"currency"`
	Sender        SenderInfo   `json:"sender"`
	Client        ClientInfo   `json:"client"`
	Items         []LineItem   `json:"items"`
	Notes         string       `json:"notes"`
	Terms         string       `json:"terms"`
	TaxRate       float64      `json:"taxRate"`
	DiscountRate  float64      `json:"discountRate"`
	DiscountType  DiscountType `json:"discountType"`
	TaxType       TaxType      `json:"taxType"`
	CGSTRate      float64      `json:"cgstRate"`
	SGSTRate      float64      `json:"sgstRate"`
	IGSTRate      float64      `json:"igstRate"`
	PlaceOfSupply string       `json:"placeOfSupply"` // informational only
}

// InvoiceSummary is derived from InvoiceData on every read; it is never stored.
type InvoiceSummary struct {
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"taxAmount"`
	CGSTAmount     float64 `json:"cgstAmount"`
	SGSTAmount     float64 `json:"sgstAmount"`
	IGSTAmount     float64 `json:"igstAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
}

const (
	dateLayout      = "2006-01-02"
	defaultTerms    = "Payment is due within 30 days of invoice date."
	dueDateOffset   = 30 * 24 * time.Hour
	defaultCGSTRate = 9
	defaultSGSTRate = 9
	defaultIGSTRate = 18
	defaultCurrency = "INR"
	defaultCountry  = "India"
)

// NewLineItem returns an empty line item with a fresh id and quantity 1.
func NewLineItem() LineItem {
	return LineItem{
		ID:       uuid.NewString(),
		Quantity: 1,
	}
}

// NewInvoiceNumber derives a fresh invoice number from the current time.
func NewInvoiceNumber() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return "INV-" + millis
}

// NewInvoiceData returns a fully populated default invoice: fresh number,
// dated today with a 30-day due date, Indian GST defaults and one empty item.
func NewInvoiceData() InvoiceData {
	now := time.Now()
	return InvoiceData{
		InvoiceNumber: NewInvoiceNumber(),
		InvoiceDate:   now.Format(dateLayout),
		DueDate:       now.Add(dueDateOffset).Format(dateLayout),
		Currency:      defaultCurrency,
		Sender:        SenderInfo{Country: defaultCountry},
		Client:        ClientInfo{Country: defaultCountry},
		Items:         []LineItem{NewLineItem()},
		Terms:         defaultTerms,
		DiscountType:  DiscountPercentage,
		TaxType:       TaxGST,
		CGSTRate:      defaultCGSTRate,
		SGSTRate:      defaultSGSTRate,
		IGSTRate:      defaultIGSTRate,
	}
}

// Clone returns a deep copy; the items slice is never shared with the receiver.
func (d InvoiceData) Clone() InvoiceData {
	out := d
	out.Items = make([]LineItem, len(d.Items))
	copy(out.Items, d.Items)
	if d.Sender.Logo != nil {
		logo := *d.Sender.Logo
		out.Sender.Logo = &logo
	}
	return out
}
