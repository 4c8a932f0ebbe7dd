package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInvoiceData(t *testing.T) {
	data := NewInvoiceData()

	assert.Regexp(t, `^INV-\d{6}$`, data.InvoiceNumber)
	assert.Equal(t, "INR", data.Currency)
	assert.Equal(t, TaxGST, data.TaxType)
	assert.Equal(t, DiscountPercentage, data.DiscountType)
	assert.Equal(t, 9.0, data.CGSTRate)
	assert.Equal(t, 9.0, data.SGSTRate)
	assert.Equal(t, 18.0, data.IGSTRate)
	assert.Equal(t, "India", data.Sender.Country)
	assert.Equal(t, "India", data.Client.Country)
	assert.Len(t, data.Items, 1)
	assert.Nil(t, data.Sender.Logo)

	invoiceDate, err := time.Parse("2006-01-02", data.InvoiceDate)
	assert.NoError(t, err)
	dueDate, err := time.Parse("2006-01-02", data.DueDate)
	assert.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, dueDate.Sub(invoiceDate))
}

func TestNewLineItem(t *testing.T) {
	a := NewLineItem()
	b := NewLineItem()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 1.0, a.Quantity)
	assert.Equal(t, 0.0, a.Rate)
	assert.Equal(t, 0.0, a.Amount)
}

func TestClone(t *testing.T) {
	logo := "data:image/png;base64,AAAA"
	data := NewInvoiceData()
	data.Sender.Logo = &logo

	clone := data.Clone()
	clone.Items[0].Rate = 99
	*clone.Sender.Logo = "mutated"

	assert.Equal(t, 0.0, data.Items[0].Rate)
	assert.Equal(t, "data:image/png;base64,AAAA", *data.Sender.Logo)
}
