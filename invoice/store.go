package invoice

import (
	"sync"

	"github.com/DivyomSharma/invoicer/models"
)

// ChangeListener is invoked after every successful mutation with a copy of
// the new invoice state. Used to feed the autosaver.
type ChangeListener func(models.InvoiceData)

// Store owns the single live InvoiceData and is its only sanctioned mutation
// surface. Operations are applied one at a time; readers always get a deep
// copy, so the held value is never aliased outside the store.
type Store struct {
	mu       sync.Mutex
	data     models.InvoiceData
	listener ChangeListener
}

// NewStore returns a store seeded with default invoice data.
func NewStore() *Store {
	return &Store{data: models.NewInvoiceData()}
}

// OnChange registers the change listener. At most one listener is supported.
func (s *Store) OnChange(fn ChangeListener) {
	s.mu.Lock()
	s.listener = fn
	s.mu.Unlock()
}

// Data returns a deep copy of the current invoice.
func (s *Store) Data() models.InvoiceData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Summary derives the monetary summary for the current invoice.
func (s *Store) Summary() models.InvoiceSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.data)
}

// Replace swaps in a whole new document, e.g. a loaded draft or an import.
func (s *Store) Replace(data models.InvoiceData) {
	s.apply(func(d *models.InvoiceData) {
		*d = data.Clone()
	})
}

// Reset discards the current invoice and reinitializes to defaults. The data
// is irrecoverable afterwards; callers are expected to confirm with the user.
func (s *Store) Reset() {
	s.apply(func(d *models.InvoiceData) {
		*d = models.NewInvoiceData()
	})
}

// AddLineItem appends a fresh empty line item.
func (s *Store) AddLineItem() {
	s.apply(func(d *models.InvoiceData) {
		d.Items = append(d.Items, models.NewLineItem())
	})
}

// RemoveLineItem removes the item with the given id. An unknown id leaves the
// sequence unchanged.
func (s *Store) RemoveLineItem(id string) {
	s.apply(func(d *models.InvoiceData) {
		items := d.Items[:0]
		for _, item := range d.Items {
			if item.ID != id {
				items = append(items, item)
			}
		}
		d.Items = items
	})
}

// UpdateLineItem sets one field on the item with the given id. After a
// quantity or rate write the cached amount is recomputed from both current
// values. Unknown ids and unknown fields are no-ops.
func (s *Store) UpdateLineItem(id, field string, value interface{}) {
	s.apply(func(d *models.InvoiceData) {
		for i := range d.Items {
			if d.Items[i].ID != id {
				continue
			}
			item := &d.Items[i]
			switch field {
			case "description":
				item.Description = asString(value)
			case "hsnSac":
				item.HSNSAC = asString(value)
			case "quantity":
				item.Quantity = asFloat(value)
			case "rate":
				item.Rate = asFloat(value)
			case "tax":
				item.Tax = asFloat(value)
			}
			item.Amount = item.Quantity * item.Rate
			return
		}
	})
}

// UpdateSender sets one field on the sender party. Unknown fields are no-ops.
func (s *Store) UpdateSender(field, value string) {
	s.apply(func(d *models.InvoiceData) {
		p := &d.Sender
		switch field {
		case "name":
			p.Name = value
		case "email":
			p.Email = value
		case "phone":
			p.Phone = value
		case "address":
			p.Address = value
		case "city":
			p.City = value
		case "state":
			p.State = value
		case "country":
			p.Country = value
		case "pincode":
			p.Pincode = value
		case "logo":
			p.Logo = &value
		case "gstin":
			p.GSTIN = value
		case "pan":
			p.PAN = value
		}
	})
}

// UpdateClient sets one field on the client party. Unknown fields are no-ops.
func (s *Store) UpdateClient(field, value string) {
	s.apply(func(d *models.InvoiceData) {
		p := &d.Client
		switch field {
		case "name":
			p.Name = value
		case "email":
			p.Email = value
		case "phone":
			p.Phone = value
		case "address":
			p.Address = value
		case "city":
			p.City = value
		case "state":
			p.State = value
		case "country":
			p.Country = value
		case "pincode":
			p.Pincode = value
		case "gstin":
			p.GSTIN = value
		}
	})
}

// UpdateField sets one top-level invoice field. Unknown fields are no-ops.
func (s *Store) UpdateField(field string, value interface{}) {
	s.apply(func(d *models.InvoiceData) {
		switch field {
		case "invoiceNumber":
			d.InvoiceNumber = asString(value)
		case "invoiceDate":
			d.InvoiceDate = asString(value)
		case "dueDate":
			d.DueDate = asString(value)
		case "currency":
			d.Currency = asString(value)
		case "notes":
			d.Notes = asString(value)
		case "terms":
			d.Terms = asString(value)
		case "taxRate":
			d.TaxRate = asFloat(value)
		case "discountRate":
			d.DiscountRate = asFloat(value)
		case "discountType":
			d.DiscountType = models.DiscountType(asString(value))
		case "taxType":
			d.TaxType = models.TaxType(asString(value))
		case "cgstRate":
			d.CGSTRate = asFloat(value)
		case "sgstRate":
			d.SGSTRate = asFloat(value)
		case "igstRate":
			d.IGSTRate = asFloat(value)
		case "placeOfSupply":
			d.PlaceOfSupply = asString(value)
		}
	})
}

// RemoveLogo clears the sender logo.
func (s *Store) RemoveLogo() {
	s.apply(func(d *models.InvoiceData) {
		d.Sender.Logo = nil
	})
}

// SetLogo stores an inline logo data URL on the sender.
func (s *Store) SetLogo(dataURL string) {
	s.apply(func(d *models.InvoiceData) {
		d.Sender.Logo = &dataURL
	})
}

func (s *Store) apply(mutate func(*models.InvoiceData)) {
	s.mu.Lock()
	next := s.data.Clone()
	mutate(&next)
	s.data = next
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener(next.Clone())
	}
}

func asString(v interface{}) string {
	str, _ := v.(string)
	return str
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		return models.ParseAmount(n)
	default:
		return 0
	}
}
