package quotations

import (
	"time"

	"github.com/quotedesk/quotedesk/internal/clients"
	"github.com/quotedesk/quotedesk/internal/companies"
	"github.com/quotedesk/quotedesk/internal/pricing"
)

// Status is the quotation lifecycle state. The set is closed but there is
// no transition graph: the editor may move a quotation to any status.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Valid reports whether s is a member of the status set.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// Quotation is the aggregate root. The four derived monetary fields are
// recomputed from the item set and rates on every write; they are never
// accepted from the caller.
type Quotation struct {
	ID             int64                `json:"id" db:"id"`
	QuoteNumber    string               `json:"quote_number" db:"quote_number"`
	CompanyID      int64                `json:"company_id" db:"company_id"`
	ClientID       int64                `json:"client_id" db:"client_id"`
	Status         Status               `json:"status" db:"status"`
	IssueDate      time.Time            `json:"issue_date" db:"issue_date"`
	ValidUntil     *time.Time           `json:"valid_until,omitempty" db:"valid_until"`
	Currency       string               `json:"currency" db:"currency"`
	TaxRate        float64              `json:"tax_rate" db:"tax_rate"`
	DiscountType   pricing.DiscountType `json:"discount_type" db:"discount_type"`
	DiscountValue  float64              `json:"discount_value" db:"discount_value"`
	Subtotal       float64              `json:"subtotal" db:"subtotal"`
	TaxAmount      float64              `json:"tax_amount" db:"tax_amount"`
	DiscountAmount float64              `json:"discount_amount" db:"discount_amount"`
	Total          float64              `json:"total" db:"total"`
	Terms          *string              `json:"terms,omitempty" db:"terms"`
	Notes          *string              `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at" db:"updated_at"`

	Company *companies.Company `json:"company,omitempty" db:"-"`
	Client  *clients.Client    `json:"client,omitempty" db:"-"`
	Items   []Item             `json:"items,omitempty" db:"-"`
}

// Item is one priced row of a quotation. Items live and die with the
// parent: updates replace the whole set, so items carry no update
// timestamp of their own.
type Item struct {
	ID          int64     `json:"id" db:"id"`
	QuotationID int64     `json:"quotation_id" db:"quotation_id"`
	Description string    `json:"description" db:"description"`
	Quantity    float64   `json:"quantity" db:"quantity"`
	UnitPrice   float64   `json:"unit_price" db:"unit_price"`
	Total       float64   `json:"total" db:"total"`
	SortOrder   int       `json:"sort_order" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// PricingItems projects the item set into the pricing engine's input.
func (q *Quotation) PricingItems() []pricing.Item {
	items := make([]pricing.Item, len(q.Items))
	for i, item := range q.Items {
		items[i] = pricing.Item{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
	}
	return items
}
