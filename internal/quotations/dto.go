package quotations

import (
	"time"

	"github.com/quotedesk/quotedesk/internal/pricing"
)

// QuotationRequest carries the raw inputs for create and update. Updates
// are full-record replaces: the item set in the request becomes the item
// set of the quotation.
type QuotationRequest struct {
	CompanyID     int64                `json:"company_id" validate:"required,gt=0"`
	ClientID      int64                `json:"client_id" validate:"required,gt=0"`
	Status        *Status              `json:"status,omitempty" validate:"omitempty,oneof=draft sent accepted rejected expired"`
	IssueDate     time.Time            `json:"issue_date" validate:"required"`
	ValidUntil    *time.Time           `json:"valid_until,omitempty"`
	Currency      string               `json:"currency" validate:"omitempty,len=3"`
	TaxRate       float64              `json:"tax_rate" validate:"gte=0,lte=100"`
	DiscountType  pricing.DiscountType `json:"discount_type" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue float64              `json:"discount_value" validate:"gte=0"`
	Terms         *string              `json:"terms,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	Items         []ItemRequest        `json:"items" validate:"required,min=1,dive"`
}

// ItemRequest is one line of the request. Total, when present, overrides
// the computed quantity * unit_price for that line.
type ItemRequest struct {
	Description string   `json:"description" validate:"required"`
	Quantity    float64  `json:"quantity" validate:"gte=0"`
	UnitPrice   float64  `json:"unit_price" validate:"gte=0"`
	Total       *float64 `json:"total,omitempty" validate:"omitempty,gte=0"`
}

// ListQuotationsRequest filters the quotation listing. Results are
// ordered by creation time, newest first.
type ListQuotationsRequest struct {
	CompanyID *int64  `json:"company_id,omitempty"`
	ClientID  *int64  `json:"client_id,omitempty"`
	Status    *Status `json:"status,omitempty" validate:"omitempty,oneof=draft sent accepted rejected expired"`
	Limit     int     `json:"limit" validate:"gte=0,lte=1000"`
	Offset    int     `json:"offset" validate:"gte=0"`
}
