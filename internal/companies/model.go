package companies

import "time"

// Company is an issuing party. Its billing defaults (tax rate, currency,
// terms, quote prefix) seed new quotations but are copied at creation
// time, never referenced afterwards.
type Company struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Email           *string   `json:"email,omitempty" db:"email"`
	Phone           *string   `json:"phone,omitempty" db:"phone"`
	Address         *string   `json:"address,omitempty" db:"address"`
	City            *string   `json:"city,omitempty" db:"city"`
	State           *string   `json:"state,omitempty" db:"state"`
	PostalCode      *string   `json:"postal_code,omitempty" db:"postal_code"`
	Country         *string   `json:"country,omitempty" db:"country"`
	TaxID           *string   `json:"tax_id,omitempty" db:"tax_id"`
	DefaultTaxRate  float64   `json:"default_tax_rate" db:"default_tax_rate"`
	DefaultCurrency string    `json:"default_currency" db:"default_currency"`
	DefaultTerms    *string   `json:"default_terms,omitempty" db:"default_terms"`
	QuotePrefix     string    `json:"quote_prefix" db:"quote_prefix"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
