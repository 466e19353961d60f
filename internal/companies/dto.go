package companies

// CompanyRequest carries the writable fields for create and update. The
// same shape serves both because updates are full-record replaces.
type CompanyRequest struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address         *string `json:"address,omitempty"`
	City            *string `json:"city,omitempty"`
	State           *string `json:"state,omitempty"`
	PostalCode      *string `json:"postal_code,omitempty"`
	Country         *string `json:"country,omitempty"`
	TaxID           *string `json:"tax_id,omitempty"`
	DefaultTaxRate  float64 `json:"default_tax_rate" validate:"gte=0,lte=100"`
	DefaultCurrency string  `json:"default_currency" validate:"omitempty,len=3"`
	DefaultTerms    *string `json:"default_terms,omitempty"`
	QuotePrefix     string  `json:"quote_prefix" validate:"omitempty,max=10"`
}

// ListCompaniesRequest filters and pages the company listing.
type ListCompaniesRequest struct {
	Search string `json:"search"`
	Limit  int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset int    `json:"offset" validate:"gte=0"`
}
