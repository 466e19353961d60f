package clients

// ClientRequest carries the writable fields for create and update.
type ClientRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	Country       *string `json:"country,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ListClientsRequest filters and pages the client listing.
type ListClientsRequest struct {
	Search string `json:"search"`
	Limit  int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset int    `json:"offset" validate:"gte=0"`
}
