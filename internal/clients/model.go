package clients

import "time"

// Client is a billed party referenced by quotations.
type Client struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         *string   `json:"email,omitempty" db:"email"`
	Phone         *string   `json:"phone,omitempty" db:"phone"`
	Address       *string   `json:"address,omitempty" db:"address"`
	City          *string   `json:"city,omitempty" db:"city"`
	State         *string   `json:"state,omitempty" db:"state"`
	PostalCode    *string   `json:"postal_code,omitempty" db:"postal_code"`
	Country       *string   `json:"country,omitempty" db:"country"`
	ContactPerson *string   `json:"contact_person,omitempty" db:"contact_person"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
