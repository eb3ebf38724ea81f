package response

import (
	"time"

	"seguros_xpto/internal/domain/entities"
)

type CustomerResponse struct {
	CustomerID string    `json:"customer_id"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Document   string    `json:"document,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.ID,
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Document:   c.Document,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
