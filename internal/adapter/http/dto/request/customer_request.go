package request

// CustomerCreateRequest is the payload for customer registration.

type CustomerCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Document string `json:"document"`
}
