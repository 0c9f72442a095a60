package client

// CreateRequest is the body for POST /clients.
type CreateRequest struct {
	Username       string   `json:"username" validate:"required,min=3,max=80"`
	Password       string   `json:"password" validate:"required,min=6,max=72"`
	Name           string   `json:"name" validate:"required,max=120"`
	DOB            string   `json:"dob" validate:"required,datetime=2006-01-02"`
	Phones         []string `json:"phones" validate:"required"`
	Emails         []string `json:"emails" validate:"required,dive,email"`
	InitialBalance float64  `json:"initial_balance" validate:"gte=0"`
}

// UpdateRequest is the body for PUT /clients/:id. Absent lists stay untouched.
type UpdateRequest struct {
	Phones []string `json:"phones"`
	Emails []string `json:"emails" validate:"omitempty,dive,email"`
}

// ClientResponse is the client representation returned by the API. The
// password hash never leaves the service boundary.
type ClientResponse struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	DOB      string   `json:"dob"`
	Phones   []string `json:"phones"`
	Emails   []string `json:"emails"`
	Created  string   `json:"created"`
}
