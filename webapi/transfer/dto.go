package transfer

// Request is the body for POST /transfer. Amount positivity and the
// self-transfer guard are enforced again by the transfer engine; the
// validation tags just fail fast at the edge.
type Request struct {
	FromClientID uint    `json:"from_client_id" validate:"required"`
	ToClientID   uint    `json:"to_client_id" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
}

// Response reports a completed transfer.
type Response struct {
	Reference   string  `json:"reference"`
	FromBalance float64 `json:"from_balance"`
	ToBalance   float64 `json:"to_balance"`
}
