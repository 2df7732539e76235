package request

// ChargeRequest creates a charge for an appointment. The amount is never
// accepted from the caller; it is resolved server-side from the pricing rules.
type ChargeRequest struct {
	Method string `json:"method"`
}
