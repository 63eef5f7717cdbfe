package models

// MessageResponse is the generic `{"msg": "..."}` body used for confirmations
// and errors on every endpoint.
type MessageResponse struct {
	Msg string `json:"msg"`
}
