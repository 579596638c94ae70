package models

// ErrorResponse is the JSON body of every non-2xx HTTP response.
type ErrorResponse struct {
	Error string `json:"error"`
}
