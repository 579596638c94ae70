package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("relay internal error")
	ErrGatewayTimeout      = errors.New("relay timed out")
	ErrNoIdentity          = errors.New("no user id configured")
)
