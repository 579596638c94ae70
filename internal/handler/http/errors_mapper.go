package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-llm-relay/internal/app"
	"github.com/MKhiriev/go-llm-relay/internal/relay"
	"github.com/MKhiriev/go-llm-relay/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoUserID:                         http.StatusUnauthorized,
	ErrInvalidMessage:                   http.StatusBadRequest,
	relay.ErrBlankText:                  http.StatusBadRequest,
	ErrDecodingRequest:                  http.StatusBadRequest,
}

var errorMessageMap = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusUnauthorized:        app.MsgTokenIsExpiredOrInvalid,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a fixed message;
// err itself is only logged.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message, ok := errorMessageMap[status]
	if !ok {
		message = http.StatusText(status)
	}
	if errors.Is(err, ErrNoUserID) {
		message = app.MsgNoUserIDProvided
	}

	utils.WriteError(w, message, status)
}
