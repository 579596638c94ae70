package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/relay"
	"github.com/MKhiriev/go-llm-relay/internal/utils"
	"github.com/MKhiriev/go-llm-relay/internal/validators"
	"github.com/MKhiriev/go-llm-relay/models"
)

// maxMessageSize bounds the request body of /api/messages.
const maxMessageSize = 1 << 20

// postMessage feeds the posted text to the dispatcher and answers with
// every reply it produced.
func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, ErrNoUserID)
		return
	}

	var request models.MessageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageSize)).Decode(&request); err != nil {
		log.Err(err).Msg("error decoding message")
		writeError(w, fmt.Errorf("%w: %w", ErrDecodingRequest, err))
		return
	}
	// blankness depends on the registration step and is left to the dispatcher
	if err := h.validator.Validate(ctx, request, validators.FieldEncoding, validators.FieldTextLength); err != nil {
		log.Debug().Err(err).Msg("message rejected")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidMessage, err))
		return
	}

	collector := relay.NewCollector()
	if err := h.services.Dispatcher.Dispatch(ctx, userID, request.Text, collector); err != nil {
		if errors.Is(err, relay.ErrBlankText) {
			log.Debug().Msg("blank message rejected")
		} else {
			log.Err(err).Msg("error dispatching message")
		}
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.MessageResponse{Replies: collector.Replies()}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing replies")
	}
}
