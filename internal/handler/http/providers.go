package http

import (
	"net/http"

	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/utils"
	"github.com/MKhiriev/go-llm-relay/models"
)

func (h *Handler) getProviders(w http.ResponseWriter, r *http.Request) {
	response := models.ProvidersResponse{Providers: h.services.Providers.Names()}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing providers")
	}
}
