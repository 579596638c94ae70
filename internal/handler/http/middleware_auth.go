package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/utils"
	"github.com/rs/zerolog"
)

const userIDHeader = "X-User-ID"

// auth resolves the user a request acts for and stores it in the request
// context under [utils.UserIDCtxKey].
//
// With a token sign key configured the user is the subject of the bearer
// token, which must be signed with that key, carry the configured issuer and
// not be expired. Without a sign key the relay runs behind a trusted
// front end and takes the user from the X-User-ID header.
//
// Rejected requests get HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, err := h.authenticate(r)
		if err != nil {
			log.Err(err).Msg("request is not authenticated")
			writeError(w, err)
			return
		}

		// attach the user to the request-scoped logger as well
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", userID)
		})
		ctx := log.WithContext(r.Context())
		ctx = utils.WithUserID(ctx, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) authenticate(r *http.Request) (string, error) {
	if h.tokenSignKey == "" {
		userID := strings.TrimSpace(r.Header.Get(userIDHeader))
		if userID == "" {
			return "", ErrNoUserID
		}
		return userID, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", err
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
	if err != nil {
		return "", errors.Join(utils.ErrInvalidAuthorizationHeader, err)
	}

	return token.UserID, nil
}
