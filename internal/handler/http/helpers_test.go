package http

import (
	"io"
	"testing"
	"time"

	"github.com/MKhiriev/go-llm-relay/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, userID, signKey, issuer string, duration time.Duration) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(issuer, userID, duration, signKey)
	require.NoError(t, err)
	return token.SignedString
}

func zerologTo(w io.Writer) zerolog.Logger {
	return zerolog.New(w)
}
