package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-llm-relay/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldText targets the text of an inbound message.
	FieldText = "text"

	// FieldEncoding requires the message text to be valid UTF-8.
	FieldEncoding = "encoding"

	// FieldTextLength bounds the message text by MaxTextLength bytes.
	FieldTextLength = "text_length"

	// FieldUserID targets the owner of a persisted session.
	FieldUserID = "user_id"

	// FieldProviderName targets the backend name of a persisted session.
	FieldProviderName = "provider_name"

	// FieldCredential targets the stored credential of a persisted session.
	FieldCredential = "credential"
)

// MaxTextLength is the longest message text accepted, in bytes.
const MaxTextLength = 64 << 10

type RelayValidator struct {
}

func NewRelayValidator() Validator {
	return &RelayValidator{}
}

func (v *RelayValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MessageRequest:
		return v.validateMessageRequest(ctx, value, fields...)
	case *models.MessageRequest:
		return v.validateMessageRequest(ctx, *value, fields...)

	case models.PersistedRecord:
		return v.validatePersistedRecord(ctx, value, fields...)
	case *models.PersistedRecord:
		return v.validatePersistedRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateMessageRequest never trims the text it accepts: whitespace only
// decides whether the text is blank.
func (v *RelayValidator) validateMessageRequest(_ context.Context, request models.MessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldEncoding, FieldTextLength}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if strings.TrimSpace(request.Text) == "" {
				return ErrEmptyText
			}
		case FieldEncoding:
			if !utf8.ValidString(request.Text) {
				return ErrInvalidEncoding
			}
		case FieldTextLength:
			if len(request.Text) > MaxTextLength {
				return ErrTextTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RelayValidator) validatePersistedRecord(_ context.Context, record models.PersistedRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldProviderName, FieldCredential}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if record.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldProviderName:
			if record.ProviderName == "" {
				return ErrEmptyProviderName
			}
		case FieldCredential:
			if record.Credential == "" {
				return ErrEmptyCredential
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
