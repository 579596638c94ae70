package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText       = errors.New("text is required")
	ErrInvalidEncoding = errors.New("text is not valid UTF-8")
	ErrTextTooLong     = errors.New("text is too long")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrEmptyProviderName = errors.New("provider name is required")
	ErrEmptyCredential   = errors.New("credential is required")
)
