package validators

import "errors"

// Validation errors. Their text is safe to return to API clients verbatim.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername     = errors.New("Username must be at least 3 characters long")
	ErrInvalidEmail        = errors.New("Valid email is required")
	ErrInvalidPassword     = errors.New("Password must be at least 6 characters long")
	ErrCredentialsRequired = errors.New("Username and password are required")
	ErrPromptRequired      = errors.New("Prompt is required")
	ErrVideoIDRequired     = errors.New("Video ID is required")
)
