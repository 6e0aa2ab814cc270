package document

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeDocumentNotFound  = "DOCUMENT_NOT_FOUND"
	ErrCodeDocumentParse     = "DOCUMENT_PARSE"
	ErrCodeDocumentInvalid   = "DOCUMENT_INVALID"
	ErrCodeFormatUnsupported = "FORMAT_UNSUPPORTED"
	ErrCodeSettingsInvalid   = "SETTINGS_INVALID"
)

// UserError represents a user-friendly error with actionable suggestions.
type UserError struct {
	Code       string // Error code for categorization (e.g., "DOCUMENT_NOT_FOUND")
	Message    string // User-friendly error message
	Context    string // File path, line number, or other location context
	Suggestion string // Actionable suggestion to fix the error
	Underlying error  // Wrapped error for error chain
}

// Error returns the formatted error message.
func (e *UserError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, " (at %s)", e.Context)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain support.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// Is supports errors.Is() for comparing error codes.
func (e *UserError) Is(target error) bool {
	if t, ok := target.(*UserError); ok {
		return e.Code == t.Code
	}
	return false
}

// Format returns a fully formatted error with all details.
func (e *UserError) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, "\n  Location: %s", e.Context)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s", e.Suggestion)
	}

	return b.String()
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code, message string) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
	}
}

// WithContext returns a copy with context set.
func (e *UserError) WithContext(ctx string) *UserError {
	c := *e
	c.Context = ctx
	return &c
}

// WithSuggestion returns a copy with suggestion set.
func (e *UserError) WithSuggestion(suggestion string) *UserError {
	c := *e
	c.Suggestion = suggestion
	return &c
}

// WithUnderlying returns a copy wrapping err.
func (e *UserError) WithUnderlying(err error) *UserError {
	c := *e
	c.Underlying = err
	return &c
}

// NewDocumentNotFoundError creates an error for a missing intent document.
func NewDocumentNotFoundError(path string) *UserError {
	return &UserError{
		Code:       ErrCodeDocumentNotFound,
		Message:    fmt.Sprintf("intent document not found: %s", path),
		Context:    path,
		Suggestion: "Run 'customtab init' to write a sample document, or check the file path.",
	}
}

// NewFormatUnsupportedError creates an error for an unknown format name.
func NewFormatUnsupportedError(name string) *UserError {
	return &UserError{
		Code:       ErrCodeFormatUnsupported,
		Message:    fmt.Sprintf("unsupported format %q", name),
		Suggestion: fmt.Sprintf("Use one of: %s.", strings.Join(formatNames(), ", ")),
	}
}

// NewParseError translates YAML, JSON and TOML syntax errors into a
// user-friendly message.
func NewParseError(path string, err error) *UserError {
	errStr := err.Error()
	var message, suggestion string

	switch {
	case strings.Contains(errStr, "did not find expected key"):
		message = "missing key or incorrect indentation"
		suggestion = "YAML is sensitive to indentation. Use 2 spaces (not tabs) for each level."

	case strings.Contains(errStr, "mapping values are not allowed"):
		message = "invalid YAML structure"
		suggestion = "Check for missing colons after keys, or incorrect indentation."

	case strings.Contains(errStr, "found character that cannot start"):
		message = "invalid character in document"
		suggestion = `Quote keys and values that contain special characters such as '@', ':' or '#', e.g. "@type": binder.`

	case strings.Contains(errStr, "toml:"):
		message = "invalid TOML syntax"
		suggestion = `Quote extra keys, since they contain dots: "android.support.customtabs.extra.SESSION" = ...`

	default:
		message = "invalid document syntax"
		suggestion = "Check the document syntax. Common issues: incorrect indentation, missing colons, or unquoted special characters."
	}

	context := path
	if i := strings.Index(errStr, "line "); i >= 0 && path != "" {
		line := strings.SplitN(errStr[i+len("line "):], ":", 2)[0]
		context = fmt.Sprintf("%s (line %s)", path, line)
	}

	return &UserError{
		Code:       ErrCodeDocumentParse,
		Message:    message,
		Context:    context,
		Suggestion: suggestion,
		Underlying: err,
	}
}

// IsUserError checks if an error is a UserError with a specific code.
func IsUserError(err error, code string) bool {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Code == code
	}
	return false
}

// GetUserError extracts a UserError from an error chain, if present.
func GetUserError(err error) *UserError {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue
	}
	return nil
}
