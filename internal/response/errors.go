package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrInvalidReference ErrCode = "INVALID_REFERENCE"
	ErrRouteNotFound    ErrCode = "ROUTE_NOT_FOUND"
	ErrMethodNotAllowed ErrCode = "METHOD_NOT_ALLOWED"

	// ─── Export ────────────────────────────────────────────────────────
	ErrExportFailed     ErrCode = "EXPORT_FAILED"
	ErrExportInProgress ErrCode = "EXPORT_IN_PROGRESS"
	ErrUnknownTable     ErrCode = "UNKNOWN_TABLE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "A record with this ID already exists."
	case ErrInvalidReference:
		return "The operation violates a reference to another record."
	case ErrRouteNotFound:
		return "Route not found."
	case ErrMethodNotAllowed:
		return "Method not allowed."

	// ─── Export ────────────────────────────────────────────────────────
	case ErrExportFailed:
		return "The export could not be completed."
	case ErrExportInProgress:
		return "An export of this file is already running."
	case ErrUnknownTable:
		return "The requested table cannot be exported."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
