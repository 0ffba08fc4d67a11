package dto

// Detail messages of non-validation errors
const (
	DetailNotFound         = "Not found."
	DetailPermissionDenied = "You do not have permission to perform this action."
	DetailServerError      = "A server error occurred."
)

// DetailResponse is the error body for 403, 404 and 500 responses
type DetailResponse struct {
	Detail string `json:"detail" example:"Not found."`
}

// ValidationErrorResponse maps each invalid field, or non_field_errors, to
// its messages. Only used to document 400 responses.
type ValidationErrorResponse map[string][]string

// NewDetailResponse creates a DetailResponse
func NewDetailResponse(detail string) DetailResponse {
	return DetailResponse{Detail: detail}
}
