package apierror

// Error type URIs following the urn:sentiscore:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:sentiscore:error:validation"

	// TypeInvalidInput indicates the transcript could not be scored (400)
	TypeInvalidInput = "urn:sentiscore:error:invalid_input"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:sentiscore:error:not_found"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:sentiscore:error:unauthorized"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:sentiscore:error:bad_request"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:sentiscore:error:internal"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleInvalidInput = "Invalid Transcript"
	TitleNotFound     = "Resource Not Found"
	TitleUnauthorized = "Authentication Required"
	TitleBadRequest   = "Bad Request"
	TitleInternal     = "Internal Server Error"
)
