package docs

import "errors"

var (
	ErrNotFound        = errors.New("document not found")
	ErrUnknownCategory = errors.New("unknown document category")
	ErrShortContent    = errors.New("generated content too short")
)

const (
	ErrorCodeConfiguration = "CONFIGURATION_ERROR"
	ErrorCodeUpstream      = "UPSTREAM_ERROR"
	ErrorCodeMalformed     = "MALFORMED_RESPONSE"
	ErrorCodeInternal      = "INTERNAL_ERROR"
)

// WarningPDFUnavailable is attached when the guide text was generated but the
// PDF could not be stored. This is a degraded success, never a failure.
const WarningPDFUnavailable = "PDF could not be stored; the document is available online only"
