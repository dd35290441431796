package maps

import "fmt"

// Provider status values with defined handling. Any other status is an
// upstream error.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// UpstreamError reports a non-OK, non-zero-results status from the mapping
// provider. The provider's status and message pass through for diagnosis;
// these are never retried automatically.
type UpstreamError struct {
	Operation string
	Status    string
	Message   string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("maps %s: %s: %s", e.Operation, e.Status, e.Message)
	}
	return fmt.Sprintf("maps %s: %s", e.Operation, e.Status)
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.Code, e.Body)
}
