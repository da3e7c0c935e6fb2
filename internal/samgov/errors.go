package samgov

import "fmt"

// ConfigError reports a missing or unusable configuration value. It is
// always raised before any network activity.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

// TransportError reports a failed API call: a transport-level failure or
// a non-success HTTP status. Retryable errors have already been retried
// by the client before one of these is returned.
type TransportError struct {
	StatusCode int    // 0 when the request never got a response
	Body       string // truncated response body, for diagnostics
	Cause      error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sam.gov API returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("sam.gov request failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the failure is worth retrying with backoff.
func (e *TransportError) Retryable() bool {
	if e.StatusCode != 0 {
		return retryStatusCodes[e.StatusCode]
	}
	if netErr, ok := e.Cause.(interface{ Timeout() bool }); ok && netErr.Timeout() {
		return true
	}
	return false
}

var retryStatusCodes = map[int]bool{
	429: true, // Too Many Requests
	500: true, // Internal Server Error
	502: true, // Bad Gateway
	503: true, // Service Unavailable
	504: true, // Gateway Timeout
}
