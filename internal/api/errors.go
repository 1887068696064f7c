package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// Failure taxonomy for remote calls. Callers match with the Is helpers;
// the UI collapses all of them to per-operation messages, but the split is
// kept so that handling can diverge later without reworking the client.
var (
	// ErrNetwork: transport failure, no response came back.
	ErrNetwork = errors.New("network error")
	// ErrServer: 5xx, or a 2xx whose body did not decode.
	ErrServer = errors.New("server error")
	// ErrValidation: non-404 4xx, the server rejected the payload.
	ErrValidation = errors.New("validation error")
	// ErrNotFound: 404, the id is stale.
	ErrNotFound = errors.New("not found")
)

func IsNetwork(err error) bool    { return errors.Is(err, ErrNetwork) }
func IsServer(err error) bool     { return errors.Is(err, ErrServer) }
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }

// classify maps a non-2xx status code onto the taxonomy.
func classify(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 400 && status < 500:
		return ErrValidation
	default:
		return ErrServer
	}
}

// statusError wraps the classified sentinel with the observed status code
// and response body for logs.
func statusError(status int, body []byte) error {
	return errors.Wrapf(classify(status), "remote returned %d: %s", status, string(body))
}
