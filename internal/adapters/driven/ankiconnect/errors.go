package ankiconnect

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

// APIError is an error reported by AnkiConnect in the response body.
type APIError struct {
	Action  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ankiconnect: %s: %s", e.Action, e.Message)
}

// Is makes APIError match domain.ErrProtocol.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrProtocol
}

// IsAPIError checks if the error was reported by AnkiConnect itself.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// classify wraps a transport error from http.Client.Do in its domain kind.
func classify(action string, err error) error {
	if errors.Is(err, domain.ErrConnection) || errors.Is(err, domain.ErrTimeout) ||
		errors.Is(err, domain.ErrProtocol) || errors.Is(err, domain.ErrApplication) {
		return err
	}
	return fmt.Errorf("ankiconnect: %s: %w: %w", action, kindOf(err), err)
}

// kindOf picks the domain error kind for a transport error.
func kindOf(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return domain.ErrConnection
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.ErrConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return domain.ErrConnection
	}

	return domain.ErrApplication
}
