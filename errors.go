package intenttest

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrEndpointUnavailable reports that the preflight probe found nothing
// listening on the configured endpoint. Test with [errors.Is].
var ErrEndpointUnavailable = errors.New("intenttest: endpoint unavailable")

// RPCError is a non-success status returned by the backend during a unary
// or streaming call. The harness surfaces it verbatim: no retries, no
// distinction between transient and permanent failures.
type RPCError struct {
	Code    codes.Code
	Message string
}

// Error renders the failure with its status code name. The rendering is
// stable; callers assert against it directly.
func (e *RPCError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("rpc failure: %s", e.Code)
	}
	return fmt.Sprintf("rpc failure: %s: %s", e.Code, e.Message)
}

// wrapStatus translates a transport or backend error into an *RPCError
// carrying the gRPC status code and message.
func wrapStatus(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	return &RPCError{Code: st.Code(), Message: st.Message()}
}
