// Package adapter wraps the backend RPC connections. One adapter per
// backend service holds a single long-lived connection created at gateway
// start and translates typed method calls into RPC invocations, normalizing
// every transport or backend failure into the gateway error taxonomy.
//
// Lifecycle is an explicit state machine: Uninitialized -> Connected |
// Degraded. An adapter whose connection could not be established at start
// is permanently degraded: every call short-circuits to an Unavailable
// error without attempting the network. There is no reconnection logic.
package adapter

import (
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mealgrid/gateway/errors"
)

// State is the lifecycle state of an adapter connection.
type State int32

const (
	// StateUninitialized is the zero state before construction completes.
	StateUninitialized State = iota
	// StateConnected means the connection was established at start.
	StateConnected
	// StateDegraded means the connection could not be established; the
	// adapter short-circuits every call until process restart.
	StateDegraded
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConnected:
		return "connected"
	case StateDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// normalize maps a failed RPC call to a classified gateway error and logs
// the operation name and backend message. Successful payloads are never
// logged.
func normalize(err error, component, op string, logger *slog.Logger) error {
	st, ok := status.FromError(err)
	msg := err.Error()
	if ok {
		msg = st.Message()
	}
	logger.Error("backend call failed", "operation", op, "error", msg)

	if !ok {
		return errors.WrapInternal(err, component, op, "rpc call")
	}
	switch st.Code() {
	case codes.NotFound:
		return errors.WrapNotFound(err, component, op, "lookup")
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return errors.WrapInvalid(err, component, op, "request")
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return errors.WrapUnavailable(err, component, op, "rpc call")
	default:
		return errors.WrapInternal(err, component, op, "rpc call")
	}
}

// degraded builds the short-circuit error returned without a network
// attempt when the adapter never connected.
func degraded(component, op string) error {
	return errors.WrapUnavailable(errors.ErrBackendDegraded, component, op, "backend unavailable")
}
