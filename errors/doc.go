// Package errors provides standardized error handling for the gateway.
//
// # Overview
//
// The package implements a four-kind error classification matching the
// failure domains the gateway reconciles: Unavailable (transport failure,
// backend unreachable), NotFound (backend reports a missing entity),
// Invalid (backend rejects the request payload), and Internal (any other
// backend-reported failure).
//
// Adapters normalize every transport or backend failure into one of these
// kinds before it reaches a surface. Surfaces map kinds to their protocol's
// error convention (HTTP status codes, GraphQL extensions codes) and never
// inspect raw transport errors.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Four wrapper functions provide classification-aware wrapping:
//
//	errors.WrapUnavailable(err, "OrderAdapter", "GetOrder", "rpc call")
//	errors.WrapNotFound(err, "OrderAdapter", "GetOrder", "lookup")
//	errors.WrapInvalid(err, "OrderAdapter", "CreateOrder", "request")
//	errors.WrapInternal(err, "OrderAdapter", "GetAllOrders", "rpc call")
//
// Classification survives error chains and integrates with errors.Is,
// errors.As, and %w wrapping:
//
//	wrapped := errors.WrapUnavailable(cause, "Publisher", "Publish", "publish")
//	errors.IsUnavailable(wrapped) // true
//
// Surfaces use KindOf for exhaustive mapping:
//
//	switch errors.KindOf(err) {
//	case errors.KindNotFound:
//	    // 404
//	case errors.KindUnavailable:
//	    // 503
//	case errors.KindInvalid:
//	    // 400
//	default:
//	    // 500
//	}
package errors
