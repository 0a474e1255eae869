package graphql

import (
	"github.com/mealgrid/gateway/errors"
)

// Machine-readable error codes surfaced in the GraphQL extensions block.
const (
	codeUnavailable = "UNAVAILABLE"
	codeNotFound    = "NOT_FOUND"
	codeInvalid     = "INVALID_REQUEST"
	codeInternal    = "INTERNAL"
)

// queryError is a resolver error carrying a machine-readable code in its
// extensions, per the graphql-go ResolverError contract.
type queryError struct {
	message    string
	extensions map[string]interface{}
}

func (e *queryError) Error() string {
	return e.message
}

func (e *queryError) Extensions() map[string]interface{} {
	return e.extensions
}

// resolverError translates a normalized adapter error into the GraphQL
// error vocabulary. Transport details never leak to clients; the original
// error is only visible through adapter logs.
func resolverError(err error, operation string) error {
	var code, message string
	switch errors.KindOf(err) {
	case errors.KindUnavailable:
		code = codeUnavailable
		message = "service unavailable"
	case errors.KindNotFound:
		code = codeNotFound
		message = "resource not found"
	case errors.KindInvalid:
		code = codeInvalid
		message = "invalid request"
	default:
		code = codeInternal
		message = "internal server error"
	}

	return &queryError{
		message: message,
		extensions: map[string]interface{}{
			"code":      code,
			"operation": operation,
		},
	}
}
