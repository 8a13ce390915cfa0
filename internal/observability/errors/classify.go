// Package errors normalizes errors into short class names for metric tags.
package errors

import (
	goerrors "errors"
	"reflect"
	"strings"
)

// Named is implemented by sentinel errors that carry their own metric class.
type Named interface {
	error
	ErrorClass() string
}

// Classify returns a normalized error class suitable for tagging metrics and logs.
//
// The first error in the chain implementing Named wins; otherwise the innermost
// concrete type name is used in snake case ("*pgconn.PgError" -> "pgconn_pgerror").
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var named Named
	if goerrors.As(err, &named) {
		if class := named.ErrorClass(); class != "" {
			return class
		}
	}

	inner := err
	for {
		next := goerrors.Unwrap(inner)
		if next == nil {
			break
		}
		inner = next
	}

	t := reflect.TypeOf(inner)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}
	name := strings.ToLower(strings.ReplaceAll(t.String(), ".", "_"))
	if name == "" {
		return "unknown"
	}
	return name
}
