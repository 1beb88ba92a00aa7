package validate

import (
	"errors"
	"strings"
)

// Result is the outcome of validating a value against a schema. Valid is
// true exactly when Errors is empty.
//
// Error messages carry breadcrumb context accumulated during the recursive
// descent, such as:
//
//	Property 'tags': Item[2]: Expected string, got number
type Result struct {
	Valid  bool
	Errors []string
}

func resultOf(errs []string) Result {
	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// Err returns nil for a valid result, or a single error joining every
// message in order.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return errors.New(strings.Join(r.Errors, "; "))
}
