// SPDX-License-Identifier: MIT
// Package: bisect/bsearch
//
// errors.go — sentinel errors for the bsearch package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (method, offending index) is attached with %w wrapping.
//   • Absence of the target is NOT an error; it is reported as NotFound.

package bsearch

import (
	"errors"
	"fmt"
)

// ErrUnsorted indicates that the input sequence violates the non-decreasing
// order precondition. Only SearchChecked detects it; Search and friends
// assume sorted input and do not validate.
// Usage: if errors.Is(err, ErrUnsorted) { /* sort or reject input */ }.
var ErrUnsorted = errors.New("bsearch: sequence is not sorted")

// Method names used as error prefixes.
const (
	methodSearchChecked = "SearchChecked"
)

// searchErrorf wraps err with the method name and a formatted detail,
// producing "<method>: <detail>: <err>".
func searchErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
