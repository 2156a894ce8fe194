// SPDX-License-Identifier: MIT
// Package: bisect/builder

package builder

// validateMin ensures that got ≥ min, returning sentinel wrapped with the
// method context otherwise.
// Complexity: O(1) time and space.
func validateMin(method string, sentinel error, got, min int) error {
	if got < min {
		return wrapf(method, sentinel, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}
