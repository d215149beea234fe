package carbsys

import "errors"

var (
	// ErrUnsupportedPair indicates a parameter combination the solver cannot handle.
	ErrUnsupportedPair = errors.New("carbsys: unsupported parameter pair")

	// ErrInvalidInput indicates a non-finite or non-positive input.
	ErrInvalidInput = errors.New("carbsys: invalid input")

	// ErrNoConvergence indicates that no [H+] within the search bracket satisfies the alkalinity balance.
	ErrNoConvergence = errors.New("carbsys: pH search did not converge")
)
