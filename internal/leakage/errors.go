package leakage

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidInput indicates that one of the six inputs is not a finite number,
	// or that a value derived from them is not.
	// Callers skip the computation and leave previously displayed values in place.
	ErrInvalidInput = constError("invalid input")

	// ErrCalculationFailed indicates that the formula pipeline panicked.
	// It is only returned by Calculator.Compute, which recovers the panic.
	ErrCalculationFailed = constError("calculation failed")
)
