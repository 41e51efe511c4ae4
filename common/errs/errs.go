package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// ConfigurationError is returned when a run can't start because of missing or invalid configuration.
	// It is always detected before any remote call.
	ConfigurationError = ErrorKind("Configuration Error")

	// InvalidArgument is returned when a caller supplied value is malformed.
	InvalidArgument = ErrorKind("Invalid Argument")

	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// Unsupported is returned when a feature, network or driver is not supported.
	Unsupported = ErrorKind("Unsupported")

	// OverflowUint256 is returned when an amount does not fit in 256 bits.
	OverflowUint256 = ErrorKind("overflow uint256")

	// Timeout is returned when an operation did not settle in time.
	Timeout = ErrorKind("Timeout")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
