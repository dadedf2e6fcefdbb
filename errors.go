package iterkit

type constErr string

func (err constErr) Error() string { return string(err) }

const (
	// ErrInvalidArgument is the panic value for malformed construction parameters,
	// like a non-positive step size or window size, or a negative advance count.
	ErrInvalidArgument constErr = `iterkit: invalid argument`
	// ErrCopyNotSupported is the panic value when Copy is called on an iterator
	// where CanCopy reports false.
	ErrCopyNotSupported constErr = `iterkit: iterator does not support copying`
	// ErrNoValue is the panic value when Option.Value is called on an absent Option.
	ErrNoValue constErr = `iterkit: no value present in the Option`
)
