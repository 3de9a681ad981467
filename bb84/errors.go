package bb84

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument reports a malformed simulation parameter. It is
	// surfaced before any round state is created.
	ErrInvalidArgument = errors.New("bb84: invalid argument")

	// ErrInsufficientKeyMaterial reports that verification requested more
	// sample bits than the sifted key contains.
	ErrInsufficientKeyMaterial = errors.New("bb84: insufficient key material")
)
