package bulge

import "github.com/cockroachdb/errors"

// Errors returned by this package wrap one of these sentinels; test for them
// with [errors.Is].
var (
	// ErrInvalidArgument reports a bulge outside of [-1, 1], a three-point
	// arc longer than a semicircle, a non-positive tessellation step or a
	// missing collaborator.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange reports a control point index outside of [0, 3].
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoCentre reports a request for the centre of a straight segment.
	ErrNoCentre = errors.New("straight segment has no centre")
)

func invalidArgumentf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
