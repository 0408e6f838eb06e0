package textfmt

import "errors"

// Sentinel errors surfaced while parsing the textual configuration and
// action formats. Callers should use errors.Is to branch on them; line
// context is attached with %w by the scanning loop, not baked into the
// sentinel message itself.
var (
	// ErrUnknownRecord indicates a line's leading tag is not one of the
	// formats this package understands.
	ErrUnknownRecord = errors.New("textfmt: unknown record type")
	// ErrMalformedRecord indicates a recognized tag with the wrong number
	// or shape of fields.
	ErrMalformedRecord = errors.New("textfmt: malformed record")
	// ErrUnknownSide indicates a side token outside {A,B,0,1}.
	ErrUnknownSide = errors.New("textfmt: unknown side token")
	// ErrUnknownDock indicates a dock token outside {+X,-X,-Z,0,1,2}.
	ErrUnknownDock = errors.New("textfmt: unknown dock token")
	// ErrUnknownOrientation indicates an orientation token outside
	// {N,E,S,W,0,1,2,3}.
	ErrUnknownOrientation = errors.New("textfmt: unknown orientation token")
	// ErrUnknownJoint indicates a joint token outside {Alpha,Beta,Gamma,0,1,2}.
	ErrUnknownJoint = errors.New("textfmt: unknown joint token")
)
