package stream

import "errors"

// The three error kinds a reader can raise. No other exit codes exist in
// this package; writers have no runtime error path.
var (
	// ErrTooShort is returned when a read would advance the cursor past
	// the end of the stream's declared bit length.
	ErrTooShort = errors.New("bitwire: too short")

	// ErrEncodingError is returned when the bits read are well-formed but
	// do not represent a valid value for the type being decoded (for
	// example, an enumeration tag outside its declared variant set).
	ErrEncodingError = errors.New("bitwire: encoding error")

	// ErrIncorrectChecksum is returned only by NewCRCValidatedReader, when
	// the trailing CRC-32 does not match the bytes it is supposed to cover.
	ErrIncorrectChecksum = errors.New("bitwire: incorrect checksum")
)
