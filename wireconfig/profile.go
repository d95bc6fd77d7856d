// Package wireconfig loads the handful of stream-construction defaults
// (reserve hint, max-count hint, whether to append a CRC trailer) from a
// JSON5 document.
package wireconfig

import (
	"fmt"
	"os"

	"github.com/aeolun/json5"
	"github.com/bitwire/bitwire/stream"
)

// Profile holds the construction defaults for a family of streams. The
// zero value is a valid profile matching stream's own defaults
// (DefaultMaxCountHint, no reserve hint, no CRC).
type Profile struct {
	ReserveHint  int    `json:"reserve_hint,omitempty"`
	MaxCountHint uint64 `json:"max_count_hint,omitempty"`
	WithCRC      bool   `json:"with_crc,omitempty"`
}

// DefaultProfile is the profile used when no JSON5 document is supplied.
var DefaultProfile = Profile{
	ReserveHint:  0,
	MaxCountHint: stream.DefaultMaxCountHint,
	WithCRC:      false,
}

// LoadProfile reads and parses a JSON5 document at path into a Profile.
// Fields absent from the document keep DefaultProfile's values.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("wireconfig: read %s: %w", path, err)
	}
	return ParseProfile(data)
}

// ParseProfile parses a JSON5 document's bytes into a Profile, starting
// from DefaultProfile so that an empty or partial document still yields
// sane defaults.
func ParseProfile(data []byte) (Profile, error) {
	profile := DefaultProfile
	if err := json5.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("wireconfig: parse profile: %w", err)
	}
	if profile.MaxCountHint == 0 {
		profile.MaxCountHint = stream.DefaultMaxCountHint
	}
	return profile, nil
}

// NewWriter builds a stream.Writer using this profile's reserve hint.
func (p Profile) NewWriter() *stream.Writer {
	return stream.NewWriter(p.ReserveHint)
}

// Pack packs w according to this profile's WithCRC setting.
func (p Profile) Pack(w *stream.Writer) []byte {
	return w.Pack(p.WithCRC)
}
