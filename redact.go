package shroud

import (
	"fmt"
	"io"
	"log/slog"
)

// Redacted is what every wrapper prints in place of its contents.
const Redacted = "[REDACTED]"

// redact is embedded in every secret wrapper to close the implicit output
// paths: fmt verbs, Stringer consumers, slog, and the encoding interfaces.
// Printing yields Redacted for every verb; marshaling fails loudly with
// ErrNotSerializable instead of leaking bytes into an encoder.
type redact struct{}

func (redact) String() string   { return Redacted }
func (redact) GoString() string { return Redacted }

func (redact) Format(s fmt.State, verb rune) {
	io.WriteString(s, Redacted)
}

func (redact) LogValue() slog.Value { return slog.StringValue(Redacted) }

func (redact) MarshalJSON() ([]byte, error)   { return nil, ErrNotSerializable }
func (redact) MarshalText() ([]byte, error)   { return nil, ErrNotSerializable }
func (redact) MarshalBinary() ([]byte, error) { return nil, ErrNotSerializable }
