package shroud

import (
	"encoding/hex"
	"errors"
)

// Validation causes carried inside EncodingError for hex-text secrets.
var (
	errOddLength = errors.New("odd length")
	errNotHex    = errors.New("non-hex character")
)

// HexString is a validated hex-text secret: even length, ASCII hex digits
// only, normalized to lowercase at construction. It is a Dynamic secret
// under the hood and obeys the same exposure and zeroization rules; the
// format invariants hold for the wrapper's entire life because no mutable
// exposure of the text exists.
type HexString struct {
	noCopy noCopy
	redact

	inner *Dynamic
}

// NewHexString validates s and wraps it. Uppercase digits are normalized
// to lowercase in place on the wrapper's own copy. Input that fails
// validation is wiped before the EncodingError is returned, so rejected
// secrets leave no residue. Every byte is checked; validation does not
// stop at the first bad character.
func NewHexString(s string) (*HexString, error) {
	buf := []byte(s)
	if len(buf)%2 != 0 {
		wipe(buf)
		err := newEncodingError("hex", errOddLength)
		emitDecodeRejected("hex", err)
		return nil, err
	}
	valid := true
	for i, c := range buf {
		switch {
		case c >= 'A' && c <= 'F':
			buf[i] = c + ('a' - 'A')
		case c >= 'a' && c <= 'f', c >= '0' && c <= '9':
		default:
			valid = false
		}
	}
	if !valid {
		wipe(buf)
		err := newEncodingError("hex", errNotHex)
		emitDecodeRejected("hex", err)
		return nil, err
	}
	return &HexString{inner: NewDynamic(buf)}, nil
}

// Expose returns the hex text for reading. Live view; do not retain.
// There is deliberately no mutable exposure: mutation could break the
// format invariants established at construction.
func (h *HexString) Expose() []byte {
	return h.inner.Expose()
}

// Len returns the length of the hex text in bytes. Safe public metadata.
func (h *HexString) Len() int {
	return h.inner.Len()
}

// ByteLen returns the number of bytes the hex text decodes to.
func (h *HexString) ByteLen() int {
	return h.inner.Len() / 2
}

// Decode returns the decoded raw bytes as a new Dynamic secret. The
// wrapper's invariants guarantee the text is valid hex.
func (h *HexString) Decode() *Dynamic {
	raw := make([]byte, hex.DecodedLen(h.inner.Len()))
	if _, err := hex.Decode(raw, h.inner.Expose()); err != nil {
		panic("shroud: HexString holds invalid hex: " + err.Error())
	}
	return NewDynamic(raw)
}

// Equal reports whether h and other hold the same hex text, compared in
// constant time.
func (h *HexString) Equal(other *HexString) bool {
	return ConstantTimeEqual(h.Expose(), other.Expose())
}

// Clone returns an independently-owned copy of the hex text.
func (h *HexString) Clone() *HexString {
	return &HexString{inner: h.inner.Clone()}
}

// Wipe overwrites the hex text with zeros immediately.
func (h *HexString) Wipe() {
	h.inner.Wipe()
}

// RandomHex is a HexString that can only be produced by the random
// generation path, giving the printable-string case the same freshness
// guarantee as FixedRng and DynamicRng. There is no constructor from
// caller-supplied text.
type RandomHex struct {
	noCopy noCopy
	redact

	hx *HexString
}

// GenerateHex draws n fresh bytes from the system random source and
// returns them encoded as a validated lowercase hex secret of 2n
// characters. The intermediate random bytes are wiped as soon as the text
// is built. A source failure returns a RandomSourceError.
func GenerateHex(n int) (*RandomHex, error) {
	r, err := GenerateDynamic(n)
	if err != nil {
		return nil, err
	}
	enc := make([]byte, hex.EncodedLen(n))
	hex.Encode(enc, r.Expose())
	r.Wipe()
	return &RandomHex{hx: &HexString{inner: NewDynamic(enc)}}, nil
}

// Expose returns the hex text for reading. Live view; do not retain.
func (r *RandomHex) Expose() []byte {
	return r.hx.Expose()
}

// Len returns the length of the hex text in bytes.
func (r *RandomHex) Len() int {
	return r.hx.Len()
}

// ByteLen returns the number of bytes the hex text decodes to.
func (r *RandomHex) ByteLen() int {
	return r.hx.ByteLen()
}

// Decode returns the decoded raw bytes as a new Dynamic secret.
func (r *RandomHex) Decode() *Dynamic {
	return r.hx.Decode()
}

// Equal reports whether r and other hold the same hex text, compared in
// constant time.
func (r *RandomHex) Equal(other *RandomHex) bool {
	return r.hx.Equal(other.hx)
}

// Wipe overwrites the hex text with zeros immediately.
func (r *RandomHex) Wipe() {
	r.hx.Wipe()
}
