package shroud

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// The conversion helpers take byte slices, never wrapper types. Every call
// site therefore visibly contains an Expose call:
//
//	s := shroud.EncodeHex(key.Expose())
//
// which keeps the exposure discipline intact across encoding boundaries.

// EncodeHex encodes an exposed byte view as lowercase hexadecimal. The
// returned string is an ordinary Go string and cannot be wiped; treat it
// with the same care as the secret it encodes.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// upperHex is the digit table for EncodeHexUpper.
const upperHex = "0123456789ABCDEF"

// EncodeHexUpper encodes an exposed byte view as uppercase hexadecimal.
func EncodeHexUpper(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = upperHex[c>>4]
		out[i*2+1] = upperHex[c&0x0f]
	}
	return string(out)
}

// EncodeBase64URL encodes an exposed byte view as unpadded URL-safe
// base64, the alphabet used for tokens carried in URLs and headers.
func EncodeBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeHexFixed decodes a hex string into a fixed-size secret. Input is
// validated strictly: even length, ASCII hex digits only (either case).
// A decoded length other than the array size returns a LengthError; a
// malformed string returns an EncodingError. Scratch buffers are wiped on
// both the success and failure paths, so a rejected secret leaves no
// residue.
func DecodeHexFixed[A any](s string) (*Fixed[A], error) {
	enc := []byte(s)
	raw := make([]byte, hex.DecodedLen(len(enc)))
	_, err := hex.Decode(raw, enc)
	wipe(enc)
	if err != nil {
		wipe(raw)
		err = newEncodingError("hex", err)
		emitDecodeRejected("hex", err)
		return nil, err
	}
	f, err := FixedFromSlice[A](raw)
	wipe(raw)
	if err != nil {
		emitDecodeRejected("hex", err)
		return nil, err
	}
	return f, nil
}

// DecodeBase64Fixed decodes an unpadded URL-safe base64 string into a
// fixed-size secret. Padding characters and bytes outside the URL-safe
// alphabet are rejected with an EncodingError; a decoded length other than
// the array size returns a LengthError. Scratch buffers are wiped on both
// paths.
func DecodeBase64Fixed[A any](s string) (*Fixed[A], error) {
	enc := []byte(s)
	raw := make([]byte, base64.RawURLEncoding.DecodedLen(len(enc)))
	n, err := base64.RawURLEncoding.Decode(raw, enc)
	wipe(enc)
	if err != nil {
		wipe(raw)
		err = newEncodingError("base64url", err)
		emitDecodeRejected("base64url", err)
		return nil, err
	}
	f, err := FixedFromSlice[A](raw[:n])
	wipe(raw)
	if err != nil {
		emitDecodeRejected("base64url", err)
		return nil, err
	}
	return f, nil
}

// ConstantTimeEqual reports whether two exposed byte views are equal,
// without an early exit on the first differing byte. Differing lengths
// return false immediately; length is public metadata on every wrapper
// and is not protected.
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Fingerprint returns a short stable identifier for an exposed byte view:
// the first 8 bytes of its BLAKE2b-256 digest, hex encoded. Fingerprints
// are safe to log and compare for correlation ("which key was used") and
// do not reveal the secret.
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:8])
}
