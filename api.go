// Package shroud provides wrapper types for sensitive byte data where every
// read or write of the underlying bytes is an explicit, grep-able call.
//
// The package offers fixed-size and heap-allocated secret wrappers, a
// freshness-typed random generation path, and encode/decode helpers that
// operate only on already-exposed byte views.
//
// # Exposure Discipline
//
// A secret wrapper never hands out its bytes implicitly. There is no
// Bytes(), no Stringer that prints content, no marshaling path. The only
// access is through Expose (read) and ExposeMut (write):
//
//	key, _ := shroud.FixedFromSlice[[32]byte](raw)
//	mac := hmac.New(sha256.New, key.Expose())
//
// Every call site that touches secret material therefore contains the word
// "Expose", which makes secret access auditable with a text search. Printing
// a wrapper with the fmt verbs yields "[REDACTED]", and encoding one with
// encoding/json or encoding/xml fails with ErrNotSerializable rather than
// leaking silently.
//
// # Wrapper Types
//
// Four wrappers cover the fixed/dynamic and cloneable/non-cloneable axes:
//
//   - Fixed[A] - fixed-size secret over a byte array type (e.g. [32]byte)
//   - Dynamic - variable-length secret owning a heap buffer
//   - FixedNoClone[A] - Fixed without duplication; at most one live copy
//   - DynamicNoClone - Dynamic without duplication
//
// The no-clone variants omit the Clone method and are flagged by go vet's
// copylocks check when copied by value. Conversion is one-way: NoClone()
// transfers the bytes and wipes the source.
//
// # Zeroization
//
// Go has no destructors, so wiping is explicit. Every wrapper has a Wipe
// method that overwrites its memory, and for dynamic secrets the entire
// allocated capacity rather than just the logical length. Guard scopes a
// secret to a function and wipes it on every exit path:
//
//	err := shroud.Guard(token, func(t *shroud.Dynamic) error {
//	    return send(t.Expose())
//	})
//
// Length-changing mutation of a Dynamic (Append, Truncate, ShrinkToFit)
// goes through the wrapper so a reallocation never strands an unwiped
// buffer. Capacity slack is reclaimed only by an explicit ShrinkToFit call;
// nothing shrinks behind the caller's back.
//
// # Freshness
//
// FixedRng and DynamicRng are distinct types whose only constructors read
// from the system random source. Holding one proves at the type level that
// the bytes were drawn fresh and were never copied, defaulted, or supplied
// by a caller. Into lowers a fresh value to the plain wrapper; there is no
// reverse conversion.
//
//	nonce, err := shroud.GenerateFixed[[24]byte]()
//
// A failed read from the random source returns ErrRandomSource. There is no
// fallback to weaker randomness.
//
// # Conversions
//
// Encode and decode helpers take byte slices, never wrapper types, so every
// conversion site visibly contains an exposure call:
//
//	hex := shroud.EncodeHex(key.Expose())
//	key2, err := shroud.DecodeHexFixed[[32]byte](hex)
//
// Decoding validates strictly and wipes its scratch buffers on both the
// success and failure paths. ConstantTimeEqual compares two exposed views
// without an early exit on the first differing byte.
//
// HexString holds a validated, lowercased hex-text secret; RandomHex is a
// HexString that can only be produced by the random generation path.
//
// # Signals
//
// Lifecycle transitions (generate, wipe, clone, transfer, rejected decode)
// emit capitan signals carrying metadata only - kind, size, encoding, error
// - never secret bytes. Exposure itself emits nothing; reading a secret
// stays free.
package shroud

// Wiper is the one-method contract shared by every secret wrapper:
// overwrite the backing memory now rather than at some future collection.
//
// Wipe is idempotent. A wiped wrapper remains usable and holds zeros.
type Wiper interface {
	Wipe()
}

// Guard runs fn with the secret s and wipes s on every exit path,
// including error returns and panics. It is the scoped counterpart to
// calling Wipe manually:
//
//	err := shroud.Guard(key, func(k *shroud.Fixed[[32]byte]) error {
//	    return seal(k.Expose(), payload)
//	})
//
// After Guard returns, s holds zeros.
func Guard[S Wiper](s S, fn func(S) error) error {
	defer s.Wipe()
	return fn(s)
}
