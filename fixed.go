package shroud

import "reflect"

// Fixed is a fixed-size secret wrapper over a byte array type A, such as
// [32]byte. The array lives inline in the wrapper; there is no separate
// allocation, and the size is part of the type:
//
//	type APIKey = shroud.Fixed[[32]byte]
//
// The inner array is unexported, forcing all access through Expose and
// ExposeMut. There is no operation that returns the array by value, so the
// bytes can never leave the wrapper except through an exposed view.
//
// Go cannot express "any byte array" as a type constraint, so A is checked
// at the first constructor call: a non-byte-array type parameter panics.
// This is a programmer error on the level of passing a non-comparable map
// key, not a runtime condition.
type Fixed[A any] struct {
	noCopy noCopy
	redact

	arr A
	buf []byte // view over arr, built once at construction
}

// byteType is the required element type of A. Named byte types are
// rejected; reflect cannot produce a []byte view over them.
var byteType = reflect.TypeOf(byte(0))

// byteArrayView returns a []byte view over the array at arr, panicking if
// A is not a byte array type.
func byteArrayView[A any](arr *A) []byte {
	v := reflect.ValueOf(arr).Elem()
	if v.Kind() != reflect.Array || v.Type().Elem() != byteType {
		panic("shroud: type parameter must be a byte array, have " + v.Type().String())
	}
	return v.Bytes()
}

// newFixed allocates an empty Fixed and wires up its byte view.
func newFixed[A any]() *Fixed[A] {
	f := &Fixed[A]{}
	f.buf = byteArrayView(&f.arr)
	return f
}

// NewFixed wraps a byte array value in a Fixed secret.
//
// Go passes v by value, so the caller still holds its own copy of the
// array; callers who constructed v from sensitive material should wipe
// their copy separately.
func NewFixed[A any](v A) *Fixed[A] {
	f := &Fixed[A]{arr: v}
	f.buf = byteArrayView(&f.arr)
	return f
}

// FixedFromSlice copies exactly Size bytes from b into a new Fixed.
// It returns a LengthError (wrapping ErrLengthMismatch) if len(b) does not
// equal the array size; the input is never truncated or padded.
//
// The source slice is not wiped; it belongs to the caller.
func FixedFromSlice[A any](b []byte) (*Fixed[A], error) {
	f := newFixed[A]()
	if len(b) != len(f.buf) {
		return nil, newLengthError(len(f.buf), len(b))
	}
	copy(f.buf, b)
	return f, nil
}

// Expose returns the secret bytes for reading. The returned slice is a
// live view into the wrapper: it must not be retained past the call site,
// and it becomes zeros after Wipe.
//
// This and ExposeMut are the only access paths to the bytes.
func (f *Fixed[A]) Expose() []byte {
	return f.buf
}

// ExposeMut returns the secret bytes for writing. Identical view to
// Expose; the separate name keeps mutation sites distinguishable when
// auditing secret access.
func (f *Fixed[A]) ExposeMut() []byte {
	return f.buf
}

// Size returns the fixed length in bytes. Safe public metadata.
func (f *Fixed[A]) Size() int {
	return len(f.buf)
}

// Equal reports whether f and other hold the same bytes, compared in
// constant time.
func (f *Fixed[A]) Equal(other *Fixed[A]) bool {
	return ConstantTimeEqual(f.Expose(), other.Expose())
}

// Clone returns a new Fixed with an independent copy of the bytes. The
// clone's lifetime and wiping are decoupled from the original.
func (f *Fixed[A]) Clone() *Fixed[A] {
	c := NewFixed(f.arr)
	emitClone(kindFixed, c.Size())
	return c
}

// NoClone transfers the bytes into a non-cloneable wrapper and wipes f,
// so at most one live copy of the secret remains. The conversion is
// one-way; there is no path back to a cloneable Fixed.
func (f *Fixed[A]) NoClone() *FixedNoClone[A] {
	n := newFixedNoClone[A]()
	copy(n.buf, f.buf)
	wipe(f.buf)
	emitTransfer(kindFixed, n.Size())
	return n
}

// Wipe overwrites every byte of the array with zeros immediately, ending
// the secret's life before its enclosing scope does. The wrapper remains
// usable and holds zeros.
func (f *Fixed[A]) Wipe() {
	wipe(f.buf)
	emitWipe(kindFixed, len(f.buf))
}
