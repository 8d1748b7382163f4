package shroud

// FixedNoClone is Fixed with duplication removed from its capability set.
// Use it when a secret must have a single trackable owner at all times,
// such as a one-time credential handed down an ownership chain. Moves
// (pointer transfer) remain allowed; only duplication is forbidden.
//
// This is a capability distinction, not a subtype: the read, write, and
// zeroization contract is identical to Fixed, there is simply no Clone
// method and no conversion back to the cloneable form. Copying the struct
// by value is flagged by go vet's copylocks check.
type FixedNoClone[A any] struct {
	noCopy noCopy
	redact

	arr A
	buf []byte
}

// newFixedNoClone allocates an empty FixedNoClone and wires up its view.
func newFixedNoClone[A any]() *FixedNoClone[A] {
	n := &FixedNoClone[A]{}
	n.buf = byteArrayView(&n.arr)
	return n
}

// NewFixedNoClone wraps a byte array value in a non-cloneable secret.
// As with NewFixed, the caller's copy of v is theirs to wipe.
func NewFixedNoClone[A any](v A) *FixedNoClone[A] {
	n := &FixedNoClone[A]{arr: v}
	n.buf = byteArrayView(&n.arr)
	return n
}

// FixedNoCloneFromSlice copies exactly Size bytes from b into a new
// FixedNoClone, returning a LengthError on any other input length.
func FixedNoCloneFromSlice[A any](b []byte) (*FixedNoClone[A], error) {
	n := newFixedNoClone[A]()
	if len(b) != len(n.buf) {
		return nil, newLengthError(len(n.buf), len(b))
	}
	copy(n.buf, b)
	return n, nil
}

// Expose returns the secret bytes for reading. Live view; do not retain.
func (n *FixedNoClone[A]) Expose() []byte {
	return n.buf
}

// ExposeMut returns the secret bytes for writing.
func (n *FixedNoClone[A]) ExposeMut() []byte {
	return n.buf
}

// Size returns the fixed length in bytes. Safe public metadata.
func (n *FixedNoClone[A]) Size() int {
	return len(n.buf)
}

// Equal reports whether n and other hold the same bytes, compared in
// constant time.
func (n *FixedNoClone[A]) Equal(other *FixedNoClone[A]) bool {
	return ConstantTimeEqual(n.Expose(), other.Expose())
}

// Wipe overwrites every byte of the array with zeros immediately.
func (n *FixedNoClone[A]) Wipe() {
	wipe(n.buf)
	emitWipe(kindFixedNoClone, len(n.buf))
}

// DynamicNoClone is Dynamic with duplication removed from its capability
// set. Same storage contract as Dynamic - exposed-view access, wiping
// reallocation, capacity-wide Wipe - with no Clone method and no way back
// to the cloneable form.
type DynamicNoClone struct {
	noCopy noCopy
	redact

	dynamicCore
}

// NewDynamicNoClone wraps b in a non-cloneable dynamic secret, taking
// ownership of the slice. The caller must not retain or reuse b.
func NewDynamicNoClone(b []byte) *DynamicNoClone {
	return &DynamicNoClone{dynamicCore: dynamicCore{buf: b}}
}

// Expose returns the logical content for reading. Live view; do not retain.
func (n *DynamicNoClone) Expose() []byte {
	return n.expose()
}

// ExposeMut returns the logical content for in-place writing.
func (n *DynamicNoClone) ExposeMut() []byte {
	return n.expose()
}

// Append appends p, wiping any abandoned allocation on growth.
func (n *DynamicNoClone) Append(p []byte) {
	n.grow(p)
}

// Truncate shortens the content to nb bytes, wiping the dropped region.
func (n *DynamicNoClone) Truncate(nb int) {
	n.truncate(nb)
}

// ShrinkToFit reallocates to exact length, wiping the oversized buffer.
func (n *DynamicNoClone) ShrinkToFit() {
	n.shrink()
}

// Len returns the logical length in bytes. Safe public metadata.
func (n *DynamicNoClone) Len() int {
	return len(n.buf)
}

// Cap returns the allocated capacity in bytes.
func (n *DynamicNoClone) Cap() int {
	return cap(n.buf)
}

// Equal reports whether n and other hold the same bytes, compared in
// constant time.
func (n *DynamicNoClone) Equal(other *DynamicNoClone) bool {
	return ConstantTimeEqual(n.Expose(), other.Expose())
}

// Wipe overwrites the entire current capacity with zeros immediately.
func (n *DynamicNoClone) Wipe() {
	n.wipeAll()
	emitWipe(kindDynamicNoClone, cap(n.buf))
}
