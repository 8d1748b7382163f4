package shroud

// dynamicCore owns a heap buffer and implements the storage contract shared
// by Dynamic and DynamicNoClone: in-place access through the exposed view,
// length changes only through operations that wipe any buffer they abandon,
// and capacity-wide zeroization.
type dynamicCore struct {
	buf []byte
}

func (c *dynamicCore) expose() []byte { return c.buf }

// grow appends p, reallocating with amortized doubling when capacity is
// exhausted. The abandoned buffer is wiped across its full capacity before
// being released to the allocator.
func (c *dynamicCore) grow(p []byte) {
	need := len(c.buf) + len(p)
	if need > cap(c.buf) {
		newCap := cap(c.buf) * 2
		if newCap < need {
			newCap = need
		}
		nb := make([]byte, len(c.buf), newCap)
		copy(nb, c.buf)
		wipe(c.buf[:cap(c.buf)])
		c.buf = nb
	}
	c.buf = append(c.buf, p...)
}

// truncate drops the logical content beyond n, wiping the dropped region
// immediately rather than leaving it as live slack.
func (c *dynamicCore) truncate(n int) {
	if n < 0 || n > len(c.buf) {
		panic("shroud: truncate out of range")
	}
	wipe(c.buf[n:])
	c.buf = c.buf[:n]
}

// shrink reallocates to exact length, wiping the oversized buffer.
func (c *dynamicCore) shrink() {
	if cap(c.buf) == len(c.buf) {
		return
	}
	nb := make([]byte, len(c.buf))
	copy(nb, c.buf)
	wipe(c.buf[:cap(c.buf)])
	c.buf = nb
}

// wipeAll zeroes the entire current capacity, not just the logical length.
// Prior growth can leave secret bytes in the unused tail; those are wiped
// too.
func (c *dynamicCore) wipeAll() {
	wipe(c.buf[:cap(c.buf)])
}

// Dynamic is a variable-length secret wrapper owning a heap buffer.
//
// The buffer is unexported; all access goes through Expose and ExposeMut.
// There is deliberately no implicit borrowing path - no Bytes(), no
// Stringer with content, no encoding support - because implicit borrowing
// is how secrets wander into logging and printing call sites unnoticed.
//
// In-place reads and writes go through the exposed view. Length-changing
// mutation (Append, Truncate, ShrinkToFit) goes through the wrapper so a
// reallocation can never strand an unwiped buffer. Capacity slack is
// reclaimed only by an explicit ShrinkToFit call.
type Dynamic struct {
	noCopy noCopy
	redact

	dynamicCore
}

// NewDynamic wraps b in a Dynamic secret, taking ownership of the slice.
// No copy is made: the caller must not retain or reuse b afterward. This
// is the allocation-free construction path for large payloads.
func NewDynamic(b []byte) *Dynamic {
	return &Dynamic{dynamicCore: dynamicCore{buf: b}}
}

// DynamicFromString copies s into a new Dynamic secret. Go strings are
// immutable, so the source string itself cannot be wiped; prefer
// constructing secrets as byte slices when the origin is under your
// control.
func DynamicFromString(s string) *Dynamic {
	return NewDynamic([]byte(s))
}

// Expose returns the logical content for reading. The returned slice is a
// live view: it must not be retained past the call site, and it becomes
// zeros after Wipe.
func (d *Dynamic) Expose() []byte {
	return d.expose()
}

// ExposeMut returns the logical content for in-place writing. Identical
// view to Expose; the separate name keeps mutation sites distinguishable
// when auditing secret access. Length changes go through Append, Truncate,
// and ShrinkToFit instead.
func (d *Dynamic) ExposeMut() []byte {
	return d.expose()
}

// Append appends p to the secret. If the buffer must grow, the abandoned
// allocation is wiped before release, so no secret bytes are stranded in
// freed memory.
func (d *Dynamic) Append(p []byte) {
	d.grow(p)
}

// Truncate shortens the logical content to n bytes and wipes the dropped
// region immediately. It panics if n is negative or beyond the current
// length.
func (d *Dynamic) Truncate(n int) {
	d.truncate(n)
}

// ShrinkToFit reallocates the buffer to its exact logical length, wiping
// the oversized allocation. Shrinking is explicit and caller-controlled;
// no operation shrinks automatically.
func (d *Dynamic) ShrinkToFit() {
	d.shrink()
}

// Len returns the logical length in bytes. Safe public metadata.
func (d *Dynamic) Len() int {
	return len(d.buf)
}

// Cap returns the allocated capacity in bytes. Capacity may exceed Len
// after mutation; Wipe covers the full capacity regardless.
func (d *Dynamic) Cap() int {
	return cap(d.buf)
}

// Equal reports whether d and other hold the same bytes, compared in
// constant time.
func (d *Dynamic) Equal(other *Dynamic) bool {
	return ConstantTimeEqual(d.Expose(), other.Expose())
}

// Clone returns a new Dynamic with an independently-owned copy of the
// logical content. The clone never aliases the original buffer, so the
// two wipe independently.
func (d *Dynamic) Clone() *Dynamic {
	nb := make([]byte, len(d.buf))
	copy(nb, d.buf)
	c := NewDynamic(nb)
	emitClone(kindDynamic, c.Len())
	return c
}

// NoClone moves the buffer into a non-cloneable wrapper, leaving d empty,
// so exactly one live copy of the secret remains. The conversion is
// one-way.
func (d *Dynamic) NoClone() *DynamicNoClone {
	n := &DynamicNoClone{dynamicCore: dynamicCore{buf: d.buf}}
	d.buf = nil
	emitTransfer(kindDynamic, n.Len())
	return n
}

// Wipe overwrites the entire current capacity with zeros immediately.
// This is stronger than wiping the logical length: a prior Append or
// Truncate can leave live secret bytes in the unused tail, and those are
// wiped too. The wrapper remains usable and holds zeros.
func (d *Dynamic) Wipe() {
	d.wipeAll()
	emitWipe(kindDynamic, cap(d.buf))
}
