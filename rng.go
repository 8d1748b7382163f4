package shroud

import "crypto/rand"

// FixedRng is a fixed-size secret whose bytes are statically known to have
// come fresh from the system random source. The only constructor is
// GenerateFixed; there is no way to manufacture a FixedRng from arbitrary
// bytes or from a plain Fixed, so a function that takes *FixedRng[A] is
// guaranteed a never-reused, never-caller-supplied value at compile time.
//
// Into lowers the value to a plain Fixed, discarding the freshness claim.
// The reverse conversion does not exist; freshness cannot be re-established
// after the fact.
type FixedRng[A any] struct {
	noCopy noCopy
	redact

	inner *Fixed[A]
}

// GenerateFixed draws exactly Size bytes from the system random source.
// If the source fails it returns a RandomSourceError (wrapping
// ErrRandomSource); there is no fallback to weaker randomness and no
// partially-filled result.
func GenerateFixed[A any]() (*FixedRng[A], error) {
	f := newFixed[A]()
	if _, err := rand.Read(f.buf); err != nil {
		wipe(f.buf)
		return nil, newRandomSourceError(err)
	}
	emitGenerate(kindFixed, len(f.buf))
	return &FixedRng[A]{inner: f}, nil
}

// NewFixedRandom generates a fresh value and lowers it immediately,
// for callers who want random bytes but not the freshness type.
func NewFixedRandom[A any]() (*Fixed[A], error) {
	r, err := GenerateFixed[A]()
	if err != nil {
		return nil, err
	}
	return r.Into(), nil
}

func (r *FixedRng[A]) get() *Fixed[A] {
	if r.inner == nil {
		panic("shroud: FixedRng used after Into")
	}
	return r.inner
}

// Expose returns the random bytes for reading. The freshness claim covers
// values that are never written through an exposed view; FixedRng
// deliberately has no ExposeMut.
func (r *FixedRng[A]) Expose() []byte {
	return r.get().Expose()
}

// Size returns the fixed length in bytes. Safe public metadata.
func (r *FixedRng[A]) Size() int {
	return r.get().Size()
}

// Into lowers the fresh value to a plain Fixed, consuming r. Any further
// use of r panics. The returned Fixed owns the bytes; no copy is made.
func (r *FixedRng[A]) Into() *Fixed[A] {
	f := r.get()
	r.inner = nil
	emitTransfer(kindFixed, f.Size())
	return f
}

// Wipe ends the value's life without lowering it. Safe to call after Into,
// in which case it does nothing.
func (r *FixedRng[A]) Wipe() {
	if r.inner != nil {
		r.inner.Wipe()
	}
}

// DynamicRng is the heap-allocated counterpart of FixedRng: a
// variable-length secret constructible only through GenerateDynamic,
// carrying the same type-level freshness claim and the same one-way
// lowering via Into.
type DynamicRng struct {
	noCopy noCopy
	redact

	inner *Dynamic
}

// GenerateDynamic draws exactly n bytes from the system random source.
// A source failure returns a RandomSourceError; n must be non-negative.
func GenerateDynamic(n int) (*DynamicRng, error) {
	if n < 0 {
		panic("shroud: negative length")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		wipe(b)
		return nil, newRandomSourceError(err)
	}
	emitGenerate(kindDynamic, n)
	return &DynamicRng{inner: NewDynamic(b)}, nil
}

// NewDynamicRandom generates n fresh bytes and lowers them immediately,
// for callers who want random bytes but not the freshness type.
func NewDynamicRandom(n int) (*Dynamic, error) {
	r, err := GenerateDynamic(n)
	if err != nil {
		return nil, err
	}
	return r.Into(), nil
}

func (r *DynamicRng) get() *Dynamic {
	if r.inner == nil {
		panic("shroud: DynamicRng used after Into")
	}
	return r.inner
}

// Expose returns the random bytes for reading.
func (r *DynamicRng) Expose() []byte {
	return r.get().Expose()
}

// Len returns the length in bytes. Safe public metadata.
func (r *DynamicRng) Len() int {
	return r.get().Len()
}

// Into lowers the fresh value to a plain Dynamic, consuming r. Any further
// use of r panics.
func (r *DynamicRng) Into() *Dynamic {
	d := r.get()
	r.inner = nil
	emitTransfer(kindDynamic, d.Len())
	return d
}

// Wipe ends the value's life without lowering it. Safe after Into.
func (r *DynamicRng) Wipe() {
	if r.inner != nil {
		r.inner.Wipe()
	}
}
