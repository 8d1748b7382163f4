package shroud

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for secret lifecycle events. Exposure is deliberately silent -
// reading a secret costs nothing - but every lifecycle transition is
// observable. Events carry metadata only (kind, size, encoding, error),
// never secret bytes.
var (
	SignalGenerate       = capitan.NewSignal("shroud.generate", "Secret generated from system randomness")
	SignalWipe           = capitan.NewSignal("shroud.wipe", "Secret memory wiped")
	SignalClone          = capitan.NewSignal("shroud.clone", "Secret duplicated into an independent copy")
	SignalTransfer       = capitan.NewSignal("shroud.transfer", "Secret ownership transferred")
	SignalDecodeRejected = capitan.NewSignal("shroud.decode.rejected", "Encoded secret failed validation")
)

// Keys for typed event data.
var (
	KeyKind     = capitan.NewStringKey("kind")
	KeySize     = capitan.NewIntKey("size")
	KeyEncoding = capitan.NewStringKey("encoding")
	KeyError    = capitan.NewErrorKey("error")
)

// Wrapper kinds reported under KeyKind.
const (
	kindFixed          = "fixed"
	kindDynamic        = "dynamic"
	kindFixedNoClone   = "fixed_noclone"
	kindDynamicNoClone = "dynamic_noclone"
)

// emitGenerate emits an event when fresh random bytes are drawn.
func emitGenerate(kind string, size int) {
	capitan.Emit(context.Background(), SignalGenerate,
		KeyKind.Field(kind),
		KeySize.Field(size),
	)
}

// emitWipe emits an event when a wrapper's memory is zeroized.
func emitWipe(kind string, size int) {
	capitan.Emit(context.Background(), SignalWipe,
		KeyKind.Field(kind),
		KeySize.Field(size),
	)
}

// emitClone emits an event when a secret is duplicated.
func emitClone(kind string, size int) {
	capitan.Emit(context.Background(), SignalClone,
		KeyKind.Field(kind),
		KeySize.Field(size),
	)
}

// emitTransfer emits an event when ownership moves one-way: lowering a
// fresh RNG value or converting to a no-clone wrapper.
func emitTransfer(kind string, size int) {
	capitan.Emit(context.Background(), SignalTransfer,
		KeyKind.Field(kind),
		KeySize.Field(size),
	)
}

// emitDecodeRejected emits an event when encoded input fails validation.
// The rejected input has already been wiped by the time this fires.
func emitDecodeRejected(encoding string, err error) {
	capitan.Error(context.Background(), SignalDecodeRejected,
		KeyEncoding.Field(encoding),
		KeyError.Field(err),
	)
}
