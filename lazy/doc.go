// Package lazy provides a lazily generated, single-traversal sequence.
//
// A Lazy[T] holds values that are already realized plus a queue of
// deferred producers ("thunks"). A thunk runs only when Next reaches it,
// and may append further values or further thunks to the sequence it is
// attached to — including a continuation of itself, which is how
// unbounded candidate spaces stay cheap: only the prefix a consumer
// actually pulls is ever computed.
//
// The sequence is consumed strictly front-to-back, exactly once. There is
// no rewind, no peek, and no thunk runs twice. Once both the realized
// buffer and the thunk queue are empty, the sequence is permanently empty.
//
// PushMap and PushMapEnv are the workhorses for composing sequences:
// they append a per-element transformation of another Lazy, realizing one
// element per pull. PushMapEnv additionally threads an owned, mutable
// environment through the steps.
package lazy
