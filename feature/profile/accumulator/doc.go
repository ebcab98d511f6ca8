// Package accumulator keeps the partially assembled profile of every player
// seen in the current session.
//
// A record is created by a primary (login) payload, augmented by storage
// list payloads and removed with CompleteAndEvict once the final
// augmentation has been written. The backing Store is injected, so every
// caller (and every test) owns its state.
package accumulator
