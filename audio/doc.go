// Package audio wraps the Ebiten audio engine's context, players, and
// stream sources in handle types the ECS plugin attaches to entities. It
// adds no mixing, decoding, or scheduling of its own; everything real-time
// happens on the engine's device side.
package audio
