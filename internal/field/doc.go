// Package field implements the interactive constellation background: a fixed
// set of drifting particles that are pushed away by the pointer, spring back
// to their rest positions, and are joined by fading lines when close.
//
//   - [Field]: owns particles, pointer state and viewport
//   - [Surface]: drawing target implemented by each renderer
//   - [Source]: random source used when (re)generating particles
//
// # Example
//
//	f := field.New(field.Viewport{Width: 800, Height: 600}, rand.New(rand.NewSource(1)))
//	f.OnPointerMove(400, 300)
//	f.Tick(surface)
//
// # Thread Safety
//
// Field is NOT safe for concurrent use. Hosts call Tick and the pointer and
// resize handlers from a single goroutine.
package field
