// Package brush turns a live stream of pointer samples into evenly spaced
// brush stamps along a smoothed path.
//
// A [Session] handles one pointer-down to pointer-up gesture. Each call to
// [Session.Start], [Session.Move] or [Session.End] draws zero or more stamps
// through a [Renderer] and returns the [Dirty] region which needs to be
// repainted. Stamp spacing is measured in arclength and carried across
// calls, so the result does not depend on how densely the input device
// samples the pointer.
package brush

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
