// Package curve generates loxodromes (rhumb lines) on a sphere.
//
// A loxodrome crosses every meridian at the same angle. Parameterised by
// latitude phi, its longitude grows with the inverse Gudermannian:
//
//	lambda = (turns/pi) * ln(tan(phi/2 + pi/4)) + offset
//
// The package is split into:
//
//   - [Params]: sphere radius, ribbon count and winding count
//   - [Generator]: a closed-over curve for one ribbon, t -> point
//   - [Range]: the latitude sampling interval and step
//   - [Sample]: evaluates a generator into a polyline
//
// # Domain
//
// Generators never validate their input. At t = ±pi/2 the logarithm
// diverges and the result is non-finite; callers must keep t strictly inside
// (-pi/2, pi/2). [Range.Validate] enforces that for sampled curves.
//
// # Thread Safety
//
// Generators hold no mutable state and may be evaluated from any number of
// goroutines. [ParallelFor] is used by callers to fan out ribbon sampling.
package curve
