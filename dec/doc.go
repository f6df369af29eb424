// Package dec converts loosely typed values into the numeric
// representations used across the module.
//
//   - [Float]:      any numeric kind or numeric string to float64
//   - [Big]:        same inputs to an arbitrary-precision big.Float;
//     decimal strings are parsed directly at the requested
//     precision, without a float64 round-trip
//   - [FloatSlice]: slice form of [Float]
//   - [BigSlice]:   slice form of [Big]
//
// Accepting values this way keeps exact decimal inputs such as "0.1"
// from drifting through a binary float64 representation before they
// reach high-precision code paths.
package dec
