// Package compression implements the run-length stage of the pixpack codec.
//
// Raster images, especially synthetic ones or ones run through the predictive
// model, tend to contain long stretches of a single value. Those are collapsed
// here before the entropy coder sees them.
//
// The scheme used, RLE3 below, never needs an escape byte. A run of N copies of
// a byte B is written as follows:
//
//   - N < 3: B is written N times, as-is.
//   - N >= 3: B is written exactly three times, followed by an unsigned byte
//     holding how many *additional* times B occurred, i.e. N - 3.
//
// For example:
//
//	WXXXXXXXXXXXXXXXYZZ
//	W XXX 12 Y ZZ
//
// One token covers at most 3 + 255 = 258 bytes. Longer runs are cut into
// 258-byte tokens followed by whatever is left, which is encoded as its own
// token using the same rules. A run of 259 "X" is thus `XXX 255 X`.
//
// Unlike the BMP-style RLE8 where a doubled byte is the escape, runs of exactly
// two cost nothing extra. The price is that three equal bytes always cost four.
package compression
