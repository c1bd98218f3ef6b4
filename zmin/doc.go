// Package zmin implements a multi-strategy JSON minifier and validator.
//
// Minification removes insignificant whitespace (space, tab, newline,
// carriage return) outside string literals and copies everything else
// byte-exact. No value tree is ever built; the engine only rewrites text.
//
// # Modes
//
// Three processing modes trade throughput against memory:
//
//	Eco   (0)  incremental emission, bounded auxiliary memory
//	Sport (1)  single pass with one up-front output allocation (default)
//	Turbo (2)  chunked parallel processing for large inputs
//
// All modes produce byte-identical output for the same valid input; they
// differ only in speed and peak memory.
//
//	out, err := zmin.Minify([]byte(`{ "a" : [1, 2,  3] }`), zmin.Sport)
//	// out == []byte(`{"a":[1,2,3]}`)
//
// # Validation
//
// Valid performs a single-pass grammar check without allocating any output:
//
//	ok := zmin.Valid(data)
//
// # Errors
//
// Failures are reported as errors carrying stable integer codes (see
// CodeFor) so they can cross a C boundary unchanged: invalid JSON, invalid
// mode, out of memory, and nesting too deep. Syntax errors report the byte
// offset of the earliest violation.
package zmin
