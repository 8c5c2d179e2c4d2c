// Package codec owns the type-driven serialization contract.
//
// Ownership boundary:
// - classification of values into primitive / container / custom strategies
// - the recursive encode/decode core over cursor readers
// - the Marshaler/Unmarshaler contract for self-describing types
//
// Classification is decided once per type, cached, and never re-evaluated at
// runtime. Primitive values and container counts are written in host native
// byte order; see the cursor package for the portability caveat.
package codec
