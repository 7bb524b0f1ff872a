// Package curve defines the capability interfaces shared by the plain
// and shadow (expression-tracking) arithmetic implementations. Generic
// test code is written once against these interfaces and runs
// unchanged over either implementation, and over different curves.
package curve

import (
	"fmt"
	"hash"
	"io"
)

// Named attaches a symbolic name to a value. On shadow types it
// replaces the recorded derivation tree with the given name; on plain
// types it is an identity no-op. It never changes the numeric value,
// and calling it twice keeps only the latest name.
type Named[T any] interface {
	Named(name string) T
}

// Scalar is an element of a curve's scalar field. Implementations are
// immutable: every operation returns a new value and leaves its
// operands untouched.
type Scalar[S any] interface {
	Named[S]
	fmt.Stringer

	// Add returns s + t.
	Add(t S) S

	// Sub returns s - t.
	Sub(t S) S

	// Mul returns s * t.
	Mul(t S) S

	// Neg returns -s.
	Neg() S

	// Invert returns the multiplicative inverse of s. Behavior on the
	// zero scalar is whatever the underlying library defines.
	Invert() S

	// Equal reports whether two scalars hold the same numeric value.
	// The comparison is constant time and ignores any recorded
	// derivation tree.
	Equal(t S) bool

	// Bytes returns the canonical 32-byte encoding.
	Bytes() []byte

	// Byte returns byte i of the canonical encoding. An out-of-range
	// index panics; this is an unchecked precondition, not a
	// recoverable error.
	Byte(i int) byte
}

// Point is an element of the curve group.
type Point[P, S any] interface {
	Named[P]
	fmt.Stringer

	// Add returns p + q.
	Add(q P) P

	// Sub returns p - q.
	Sub(q P) P

	// Neg returns -p.
	Neg() P

	// Mul returns the scalar multiple s * p. Shadow implementations
	// record the operands in receiver-first order, so the printed
	// expression reads the way the call was written.
	Mul(s S) P

	// Equal reports whether two points hold the same group element,
	// in constant time, ignoring any recorded derivation tree.
	Equal(q P) bool

	// Compress returns the fixed-size compressed encoding.
	Compress() []byte
}

// ScalarField constructs scalars. The hash-based constructors take the
// digest as an injected capability; the digest must produce 64 bytes
// (e.g. sha512.New, sha3.New512) and anything else panics.
type ScalarField[S Scalar[S]] interface {
	// Zero returns the additive identity.
	Zero() S

	// One returns the multiplicative identity.
	One() S

	// FromUint64 returns the scalar with the given small value.
	FromUint64(x uint64) S

	// FromBytesModOrder interprets 32 little-endian bytes as an
	// integer and reduces it modulo the group order.
	FromBytesModOrder(b [32]byte) S

	// FromBytesModOrderWide reduces a 64-byte integer modulo the
	// group order, with negligible bias for uniform input.
	FromBytesModOrderWide(b *[64]byte) S

	// FromCanonicalBytes decodes a canonical 32-byte encoding. Bytes
	// that do not encode a reduced scalar yield an error.
	FromCanonicalBytes(b [32]byte) (S, error)

	// Random draws a uniform scalar from the given source, which
	// should be cryptographically secure (e.g. crypto/rand.Reader).
	Random(rng io.Reader) (S, error)

	// HashToScalar hashes input with a fresh digest and reduces the
	// 64-byte result to a scalar.
	HashToScalar(newHash func() hash.Hash, input []byte) S

	// FromHash reduces the digest of an already-written hash state.
	FromHash(h hash.Hash) S

	// Sum returns the sum of all elements; empty input yields zero.
	Sum(xs []S) S

	// Product returns the product of all elements; empty input
	// yields one.
	Product(xs []S) S

	// BatchInvert replaces every element of xs with its inverse,
	// sharing a single field inversion across the batch, and returns
	// the inverse of the product of the original elements. All
	// elements must be nonzero.
	BatchInvert(xs []S) S
}

// Group constructs points and provides the operations that involve
// the fixed base point.
type Group[P Point[P, S], S Scalar[S]] interface {
	// Identity returns the neutral element of the group.
	Identity() P

	// ScalarBaseMult returns s * G for the fixed generator G.
	ScalarBaseMult(s S) P

	// ScalarMult returns s * p.
	ScalarMult(s S, p P) P

	// Random draws a uniformly distributed point.
	Random(rng io.Reader) (P, error)

	// Sum returns the sum of all points; empty input yields the
	// identity.
	Sum(ps []P) P

	// VarTimeDoubleScalarBaseMult returns a*A + b*G using a faster
	// variable-time algorithm. Not constant time; never use it with
	// secret scalars.
	VarTimeDoubleScalarBaseMult(a S, A P, b S) P

	// DoubleAndCompressBatch returns the compressed encoding of 2*P
	// for every point in the batch.
	DoubleAndCompressBatch(ps []P) [][]byte
}

// UniformGroup is a Group whose curve admits a map from uniform bytes
// to uniformly distributed points (and therefore hash-to-point).
// ristretto255 does; short Weierstrass backends need not.
type UniformGroup[P Point[P, S], S Scalar[S]] interface {
	Group[P, S]

	// FromUniformBytes maps 64 uniform bytes to a point.
	FromUniformBytes(b *[64]byte) P

	// HashToPoint hashes input with a fresh 64-byte digest and maps
	// the result to a point.
	HashToPoint(newHash func() hash.Hash, input []byte) P

	// FromHash maps the digest of an already-written hash state.
	FromHash(h hash.Hash) P
}
