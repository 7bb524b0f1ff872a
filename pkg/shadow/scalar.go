// Package shadow provides expression-tracking variants of the
// ristretto255 Scalar and Point wrappers. A shadow value carries both
// the real numeric value and a symbolic tree describing how it was
// derived, so a test that compares two values can print the two
// derivations when they disagree.
//
// The numeric half delegates every operation to the plain ristretto
// package, so the shadow types can never diverge numerically from the
// production types. The tree half is updated in lockstep: each
// operation pairs the delegated result with a fresh node built from
// the operand trees. Trees never influence equality, hashing or
// encoding.
package shadow

import (
	"fmt"
	"hash"
	"io"

	"github.com/smallyu/go-ristretto-debug/pkg/curve"
	"github.com/smallyu/go-ristretto-debug/pkg/expr"
	"github.com/smallyu/go-ristretto-debug/pkg/ristretto"
)

var (
	field ristretto.Field
	group ristretto.Group
)

// Scalar pairs a ristretto255 scalar with the expression tree that
// produced it. The zero value behaves as the zero scalar.
type Scalar struct {
	v    ristretto.Scalar
	tree expr.Tree
}

var (
	_ curve.Scalar[Scalar]      = Scalar{}
	_ curve.ScalarField[Scalar] = Field{}
)

// Wrap adopts a plain scalar with no recorded provenance.
func Wrap(v ristretto.Scalar) Scalar {
	return Scalar{v: v, tree: expr.Unnamed{}}
}

// Value returns the underlying plain scalar.
func (s Scalar) Value() ristretto.Scalar { return s.v }

// Tree returns the recorded derivation.
func (s Scalar) Tree() expr.Tree {
	if s.tree == nil {
		return expr.Zero{}
	}
	return s.tree
}

// Named replaces the derivation tree with the given name. The numeric
// value is untouched, and a second call overwrites the first.
func (s Scalar) Named(name string) Scalar {
	return Scalar{v: s.v, tree: expr.Name(name)}
}

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	return Scalar{v: s.v.Add(t.v), tree: expr.Add{L: s.Tree(), R: t.Tree()}}
}

// Sub returns s - t.
func (s Scalar) Sub(t Scalar) Scalar {
	return Scalar{v: s.v.Sub(t.v), tree: expr.Sub{L: s.Tree(), R: t.Tree()}}
}

// Mul returns s * t.
func (s Scalar) Mul(t Scalar) Scalar {
	return Scalar{v: s.v.Mul(t.v), tree: expr.Mul{L: s.Tree(), R: t.Tree()}}
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	return Scalar{v: s.v.Neg(), tree: expr.Neg{X: s.Tree()}}
}

// Invert returns s⁻¹.
func (s Scalar) Invert() Scalar {
	return Scalar{v: s.v.Invert(), tree: expr.Inv{X: s.Tree()}}
}

// MulPoint returns s * p. The tree records the operands in call
// order, scalar first.
func (s Scalar) MulPoint(p Point) Point {
	return Point{v: s.v.MulPoint(p.v), tree: expr.Mul{L: s.Tree(), R: p.Tree()}}
}

// Equal reports whether s and t hold the same numeric value, in
// constant time. Two scalars derived along different symbolic paths
// compare equal whenever their values agree.
func (s Scalar) Equal(t Scalar) bool {
	return s.v.Equal(t.v)
}

// Bytes returns the canonical 32-byte little-endian encoding.
func (s Scalar) Bytes() []byte { return s.v.Bytes() }

// Byte returns byte i of the canonical encoding. Out of range panics.
func (s Scalar) Byte(i int) byte { return s.v.Byte(i) }

// String renders the derivation tree, not the numeric value.
func (s Scalar) String() string {
	return fmt.Sprintf("Scalar(%s)", s.Tree())
}

// Field constructs shadow scalars.
type Field struct{}

// Zero returns the additive identity, tagged with the Zero tree.
func (Field) Zero() Scalar {
	return Scalar{v: field.Zero(), tree: expr.Zero{}}
}

// One returns the multiplicative identity, tagged with the One tree.
func (Field) One() Scalar {
	return Scalar{v: field.One(), tree: expr.One{}}
}

// FromUint64 returns the scalar with the given small value. Its
// provenance is unknown, so the tree is Unnamed.
func (Field) FromUint64(x uint64) Scalar {
	return Wrap(field.FromUint64(x))
}

// FromBytesModOrder reduces 32 little-endian bytes modulo ℓ.
func (Field) FromBytesModOrder(b [32]byte) Scalar {
	return Wrap(field.FromBytesModOrder(b))
}

// FromBytesModOrderWide reduces 64 little-endian bytes modulo ℓ.
func (Field) FromBytesModOrderWide(b *[64]byte) Scalar {
	return Wrap(field.FromBytesModOrderWide(b))
}

// FromCanonicalBytes decodes a canonical 32-byte encoding.
func (Field) FromCanonicalBytes(b [32]byte) (Scalar, error) {
	v, err := field.FromCanonicalBytes(b)
	if err != nil {
		return Scalar{}, err
	}
	return Wrap(v), nil
}

// Random draws a uniform scalar. Random draws have no symbolic
// identity until the caller names them.
func (Field) Random(rng io.Reader) (Scalar, error) {
	v, err := field.Random(rng)
	if err != nil {
		return Scalar{}, err
	}
	return Wrap(v), nil
}

// HashToScalar hashes input with a fresh 64-byte digest and reduces
// the result.
func (Field) HashToScalar(newHash func() hash.Hash, input []byte) Scalar {
	return Wrap(field.HashToScalar(newHash, input))
}

// FromHash reduces the digest of an already-written hash state.
func (Field) FromHash(h hash.Hash) Scalar {
	return Wrap(field.FromHash(h))
}

// Sum folds the values; the symbolic trail of the aggregate is lost
// and the result is Unnamed. This is a documented limitation, not a
// defect.
func (Field) Sum(xs []Scalar) Scalar {
	return Wrap(field.Sum(values(xs)))
}

// Product folds the values; like Sum, the result is Unnamed.
func (Field) Product(xs []Scalar) Scalar {
	return Wrap(field.Product(values(xs)))
}

// BatchInvert inverts every element of xs in place and returns the
// inverse of the product of the original elements.
//
// Only the numeric values are updated: unlike the single-element
// Invert, the per-element trees are NOT wrapped in Inv nodes and keep
// their pre-inversion shape. The asymmetry is preserved from the
// reference behavior; see the package tests, which pin it down
// explicitly.
func (Field) BatchInvert(xs []Scalar) Scalar {
	vs := values(xs)
	ret := field.BatchInvert(vs)
	for i := range xs {
		xs[i].v = vs[i]
	}
	return Wrap(ret)
}

func values(xs []Scalar) []ristretto.Scalar {
	vs := make([]ristretto.Scalar, len(xs))
	for i := range xs {
		vs[i] = xs[i].v
	}
	return vs
}
