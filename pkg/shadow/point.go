package shadow

import (
	"fmt"
	"hash"
	"io"

	"github.com/smallyu/go-ristretto-debug/pkg/curve"
	"github.com/smallyu/go-ristretto-debug/pkg/expr"
	"github.com/smallyu/go-ristretto-debug/pkg/ristretto"
)

// Point pairs a ristretto255 group element with the expression tree
// that produced it. The zero value is not a usable point; construct
// points through Group or WrapPoint.
type Point struct {
	v    ristretto.Point
	tree expr.Tree
}

var (
	_ curve.Point[Point, Scalar]        = Point{}
	_ curve.UniformGroup[Point, Scalar] = Group{}
)

// WrapPoint adopts a plain point with no recorded provenance.
func WrapPoint(v ristretto.Point) Point {
	return Point{v: v, tree: expr.Unnamed{}}
}

// Value returns the underlying plain point.
func (p Point) Value() ristretto.Point { return p.v }

// Tree returns the recorded derivation.
func (p Point) Tree() expr.Tree {
	if p.tree == nil {
		return expr.Unnamed{}
	}
	return p.tree
}

// Named replaces the derivation tree with the given name. The group
// element is untouched, and a second call overwrites the first.
func (p Point) Named(name string) Point {
	return Point{v: p.v, tree: expr.Name(name)}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{v: p.v.Add(q.v), tree: expr.Add{L: p.Tree(), R: q.Tree()}}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{v: p.v.Sub(q.v), tree: expr.Sub{L: p.Tree(), R: q.Tree()}}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{v: p.v.Neg(), tree: expr.Neg{X: p.Tree()}}
}

// Mul returns the scalar multiple s * p. The tree records the
// operands in call order, point first, so p.Mul(s) and s.MulPoint(p)
// print differently even though they compute the same element.
func (p Point) Mul(s Scalar) Point {
	return Point{v: p.v.Mul(s.v), tree: expr.Mul{L: p.Tree(), R: s.Tree()}}
}

// Equal reports whether p and q hold the same group element, in
// constant time, ignoring trees.
func (p Point) Equal(q Point) bool {
	return p.v.Equal(q.v)
}

// Compress returns the canonical 32-byte encoding.
func (p Point) Compress() []byte { return p.v.Compress() }

// String renders the derivation tree, not the group element.
func (p Point) String() string {
	return fmt.Sprintf("Point(%s)", p.Tree())
}

// Group constructs shadow points.
type Group struct{}

// Identity returns the neutral element. Its tree is One: the group
// has a single identity concept, and it reuses the multiplicative
// identity tag.
func (Group) Identity() Point {
	return Point{v: group.Identity(), tree: expr.One{}}
}

// ScalarBaseMult returns s * G. The base point itself is not tracked
// symbolically, so the result is Unnamed until the caller names it.
func (Group) ScalarBaseMult(s Scalar) Point {
	return WrapPoint(group.ScalarBaseMult(s.v))
}

// ScalarMult returns s * p with the tree recording scalar-first
// operand order.
func (Group) ScalarMult(s Scalar, p Point) Point {
	return s.MulPoint(p)
}

// Random draws a uniformly distributed point.
func (Group) Random(rng io.Reader) (Point, error) {
	v, err := group.Random(rng)
	if err != nil {
		return Point{}, err
	}
	return WrapPoint(v), nil
}

// FromUniformBytes maps 64 uniform bytes to a point.
func (Group) FromUniformBytes(b *[64]byte) Point {
	return WrapPoint(group.FromUniformBytes(b))
}

// HashToPoint hashes input with a fresh 64-byte digest and maps the
// result to a point.
func (Group) HashToPoint(newHash func() hash.Hash, input []byte) Point {
	return WrapPoint(group.HashToPoint(newHash, input))
}

// FromHash maps the digest of an already-written hash state.
func (Group) FromHash(h hash.Hash) Point {
	return WrapPoint(group.FromHash(h))
}

// Sum folds the values; the symbolic trail of the aggregate is lost
// and the result is Unnamed.
func (Group) Sum(ps []Point) Point {
	return WrapPoint(group.Sum(pointValues(ps)))
}

// VarTimeDoubleScalarBaseMult returns a*A + b*G in variable time.
// The combined operation is a performance escape hatch and is not
// decomposed into Add and Mul nodes; the result is Unnamed.
func (Group) VarTimeDoubleScalarBaseMult(a Scalar, A Point, b Scalar) Point {
	return WrapPoint(group.VarTimeDoubleScalarBaseMult(a.v, A.v, b.v))
}

// DoubleAndCompressBatch returns the compressed encoding of 2*P for
// every point in the batch. No trees propagate through encoding.
func (Group) DoubleAndCompressBatch(ps []Point) [][]byte {
	return group.DoubleAndCompressBatch(pointValues(ps))
}

func pointValues(ps []Point) []ristretto.Point {
	vs := make([]ristretto.Point, len(ps))
	for i := range ps {
		vs[i] = ps[i].v
	}
	return vs
}
