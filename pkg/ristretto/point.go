package ristretto

import (
	"fmt"
	"hash"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/smallyu/go-ristretto-debug/internal/batch"
	"github.com/smallyu/go-ristretto-debug/pkg/curve"
)

// PointBytes is the size of the canonical compressed point encoding.
const PointBytes = 32

// Point is a ristretto255 group element. The zero value is not a
// usable point; construct points through Group or WrapPoint.
type Point struct {
	v ristretto255.Element
}

var (
	_ curve.Point[Point, Scalar]        = Point{}
	_ curve.UniformGroup[Point, Scalar] = Group{}
)

// WrapPoint adopts a raw ristretto255 element.
func WrapPoint(v *ristretto255.Element) Point {
	return Point{v: *v}
}

// Named is an identity no-op on the plain type.
func (p Point) Named(string) Point { return p }

// Add returns p + q.
func (p Point) Add(q Point) Point {
	var out Point
	out.v.Add(&p.v, &q.v)
	return out
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	var out Point
	out.v.Subtract(&p.v, &q.v)
	return out
}

// Neg returns -p.
func (p Point) Neg() Point {
	var out Point
	out.v.Negate(&p.v)
	return out
}

// Mul returns the scalar multiple s * p.
func (p Point) Mul(s Scalar) Point {
	var out Point
	out.v.ScalarMult(&s.v, &p.v)
	return out
}

// Equal reports whether p and q are the same group element, in
// constant time.
func (p Point) Equal(q Point) bool {
	return p.v.Equal(&q.v) == 1
}

// Compress returns the canonical 32-byte encoding.
func (p Point) Compress() []byte {
	return p.v.Encode(nil)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%x)", p.Compress())
}

// Group constructs ristretto255 points.
type Group struct{}

// Identity returns the neutral element.
func (Group) Identity() Point {
	var p Point
	p.v.Zero()
	return p
}

// Base returns the canonical generator.
func (Group) Base() Point {
	var p Point
	p.v.Base()
	return p
}

// ScalarBaseMult returns s * G using the constant-time fixed-base
// multiply.
func (Group) ScalarBaseMult(s Scalar) Point {
	var p Point
	p.v.ScalarBaseMult(&s.v)
	return p
}

// ScalarMult returns s * p.
func (Group) ScalarMult(s Scalar, p Point) Point {
	return s.MulPoint(p)
}

// Random draws a uniformly distributed point by mapping 64 bytes from
// rng through the uniform encoding.
func (g Group) Random(rng io.Reader) (Point, error) {
	var b [64]byte
	if _, err := io.ReadFull(rng, b[:]); err != nil {
		return Point{}, fmt.Errorf("ristretto: draw point: %w", err)
	}
	return g.FromUniformBytes(&b), nil
}

// FromUniformBytes maps 64 uniform bytes to a uniformly distributed
// point.
func (Group) FromUniformBytes(b *[64]byte) Point {
	var p Point
	p.v.FromUniformBytes(b[:])
	return p
}

// HashToPoint hashes input with a fresh 64-byte digest and maps the
// result to a point.
func (g Group) HashToPoint(newHash func() hash.Hash, input []byte) Point {
	h := newHash()
	h.Write(input)
	return g.FromHash(h)
}

// FromHash maps the 64-byte digest of an already-written hash state.
func (g Group) FromHash(h hash.Hash) Point {
	return g.FromUniformBytes(wideDigest(h))
}

// Sum returns the sum of all points; empty input yields the identity.
func (g Group) Sum(ps []Point) Point {
	acc := g.Identity()
	for _, p := range ps {
		acc = acc.Add(p)
	}
	return acc
}

// VarTimeDoubleScalarBaseMult returns a*A + b*G in variable time.
func (Group) VarTimeDoubleScalarBaseMult(a Scalar, A Point, b Scalar) Point {
	var p Point
	p.v.VarTimeDoubleScalarBaseMult(&a.v, &A.v, &b.v)
	return p
}

// DoubleAndCompressBatch returns the compressed encoding of 2*P for
// every point in the batch.
func (Group) DoubleAndCompressBatch(ps []Point) [][]byte {
	vs := make([]*ristretto255.Element, len(ps))
	for i := range ps {
		vs[i] = &ps[i].v
	}
	return batch.DoubleAndCompress(vs)
}
