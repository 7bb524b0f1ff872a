package secp256k1

import (
	"bytes"
	"fmt"
	"io"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ristretto-debug/pkg/curve"
)

// PointBytes is the size of the compressed point encoding: the SEC1
// compressed form. The identity, which SEC1 leaves out, encodes as 33
// zero bytes to keep the size fixed.
const PointBytes = 33

// Point is a point on the secp256k1 curve in Jacobian coordinates.
// The zero value is the point at infinity (the group identity).
type Point struct {
	p secp.JacobianPoint
}

var (
	_ curve.Point[Point, Scalar] = Point{}
	_ curve.Group[Point, Scalar] = Group{}
)

// isInfinity follows the decred convention for the point at infinity.
func (p Point) isInfinity() bool {
	return (p.p.X.IsZero() && p.p.Y.IsZero()) || p.p.Z.IsZero()
}

// Named is an identity no-op on the plain type.
func (p Point) Named(string) Point { return p }

// Add returns p + q.
func (p Point) Add(q Point) Point {
	var out Point
	secp.AddNonConst(&p.p, &q.p, &out.p)
	return out
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Point) Neg() Point {
	if p.isInfinity() {
		return Point{}
	}
	var out Point
	out.p.Set(&p.p)
	out.p.ToAffine()
	out.p.Y.Negate(1).Normalize()
	return out
}

// Mul returns the scalar multiple s * p.
func (p Point) Mul(s Scalar) Point {
	var out Point
	secp.ScalarMultNonConst(&s.s, &p.p, &out.p)
	return out
}

// Equal reports whether p and q are the same group element. Jacobian
// coordinates are not unique, so the comparison goes through the
// compressed encoding.
func (p Point) Equal(q Point) bool {
	return bytes.Equal(p.Compress(), q.Compress())
}

// Compress returns the 33-byte SEC1 compressed encoding, or 33 zero
// bytes for the identity.
func (p Point) Compress() []byte {
	if p.isInfinity() {
		return make([]byte, PointBytes)
	}
	a := p.p
	a.ToAffine()
	return secp.NewPublicKey(&a.X, &a.Y).SerializeCompressed()
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%x)", p.Compress())
}

// Group constructs secp256k1 points.
type Group struct{}

// Identity returns the point at infinity.
func (Group) Identity() Point { return Point{} }

// Base returns the generator G.
func (g Group) Base() Point {
	return g.ScalarBaseMult(Field{}.One())
}

// ScalarBaseMult returns s * G.
func (Group) ScalarBaseMult(s Scalar) Point {
	var out Point
	secp.ScalarBaseMultNonConst(&s.s, &out.p)
	return out
}

// ScalarMult returns s * p.
func (Group) ScalarMult(s Scalar, p Point) Point {
	return p.Mul(s)
}

// Random draws a uniformly distributed point as r*G for a uniform
// scalar r.
func (g Group) Random(rng io.Reader) (Point, error) {
	r, err := Field{}.Random(rng)
	if err != nil {
		return Point{}, err
	}
	return g.ScalarBaseMult(r), nil
}

// Sum returns the sum of all points; empty input yields the identity.
func (g Group) Sum(ps []Point) Point {
	acc := g.Identity()
	for _, p := range ps {
		acc = acc.Add(p)
	}
	return acc
}

// VarTimeDoubleScalarBaseMult returns a*A + b*G. The library has no
// combined primitive for this curve, so it is composed from two
// variable-time multiplications and an add.
func (g Group) VarTimeDoubleScalarBaseMult(a Scalar, A Point, b Scalar) Point {
	return A.Mul(a).Add(g.ScalarBaseMult(b))
}

// DoubleAndCompressBatch returns the compressed encoding of 2*P for
// every point in the batch.
func (Group) DoubleAndCompressBatch(ps []Point) [][]byte {
	out := make([][]byte, len(ps))
	for i := range ps {
		var d Point
		secp.DoubleNonConst(&ps[i].p, &d.p)
		out[i] = d.Compress()
	}
	return out
}
