// Package secp256k1 implements the capability interfaces over the
// decred secp256k1 arithmetic library. It is a second plain backend:
// generic code written against the interfaces runs unchanged here,
// which keeps the interfaces honest about being curve-agnostic.
//
// Unlike ristretto255, secp256k1 uses big-endian 32-byte encodings
// (the decred convention) and has no uniform map from bytes to
// points, so Group does not implement UniformGroup.
package secp256k1

import (
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"math/big"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ristretto-debug/pkg/curve"
)

// ScalarBytes is the size of the canonical scalar encoding.
const ScalarBytes = 32

// Scalar is an element of the secp256k1 scalar field: integers modulo
// the group order N, with a canonical 32-byte big-endian encoding.
type Scalar struct {
	s secp.ModNScalar
}

var (
	_ curve.Scalar[Scalar]      = Scalar{}
	_ curve.ScalarField[Scalar] = Field{}
)

// Named is an identity no-op on the plain type.
func (s Scalar) Named(string) Scalar { return s }

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	var out Scalar
	out.s.Add2(&s.s, &t.s)
	return out
}

// Sub returns s - t.
func (s Scalar) Sub(t Scalar) Scalar {
	var neg secp.ModNScalar
	neg.NegateVal(&t.s)
	var out Scalar
	out.s.Add2(&s.s, &neg)
	return out
}

// Mul returns s * t.
func (s Scalar) Mul(t Scalar) Scalar {
	var out Scalar
	out.s.Mul2(&s.s, &t.s)
	return out
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	var out Scalar
	out.s.NegateVal(&s.s)
	return out
}

// Invert returns s⁻¹. The zero scalar maps to zero, matching the
// library.
func (s Scalar) Invert() Scalar {
	var out Scalar
	out.s.InverseValNonConst(&s.s)
	return out
}

// MulPoint returns the scalar multiple s * p.
func (s Scalar) MulPoint(p Point) Point {
	return p.Mul(s)
}

// Equal reports whether s and t are the same scalar, in constant time.
func (s Scalar) Equal(t Scalar) bool {
	return s.s.Equals(&t.s)
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (s Scalar) Bytes() []byte {
	b := s.s.Bytes()
	return b[:]
}

// Byte returns byte i of the canonical encoding. Out of range panics.
func (s Scalar) Byte(i int) byte {
	b := s.s.Bytes()
	return b[i]
}

func (s Scalar) String() string {
	return fmt.Sprintf("Scalar(%x)", s.Bytes())
}

// Field constructs secp256k1 scalars.
type Field struct{}

// Order returns the group order N.
func (Field) Order() *big.Int {
	return new(big.Int).Set(secp.S256().N)
}

// Zero returns the additive identity.
func (Field) Zero() Scalar { return Scalar{} }

// One returns the multiplicative identity.
func (Field) One() Scalar {
	var s Scalar
	s.s.SetInt(1)
	return s
}

// FromUint64 returns the scalar with the given small value.
func (Field) FromUint64(x uint64) Scalar {
	var b [32]byte
	binary.BigEndian.PutUint64(b[24:], x)
	var s Scalar
	s.s.SetBytes(&b)
	return s
}

// FromBytesModOrder interprets b as a 256-bit big-endian integer and
// reduces it modulo N.
func (Field) FromBytesModOrder(b [32]byte) Scalar {
	var s Scalar
	s.s.SetBytes(&b)
	return s
}

// FromBytesModOrderWide reduces a 512-bit big-endian integer modulo
// N.
func (f Field) FromBytesModOrderWide(b *[64]byte) Scalar {
	n := new(big.Int).SetBytes(b[:])
	n.Mod(n, secp.S256().N)

	var reduced [32]byte
	n.FillBytes(reduced[:])
	return f.FromBytesModOrder(reduced)
}

// FromCanonicalBytes decodes a canonical 32-byte big-endian encoding.
// Values at or above N are rejected.
func (Field) FromCanonicalBytes(b [32]byte) (Scalar, error) {
	var s Scalar
	if overflow := s.s.SetBytes(&b); overflow != 0 {
		return Scalar{}, curve.ErrNonCanonicalScalar
	}
	return s, nil
}

// Random draws a uniform scalar by wide reduction of 64 bytes from
// rng.
func (f Field) Random(rng io.Reader) (Scalar, error) {
	var b [64]byte
	if _, err := io.ReadFull(rng, b[:]); err != nil {
		return Scalar{}, fmt.Errorf("secp256k1: draw scalar: %w", err)
	}
	return f.FromBytesModOrderWide(&b), nil
}

// HashToScalar hashes input with a fresh digest and reduces the
// 64-byte result. The digest must produce 64 bytes.
func (f Field) HashToScalar(newHash func() hash.Hash, input []byte) Scalar {
	h := newHash()
	h.Write(input)
	return f.FromHash(h)
}

// FromHash reduces the 64-byte digest of an already-written hash
// state.
func (f Field) FromHash(h hash.Hash) Scalar {
	digest := h.Sum(nil)
	if len(digest) != 64 {
		panic(fmt.Sprintf("secp256k1: hash produced %d bytes, need 64", len(digest)))
	}
	var b [64]byte
	copy(b[:], digest)
	return f.FromBytesModOrderWide(&b)
}

// Sum returns the sum of all elements; empty input yields zero.
func (f Field) Sum(xs []Scalar) Scalar {
	acc := f.Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// Product returns the product of all elements; empty input yields
// one.
func (f Field) Product(xs []Scalar) Scalar {
	acc := f.One()
	for _, x := range xs {
		acc = acc.Mul(x)
	}
	return acc
}

// BatchInvert inverts every element of xs in place with Montgomery's
// trick and returns the inverse of the product of the original
// elements. All elements must be nonzero.
func (f Field) BatchInvert(xs []Scalar) Scalar {
	// prefix[i] holds the product of xs[:i].
	prefix := make([]Scalar, len(xs))
	acc := f.One()
	for i, x := range xs {
		prefix[i] = acc
		acc = acc.Mul(x)
	}

	allInv := acc.Invert()

	inv := allInv
	for i := len(xs) - 1; i >= 0; i-- {
		orig := xs[i]
		xs[i] = inv.Mul(prefix[i])
		inv = inv.Mul(orig)
	}
	return allInv
}
