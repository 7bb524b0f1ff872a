// Package ristretto wraps the gtank/ristretto255 arithmetic library in
// the value-style Scalar and Point types the capability interfaces
// expect. These are the plain, production wrappers: no expression
// trees, every method a direct delegation. The shadow package builds
// its instrumented types on top of them.
package ristretto

import (
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/smallyu/go-ristretto-debug/internal/batch"
	"github.com/smallyu/go-ristretto-debug/pkg/curve"
)

// ScalarBytes is the size of the canonical scalar encoding.
const ScalarBytes = 32

// Scalar is an element of the ristretto255 scalar field: integers
// modulo the group order ℓ, with a canonical 32-byte little-endian
// encoding.
type Scalar struct {
	v ristretto255.Scalar
}

var (
	_ curve.Scalar[Scalar]      = Scalar{}
	_ curve.ScalarField[Scalar] = Field{}
)

// WrapScalar adopts a raw ristretto255 scalar.
func WrapScalar(v *ristretto255.Scalar) Scalar {
	return Scalar{v: *v}
}

// Named is an identity no-op on the plain type.
func (s Scalar) Named(string) Scalar { return s }

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	var out Scalar
	out.v.Add(&s.v, &t.v)
	return out
}

// Sub returns s - t.
func (s Scalar) Sub(t Scalar) Scalar {
	var out Scalar
	out.v.Subtract(&s.v, &t.v)
	return out
}

// Mul returns s * t.
func (s Scalar) Mul(t Scalar) Scalar {
	var out Scalar
	out.v.Multiply(&s.v, &t.v)
	return out
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	var out Scalar
	out.v.Negate(&s.v)
	return out
}

// Invert returns s⁻¹. The zero scalar is handed to the library
// unchanged; its exponentiation-based inverse maps zero to zero.
func (s Scalar) Invert() Scalar {
	var out Scalar
	out.v.Invert(&s.v)
	return out
}

// MulPoint returns the scalar multiple s * p.
func (s Scalar) MulPoint(p Point) Point {
	var out Point
	out.v.ScalarMult(&s.v, &p.v)
	return out
}

// Equal reports whether s and t are the same scalar, in constant time.
func (s Scalar) Equal(t Scalar) bool {
	return s.v.Equal(&t.v) == 1
}

// Bytes returns the canonical 32-byte little-endian encoding.
func (s Scalar) Bytes() []byte {
	return s.v.Encode(nil)
}

// Byte returns byte i of the canonical encoding. Out of range panics.
func (s Scalar) Byte(i int) byte {
	return s.v.Encode(nil)[i]
}

func (s Scalar) String() string {
	return fmt.Sprintf("Scalar(%x)", s.Bytes())
}

// Field constructs ristretto255 scalars.
type Field struct{}

// Zero returns the additive identity.
func (Field) Zero() Scalar { return Scalar{} }

// One returns the multiplicative identity.
func (f Field) One() Scalar {
	var b [32]byte
	b[0] = 1
	s, err := f.FromCanonicalBytes(b)
	if err != nil {
		panic("ristretto: canonical one rejected: " + err.Error())
	}
	return s
}

// FromUint64 returns the scalar with the given small value.
func (f Field) FromUint64(x uint64) Scalar {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:8], x)
	s, err := f.FromCanonicalBytes(b)
	if err != nil {
		// Every uint64 is below ℓ ≈ 2²⁵².
		panic("ristretto: uint64 rejected: " + err.Error())
	}
	return s
}

// FromBytesModOrder interprets b as a 256-bit little-endian integer
// and reduces it modulo ℓ.
func (f Field) FromBytesModOrder(b [32]byte) Scalar {
	var wide [64]byte
	copy(wide[:32], b[:])
	return f.FromBytesModOrderWide(&wide)
}

// FromBytesModOrderWide reduces a 512-bit little-endian integer
// modulo ℓ.
func (Field) FromBytesModOrderWide(b *[64]byte) Scalar {
	var s Scalar
	s.v.FromUniformBytes(b[:])
	return s
}

// FromCanonicalBytes decodes a canonical 32-byte encoding. The
// library's decode error for non-canonical bytes passes through
// unchanged.
func (Field) FromCanonicalBytes(b [32]byte) (Scalar, error) {
	var s Scalar
	if err := s.v.Decode(b[:]); err != nil {
		return Scalar{}, err
	}
	return s, nil
}

// Random draws a uniform scalar by wide reduction of 64 bytes from
// rng.
func (f Field) Random(rng io.Reader) (Scalar, error) {
	var b [64]byte
	if _, err := io.ReadFull(rng, b[:]); err != nil {
		return Scalar{}, fmt.Errorf("ristretto: draw scalar: %w", err)
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
	return f.FromBytesModOrderWide(wideDigest(h))
}

// Sum returns the sum of all elements; empty input yields zero.
func (f Field) Sum(xs []Scalar) Scalar {
	acc := f.Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// Product returns the product of all elements; empty input yields one.
func (f Field) Product(xs []Scalar) Scalar {
	acc := f.One()
	for _, x := range xs {
		acc = acc.Mul(x)
	}
	return acc
}

// BatchInvert inverts every element of xs in place and returns the
// inverse of the product of the original elements. All elements must
// be nonzero.
func (Field) BatchInvert(xs []Scalar) Scalar {
	vs := make([]*ristretto255.Scalar, len(xs))
	for i := range xs {
		vs[i] = &xs[i].v
	}
	return WrapScalar(batch.InvertScalars(vs))
}

// wideDigest finalizes h and checks the 64-byte output size contract
// shared by the hash-to-scalar and hash-to-point constructors.
func wideDigest(h hash.Hash) *[64]byte {
	digest := h.Sum(nil)
	if len(digest) != 64 {
		panic(fmt.Sprintf("ristretto: hash produced %d bytes, need 64", len(digest)))
	}
	var b [64]byte
	copy(b[:], digest)
	return &b
}
