package ristretto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// orderBytes is the group order ℓ = 2^252 + 27742317777372353535851937790883648493
// in little-endian form. It is the smallest non-canonical encoding.
var orderBytes = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

func randomScalar(t *testing.T) Scalar {
	t.Helper()
	s, err := Field{}.Random(rand.Reader)
	require.NoError(t, err)
	return s
}

func TestIdentityLaws(t *testing.T) {
	f := Field{}
	s := randomScalar(t)

	assert.True(t, s.Add(f.Zero()).Equal(s))
	assert.True(t, s.Mul(f.One()).Equal(s))
	assert.True(t, s.Sub(s).Equal(f.Zero()))
	assert.True(t, f.One().Add(f.One()).Equal(f.FromUint64(2)))
}

func TestInvolutions(t *testing.T) {
	s := randomScalar(t)

	assert.True(t, s.Neg().Neg().Equal(s))
	assert.True(t, s.Invert().Invert().Equal(s))
	assert.True(t, s.Mul(s.Invert()).Equal(Field{}.One()))
}

func TestFromUint64(t *testing.T) {
	f := Field{}

	five := f.FromUint64(5)
	sum := f.Zero()
	for i := 0; i < 5; i++ {
		sum = sum.Add(f.One())
	}
	assert.True(t, five.Equal(sum))

	// Little-endian canonical encoding.
	assert.Equal(t, byte(5), five.Byte(0))
	assert.Equal(t, byte(0), five.Byte(31))
}

func TestByteIndexOutOfRange(t *testing.T) {
	s := Field{}.One()
	assert.Equal(t, s.Bytes()[0], s.Byte(0))
	assert.Panics(t, func() { s.Byte(ScalarBytes) })
	assert.Panics(t, func() { s.Byte(-1) })
}

func TestCanonicalRoundTrip(t *testing.T) {
	f := Field{}
	s := randomScalar(t)

	var b [32]byte
	copy(b[:], s.Bytes())
	back, err := f.FromCanonicalBytes(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(s))
}

func TestNonCanonicalBytesRejected(t *testing.T) {
	f := Field{}

	// The order itself is out of range.
	_, err := f.FromCanonicalBytes(orderBytes)
	assert.Error(t, err)

	// So is all-0xff.
	var ff [32]byte
	for i := range ff {
		ff[i] = 0xff
	}
	_, err = f.FromCanonicalBytes(ff)
	assert.Error(t, err)

	// FromBytesModOrder accepts the same bytes by reducing them:
	// ℓ mod ℓ = 0.
	assert.True(t, f.FromBytesModOrder(orderBytes).Equal(f.Zero()))
}

// TestAgainstEdwards25519 cross-checks the wide reduction and the
// field arithmetic against filippo.io/edwards25519, an independent
// implementation of the same scalar field.
func TestAgainstEdwards25519(t *testing.T) {
	f := Field{}

	for i := 0; i < 32; i++ {
		var wide [64]byte
		_, err := rand.Read(wide[:])
		require.NoError(t, err)

		ours := f.FromBytesModOrderWide(&wide)
		theirs, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
		require.NoError(t, err)
		assert.Equal(t, theirs.Bytes(), ours.Bytes())
	}

	a, b := randomScalar(t), randomScalar(t)
	ea, err := edwards25519.NewScalar().SetCanonicalBytes(a.Bytes())
	require.NoError(t, err)
	eb, err := edwards25519.NewScalar().SetCanonicalBytes(b.Bytes())
	require.NoError(t, err)

	assert.Equal(t, edwards25519.NewScalar().Add(ea, eb).Bytes(), a.Add(b).Bytes())
	assert.Equal(t, edwards25519.NewScalar().Subtract(ea, eb).Bytes(), a.Sub(b).Bytes())
	assert.Equal(t, edwards25519.NewScalar().Multiply(ea, eb).Bytes(), a.Mul(b).Bytes())
	assert.Equal(t, edwards25519.NewScalar().Negate(ea).Bytes(), a.Neg().Bytes())
	assert.Equal(t, edwards25519.NewScalar().Invert(ea).Bytes(), a.Invert().Bytes())
}

func TestSumAndProduct(t *testing.T) {
	f := Field{}
	xs := []Scalar{f.FromUint64(2), f.FromUint64(3), f.FromUint64(4)}

	assert.True(t, f.Sum(xs).Equal(f.FromUint64(9)))
	assert.True(t, f.Product(xs).Equal(f.FromUint64(24)))
	assert.True(t, f.Sum(nil).Equal(f.Zero()))
	assert.True(t, f.Product(nil).Equal(f.One()))
}

func TestBatchInvert(t *testing.T) {
	f := Field{}
	xs := make([]Scalar, 6)
	orig := make([]Scalar, 6)
	for i := range xs {
		xs[i] = randomScalar(t)
		orig[i] = xs[i]
	}

	ret := f.BatchInvert(xs)

	for i := range xs {
		assert.True(t, xs[i].Equal(orig[i].Invert()), "element %d", i)
	}
	// ret * ∏(original) == 1
	assert.True(t, ret.Mul(f.Product(orig)).Equal(f.One()))
}

func TestRandomIsReducedAndFresh(t *testing.T) {
	f := Field{}
	a := randomScalar(t)
	b := randomScalar(t)
	assert.False(t, a.Equal(b))

	var buf [32]byte
	copy(buf[:], a.Bytes())
	_, err := f.FromCanonicalBytes(buf)
	assert.NoError(t, err)
}

func TestHashToScalar(t *testing.T) {
	f := Field{}
	input := []byte("transcript")

	s1 := f.HashToScalar(sha512.New, input)
	s2 := f.HashToScalar(sha512.New, input)
	assert.True(t, s1.Equal(s2))

	// FromHash over the same state agrees with HashToScalar.
	h := sha512.New()
	h.Write(input)
	assert.True(t, f.FromHash(h).Equal(s1))

	// A different 64-byte digest gives a different scalar.
	s3 := f.HashToScalar(sha3.New512, input)
	assert.False(t, s3.Equal(s1))

	// Digests that are not 64 bytes are API misuse.
	assert.Panics(t, func() { f.HashToScalar(sha256.New, input) })
}

func TestWrapScalarRoundTrip(t *testing.T) {
	s := randomScalar(t)
	wrapped := WrapScalar(&s.v)
	assert.True(t, wrapped.Equal(s))
	assert.Contains(t, wrapped.String(), "Scalar(")
}
