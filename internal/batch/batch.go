// Package batch implements the batched ristretto255 operations shared
// by the plain and shadow wrappers, so the two cannot drift apart
// numerically.
package batch

import "github.com/gtank/ristretto255"

func one() *ristretto255.Scalar {
	var b [32]byte
	b[0] = 1
	s := ristretto255.NewScalar()
	if err := s.Decode(b[:]); err != nil {
		panic("batch: decode canonical one: " + err.Error())
	}
	return s
}

// InvertScalars replaces every element of xs with its multiplicative
// inverse using Montgomery's trick (a single field inversion for the
// whole batch) and returns the inverse of the product of the original
// elements. All inputs must be nonzero; a zero input is a contract
// violation by the caller.
func InvertScalars(xs []*ristretto255.Scalar) *ristretto255.Scalar {
	// prefix[i] holds the product of xs[:i].
	prefix := make([]*ristretto255.Scalar, len(xs))
	acc := one()
	for i, x := range xs {
		prefix[i] = acc
		acc = ristretto255.NewScalar().Multiply(acc, x)
	}

	allInv := ristretto255.NewScalar().Invert(acc)

	// Walk backwards: inv holds the inverse of the product of
	// xs[:i+1], so inv * prefix[i] is the inverse of xs[i] alone.
	inv := *allInv
	for i := len(xs) - 1; i >= 0; i-- {
		orig := *xs[i]
		xs[i].Multiply(&inv, prefix[i])
		inv = *ristretto255.NewScalar().Multiply(&inv, &orig)
	}
	return allInv
}

// DoubleAndCompress returns the canonical encoding of 2*P for every
// point in the batch.
func DoubleAndCompress(ps []*ristretto255.Element) [][]byte {
	out := make([][]byte, len(ps))
	d := ristretto255.NewElement()
	for i, p := range ps {
		d.Add(p, p)
		out[i] = d.Encode(nil)
	}
	return out
}
