// Package schnorr implements a Schnorr proof of knowledge of a
// discrete logarithm, written generically against the capability
// interfaces. The same code runs over the plain ristretto255 backend,
// the shadow (expression-tracking) backend and the secp256k1 backend,
// which is exactly the "one generic test, two implementations" posture
// the shadow types exist to serve.
package schnorr

import (
	"fmt"
	"hash"
	"io"

	"github.com/smallyu/go-ristretto-debug/pkg/curve"
)

// Proof is a Schnorr proof of knowledge of x such that X = x*G.
type Proof[P curve.Point[P, S], S curve.Scalar[S]] struct {
	Commitment P // R = k*G for the prover's nonce k
	Response   S // z = k + c*x for the challenge c
}

// Prove generates a proof of knowledge of the secret x. The challenge
// is derived by hashing the compressed public key and commitment with
// the injected 64-byte digest.
func Prove[S curve.Scalar[S], P curve.Point[P, S], F curve.ScalarField[S], G curve.Group[P, S]](
	field F, group G, newHash func() hash.Hash, x S, rng io.Reader,
) (Proof[P, S], error) {
	k, err := field.Random(rng)
	if err != nil {
		return Proof[P, S]{}, fmt.Errorf("schnorr: draw nonce: %w", err)
	}

	R := group.ScalarBaseMult(k)
	X := group.ScalarBaseMult(x)
	c := challenge(field, newHash, X, R)

	return Proof[P, S]{
		Commitment: R,
		Response:   k.Add(c.Mul(x)),
	}, nil
}

// Verify checks the proof against the public key X by testing
// z*G == R + c*X.
func Verify[S curve.Scalar[S], P curve.Point[P, S], F curve.ScalarField[S], G curve.Group[P, S]](
	field F, group G, newHash func() hash.Hash, X P, proof Proof[P, S],
) bool {
	c := challenge(field, newHash, X, proof.Commitment)
	lhs := group.ScalarBaseMult(proof.Response)
	rhs := proof.Commitment.Add(X.Mul(c))
	return lhs.Equal(rhs)
}

// challenge computes c = H(X || R) reduced to a scalar.
func challenge[S curve.Scalar[S], P curve.Point[P, S], F curve.ScalarField[S]](
	field F, newHash func() hash.Hash, X, R P,
) S {
	transcript := append(X.Compress(), R.Compress()...)
	return field.HashToScalar(newHash, transcript)
}
