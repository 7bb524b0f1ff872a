package shadow

import (
	"crypto/rand"
	"crypto/sha512"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ristretto-debug/pkg/expr"
	"github.com/smallyu/go-ristretto-debug/pkg/ristretto"
)

func randomPoint(t *testing.T) Point {
	t.Helper()
	p, err := Group{}.Random(rand.Reader)
	require.NoError(t, err)
	return p
}

func TestIdentityTree(t *testing.T) {
	g := Group{}

	id := g.Identity()
	assert.Empty(t, cmp.Diff(expr.Tree(expr.One{}), id.Tree()))
	assert.Equal(t, "Point(1)", id.String())

	p := randomPoint(t).Named("p")
	sum := p.Add(id)
	assert.True(t, sum.Equal(p))
	assert.Equal(t, "Point((p + 1))", sum.String())
}

func TestMulOperandOrder(t *testing.T) {
	p := randomPoint(t).Named("x")
	s := randomScalar(t).Named("z")

	// The three call shapes agree numerically but print in the order
	// they were written.
	pointFirst := p.Mul(s)
	scalarFirst := s.MulPoint(p)
	viaGroup := Group{}.ScalarMult(s, p)

	assert.True(t, pointFirst.Equal(scalarFirst))
	assert.True(t, pointFirst.Equal(viaGroup))
	assert.Equal(t, "Point(x * z)", pointFirst.String())
	assert.Equal(t, "Point(z * x)", scalarFirst.String())
	assert.Equal(t, "Point(z * x)", viaGroup.String())
}

func TestPointTreeShapes(t *testing.T) {
	x := randomPoint(t).Named("x")
	y := randomPoint(t).Named("y")
	z := randomScalar(t).Named("z")

	assert.Equal(t, "Point((x + y * z))", x.Add(y.Mul(z)).String())
	assert.Equal(t, "Point((x - y))", x.Sub(y).String())
	assert.Equal(t, "Point(-x)", x.Neg().String())
}

func TestPointNamedOverwrites(t *testing.T) {
	p := randomPoint(t)

	renamed := p.Named("a").Named("b")
	assert.True(t, renamed.Equal(p))
	assert.Empty(t, cmp.Diff(expr.Tree(expr.Name("b")), renamed.Tree()))
}

func TestPointEqualIgnoresProvenance(t *testing.T) {
	p := randomPoint(t).Named("p")
	q := randomPoint(t).Named("q")

	viaAdd := p.Add(q)
	direct := WrapPoint(p.Value().Add(q.Value()))

	assert.True(t, viaAdd.Equal(direct))
	assert.NotEmpty(t, cmp.Diff(viaAdd.Tree(), direct.Tree()))
}

func TestUntrackedConstructors(t *testing.T) {
	g := Group{}
	s := randomScalar(t)

	assert.Equal(t, "Point(?)", g.ScalarBaseMult(s).String())
	assert.Equal(t, "Point(?)", g.HashToPoint(sha512.New, []byte("in")).String())

	a, b := randomScalar(t), randomScalar(t)
	A := randomPoint(t).Named("A")
	combined := g.VarTimeDoubleScalarBaseMult(a, A, b)
	assert.Equal(t, "Point(?)", combined.String())

	// The variable-time combined multiply still agrees numerically
	// with its slow decomposition.
	slow := A.Mul(a).Add(g.ScalarBaseMult(b))
	assert.True(t, combined.Equal(slow))
}

func TestPointSumLosesTrees(t *testing.T) {
	g := Group{}
	ps := []Point{
		randomPoint(t).Named("a"),
		randomPoint(t).Named("b"),
	}

	sum := g.Sum(ps)
	assert.True(t, sum.Equal(ps[0].Add(ps[1])))
	assert.Empty(t, cmp.Diff(expr.Tree(expr.Unnamed{}), sum.Tree()))
	assert.Equal(t, "Point(a)", ps[0].String())
}

func TestDoubleAndCompressBatch(t *testing.T) {
	g := Group{}
	ps := []Point{randomPoint(t).Named("a"), randomPoint(t).Named("b")}

	out := g.DoubleAndCompressBatch(ps)
	require.Len(t, out, 2)
	for i, p := range ps {
		assert.Equal(t, p.Add(p).Compress(), out[i])
	}
	// Encoding does not disturb the inputs' trees.
	assert.Equal(t, "Point(a)", ps[0].String())
}

// TestDistributivity walks the worked diagnosis example: x*z differs
// from x + y*z for independent random points, while the distributive
// identity (x+y)*z == x*z + y*z holds, and both derivations print in
// terms of the named inputs.
func TestDistributivity(t *testing.T) {
	x := randomPoint(t).Named("x")
	y := randomPoint(t).Named("y")
	z := randomScalar(t).Named("z")

	assert.True(t, x.Mul(z).Equal(x.Mul(z)))
	assert.False(t, x.Mul(z).Equal(x.Add(y.Mul(z))))

	lhs := x.Add(y).Mul(z)
	rhs := x.Mul(z).Add(y.Mul(z))
	assert.True(t, lhs.Equal(rhs))
	assert.Equal(t, "Point((x + y) * z)", lhs.String())
	assert.Equal(t, "Point((x * z + y * z))", rhs.String())
}

// TestShadowMatchesPlain drives the same operation sequence through
// the plain and shadow implementations and requires byte-identical
// results at every step.
func TestShadowMatchesPlain(t *testing.T) {
	var seed [64]byte
	_, err := rand.Read(seed[:])
	require.NoError(t, err)

	sg := Group{}
	sf := Field{}
	pg := ristretto.Group{}
	pf := ristretto.Field{}

	sp := sg.FromUniformBytes(&seed)
	pp := pg.FromUniformBytes(&seed)
	ss := sf.FromBytesModOrderWide(&seed)
	ps := pf.FromBytesModOrderWide(&seed)

	assert.Equal(t, pp.Compress(), sp.Compress())
	assert.Equal(t, ps.Bytes(), ss.Bytes())
	assert.Equal(t, pp.Mul(ps).Compress(), sp.Mul(ss).Compress())
	assert.Equal(t, pp.Add(pp).Compress(), sp.Add(sp).Compress())
	assert.Equal(t, pp.Sub(pp.Neg()).Compress(), sp.Sub(sp.Neg()).Compress())
	assert.Equal(t, pg.ScalarBaseMult(ps).Compress(), sg.ScalarBaseMult(ss).Compress())
	assert.Equal(t,
		pg.VarTimeDoubleScalarBaseMult(ps, pp, ps).Compress(),
		sg.VarTimeDoubleScalarBaseMult(ss, sp, ss).Compress())
}
