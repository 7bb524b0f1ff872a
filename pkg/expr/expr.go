// Package expr provides symbolic expression trees describing how a
// scalar or curve point was computed. The shadow value types pair each
// numeric result with one of these trees so that a failed comparison in
// a test can be explained in terms of the original named inputs.
package expr

import "fmt"

// Tree is a symbolic derivation: which named inputs, constants and
// operators produced a value. Trees are finite and acyclic by
// construction and immutable once built; arithmetic builds new parent
// nodes around operand trees and never modifies them.
//
// Equality of shadow values never consults trees, only the paired
// numeric value.
type Tree interface {
	fmt.Stringer

	// isTree restricts the set of variants to this package.
	isTree()
}

// Zero is the additive identity constant.
type Zero struct{}

// One is the multiplicative identity constant. Group identities reuse
// this tag: each value type has a single identity concept.
type One struct{}

// Unnamed marks a value with no symbolic identity, e.g. one drawn at
// random, decoded from bytes, or produced by an aggregate that lost
// its trail.
type Unnamed struct{}

// Name is a leaf carrying a caller-supplied label.
type Name string

// Add is the sum of two subexpressions.
type Add struct{ L, R Tree }

// Sub is the difference of two subexpressions.
type Sub struct{ L, R Tree }

// Mul is the product of two subexpressions. It is used for both
// scalar*scalar and scalar*point products, with operands kept in the
// order the source expression wrote them.
type Mul struct{ L, R Tree }

// Inv is the multiplicative inverse of a subexpression.
type Inv struct{ X Tree }

// Neg is the additive inverse of a subexpression.
type Neg struct{ X Tree }

func (Zero) isTree()    {}
func (One) isTree()     {}
func (Unnamed) isTree() {}
func (Name) isTree()    {}
func (Add) isTree()     {}
func (Sub) isTree()     {}
func (Mul) isTree()     {}
func (Inv) isTree()     {}
func (Neg) isTree()     {}

func (Zero) String() string    { return "0" }
func (One) String() string     { return "1" }
func (Unnamed) String() string { return "?" }
func (n Name) String() string  { return string(n) }

// Binary nodes parenthesize fully except for Mul, so that rendered
// sums stay unambiguous while products read the way they were written.
func (a Add) String() string { return fmt.Sprintf("(%s + %s)", a.L, a.R) }
func (s Sub) String() string { return fmt.Sprintf("(%s - %s)", s.L, s.R) }
func (m Mul) String() string { return fmt.Sprintf("%s * %s", m.L, m.R) }

// Inv renders as a postfix superscript, Neg as a prefix minus.
func (i Inv) String() string { return fmt.Sprintf("%s⁻¹", i.X) }
func (n Neg) String() string { return fmt.Sprintf("-%s", n.X) }
