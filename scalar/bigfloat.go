package scalar

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Float is an arbitrary-precision floating-point implementation of Number
// backed by big.Float. A Float is immutable: every method allocates its
// result and never writes through the receiver. The zero value of Float
// behaves as the number 0 with the default big.Float precision.
type Float struct {
	v *big.Float
}

// NewFloat creates a new Float with prec bits of mantissa precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int or
// *big.Float.
func NewFloat(x interface{}, prec uint) Float {

	v := new(big.Float)
	v.SetPrec(prec)

	switch x := x.(type) {
	case nil:
	case int:
		v.SetInt64(int64(x))
	case int64:
		v.SetInt64(x)
	case uint:
		v.SetUint64(uint64(x))
	case uint64:
		v.SetUint64(x)
	case float64:
		v.SetFloat64(x)
	case *big.Int:
		v.SetInt(x)
	case *big.Float:
		v.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return Float{v: v}
}

// bf returns the backing big.Float, substituting 0 for the zero value of
// Float so that uninitialized scalars behave as the number 0.
func (x Float) bf() *big.Float {
	if x.v == nil {
		return new(big.Float)
	}
	return x.v
}

// Prec returns the mantissa precision of x in bits.
func (x Float) Prec() uint {
	return x.bf().Prec()
}

// Float64 returns the float64 value nearest to x.
func (x Float) Float64() float64 {
	f64, _ := x.bf().Float64()
	return f64
}

// Add returns x + y.
func (x Float) Add(y Float) Float {
	return Float{v: new(big.Float).Add(x.bf(), y.bf())}
}

// Mul returns x * y.
func (x Float) Mul(y Float) Float {
	return Float{v: new(big.Float).Mul(x.bf(), y.bf())}
}

// Neg returns -x.
func (x Float) Neg() Float {
	return Float{v: new(big.Float).Neg(x.bf())}
}

// Quo returns x / y, following big.Float semantics: a zero divisor yields
// ±Inf, and 0/0 panics with big.ErrNaN.
func (x Float) Quo(y Float) Float {
	return Float{v: new(big.Float).Quo(x.bf(), y.bf())}
}

// Equal returns true if x and y represent the same value, regardless of
// precision.
func (x Float) Equal(y Float) bool {
	return x.bf().Cmp(y.bf()) == 0
}

// IsZero returns true if x is 0.
func (x Float) IsZero() bool {
	return x.bf().Sign() == 0
}

// Zero returns 0 with the precision of x.
func (x Float) Zero() Float {
	return Float{v: new(big.Float).SetPrec(x.bf().Prec())}
}

// One returns 1 with the precision of x.
func (x Float) One() Float {
	return Float{v: new(big.Float).SetPrec(x.bf().Prec()).SetInt64(1)}
}

// Pow returns x^y.
func (x Float) Pow(y Float) Float {
	return Float{v: bigfloat.Pow(x.bf(), y.bf())}
}

// Exp returns exp(x).
func (x Float) Exp() Float {
	return Float{v: bigfloat.Exp(x.bf())}
}

// Log returns ln(x).
func (x Float) Log() Float {
	return Float{v: bigfloat.Log(x.bf())}
}

// String returns the decimal representation of x.
func (x Float) String() string {
	return x.bf().String()
}
