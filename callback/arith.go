package callback

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Number is the set of numeric types the arithmetic helpers accept.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Addable is any type supporting the + operator.
type Addable interface {
	Number | ~string
}

// Add returns a + b. For strings this is concatenation.
func Add[T Addable](a, b T) T { return a + b }

// AddDecimal returns the exact decimal sum of a and b.
func AddDecimal(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

// IsEven reports whether n is divisible by two.
func IsEven(n int) bool { return n%2 == 0 }

// SumAsText returns the base-10 text of a + b.
func SumAsText(a, b int) string { return strconv.Itoa(a + b) }
