package simplemath

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
//
//nolint:staticcheck // message is part of the public contract
var ErrDivisionByZero = errors.New("Division by zero is not allowed.")

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b.
// It returns ErrDivisionByZero when b is zero, never an infinity or NaN in
// its place.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// ============================================================================
// Generic numeric inputs
// ============================================================================

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// AddOf converts a and b to float64 and adds them.
func AddOf[T Number](a, b T) float64 {
	return Add(float64(a), float64(b))
}

// SubtractOf converts a and b to float64 and subtracts b from a.
func SubtractOf[T Number](a, b T) float64 {
	return Subtract(float64(a), float64(b))
}

// MultiplyOf converts a and b to float64 and multiplies them.
func MultiplyOf[T Number](a, b T) float64 {
	return Multiply(float64(a), float64(b))
}

// DivideOf converts a and b to float64 and divides a by b.
// Integer inputs are not truncated: DivideOf(7, 2) is 3.5.
func DivideOf[T Number](a, b T) (float64, error) {
	return Divide(float64(a), float64(b))
}
