/*
Package simplemath provides the four elementary arithmetic operations as
standalone pure functions over float64.

# Overview

Each operation takes two operands and returns a freshly computed float64.
There is no state, so every function is safe to call from any number of
goroutines without coordination.

	simplemath.Add(1, 2)      // 3
	simplemath.Subtract(5, 3) // 2
	simplemath.Multiply(2, 4) // 8

	q, err := simplemath.Divide(10, 2) // 5, nil

# Division by zero

Divide is the only operation that can fail. A zero divisor (including
negative zero) returns ErrDivisionByZero instead of an infinity or NaN:

	if _, err := simplemath.Divide(1, 0); errors.Is(err, simplemath.ErrDivisionByZero) {
	    // handle it
	}

# Other numeric types

The *Of variants accept any integer or floating-point type and always
return float64. Operands are converted before the operation is applied, so
integer inputs never overflow or truncate:

	simplemath.AddOf(1, 2)               // 3 (float64)
	simplemath.DivideOf(int64(7), 2)     // 3.5, nil
	simplemath.MultiplyOf(uint8(200), 2) // 400

# Operations as values

Operation is a functional binding for a binary operation. It composes with
Map, Wrap and Tap:

	op := simplemath.OpDivide.
	    Wrap("ratio").
	    Map(math.Round).
	    Tap(func(a, b, result float64, err error) {
	        log.Printf("%v / %v = %v (%v)", a, b, result, err)
	    })

	op.Apply(7, 2) // 4, nil
	op.Apply(7, 0) // 0, "ratio: Division by zero is not allowed."

Lookup resolves an operation by name or symbol:

	op, err := simplemath.Lookup("+")

# Package Import

	import "github.com/Pure-Company/simplemath"
*/
package simplemath
