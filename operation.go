package simplemath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is wrapped by Lookup when a name matches no operation.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation is a functional binding for a binary arithmetic operation.
// Divide already has this signature; total operations are lifted with Total.
//
// Example:
//
//	op := OpMultiply.Map(math.Abs).Wrap("area")
//	v, err := op.Apply(-3, 4) // 12, nil
type Operation func(a, b float64) (float64, error)

// Predefined operations.
var (
	OpAdd      = Total(Add)
	OpSubtract = Total(Subtract)
	OpMultiply = Total(Multiply)
	OpDivide   = Operation(Divide)
)

// Total lifts a function that cannot fail into an Operation.
func Total(fn func(a, b float64) float64) Operation {
	return func(a, b float64) (float64, error) {
		return fn(a, b), nil
	}
}

// Apply runs the operation.
func (f Operation) Apply(a, b float64) (float64, error) {
	return f(a, b)
}

// Map transforms successful results. Failed calls are returned unchanged
// and transform is not called.
func (f Operation) Map(transform func(float64) float64) Operation {
	return func(a, b float64) (float64, error) {
		v, err := f(a, b)
		if err != nil {
			return v, err
		}
		return transform(v), nil
	}
}

// Wrap prefixes errors with context. The original error stays matchable
// with errors.Is.
func (f Operation) Wrap(context string) Operation {
	return func(a, b float64) (float64, error) {
		v, err := f(a, b)
		if err != nil {
			return v, fmt.Errorf("%s: %w", context, err)
		}
		return v, nil
	}
}

// Tap allows side effects without modifying the result.
func (f Operation) Tap(fn func(a, b, result float64, err error)) Operation {
	return func(a, b float64) (float64, error) {
		v, err := f(a, b)
		fn(a, b, v, err)
		return v, err
	}
}

// ============================================================================
// Lookup
// ============================================================================

type entry struct {
	name   string
	symbol string
	op     Operation
}

var table = []entry{
	{"add", "+", OpAdd},
	{"subtract", "-", OpSubtract},
	{"multiply", "*", OpMultiply},
	{"divide", "/", OpDivide},
}

// Lookup returns the operation registered under name, which may be the
// canonical name ("add") or its symbol ("+"). Case and surrounding
// whitespace are ignored.
func Lookup(name string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range table {
		if key == e.name || key == e.symbol {
			return e.op, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Names returns the canonical operation names in declaration order.
func Names() []string {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.name
	}
	return names
}
