// Package mathx provides integer helpers over any integer type.
package mathx

import "golang.org/x/exp/constraints"

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// LCMAll folds LCM over values; it returns 0 for no values.
func LCMAll[T constraints.Integer](values ...T) T {
	if len(values) == 0 {
		return 0
	}

	result := values[0]
	for _, v := range values[1:] {
		result = LCM(result, v)
	}
	return result
}

func Sum[T constraints.Integer | constraints.Float](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

func Product[T constraints.Integer | constraints.Float](values []T) T {
	var total T = 1
	for _, v := range values {
		total *= v
	}
	return total
}
