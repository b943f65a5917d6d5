// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers used across the UI.
package slicest

// Reduce

// Reduce reduces slice S to type U starting from U's zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD reduces slice S to type U using init as the starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// Map

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U { return fn(t) })
}

// Filter

// FilterI returns the indices of the elements for which keep reports true.
func FilterI[T any, S ~[]T](s S, keep func(T) bool) []int {
	var result []int
	for i, v := range s {
		if keep(v) {
			result = append(result, i)
		}
	}
	return result
}
