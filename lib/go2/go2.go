// Package go2 contains general utility helpers that should've been in Go. Maybe they'll be in Go 2.0.
package go2

import (
	"golang.org/x/exp/constraints"
)

func Pointer[T any](v T) *T {
	return &v
}

func Contains[T comparable](els []T, el T) bool {
	for _, el2 := range els {
		if el2 == el {
			return true
		}
	}
	return false
}

// Sum adds els in order.
func Sum[T constraints.Integer | constraints.Float](els []T) T {
	var sum T
	for _, el := range els {
		sum += el
	}
	return sum
}
