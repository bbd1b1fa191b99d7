package utils

import (
	"slices"

	"golang.org/x/exp/constraints"
)

func Argmax[T constraints.Ordered](arr []T) (argmax int) {
	for i := range arr {
		if arr[i] > arr[argmax] {
			argmax = i
		}
	}
	return
}

func IntAbs(a int) int {
	if a < 0 {
		return -a
	} else {
		return a
	}
}

func Intersect(a, b []string) *string {
	for i := range a {
		if slices.Contains(b, a[i]) {
			return &a[i]
		}
	}
	return nil
}
