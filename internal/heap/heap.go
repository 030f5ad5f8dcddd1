// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package heap implements generic min-heap operations on slices.
package heap

// Push adds item to *x while preserving the min-heap
// invariant determined by less.
func Push[T any](x *[]T, item T, less func(a, b T) bool) {
	*x = append(*x, item)
	up(*x, len(*x)-1, less)
}

// Pop removes the minimum element from *x according to less
// and returns it. Pop panics if *x is empty.
func Pop[T any](x *[]T, less func(a, b T) bool) T {
	ret := (*x)[0]
	last := len(*x) - 1
	(*x)[0] = (*x)[last]
	*x = (*x)[:last]
	if last > 0 {
		down(*x, 0, less)
	}
	return ret
}

// Order rearranges x into min-heap order according to less.
// Afterwards x[0] is the minimum element, if any.
func Order[T any](x []T, less func(a, b T) bool) {
	for i := len(x)/2 - 1; i >= 0; i-- {
		down(x, i, less)
	}
}

func up[T any](x []T, i int, less func(a, b T) bool) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(x[i], x[parent]) {
			return
		}
		x[i], x[parent] = x[parent], x[i]
		i = parent
	}
}

func down[T any](x []T, i int, less func(a, b T) bool) {
	for {
		child := 2*i + 1
		if child >= len(x) {
			return
		}
		if right := child + 1; right < len(x) && less(x[right], x[child]) {
			child = right
		}
		if !less(x[child], x[i]) {
			return
		}
		x[i], x[child] = x[child], x[i]
		i = child
	}
}
