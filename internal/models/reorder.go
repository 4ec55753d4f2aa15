// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package models

import "fmt"

// MoveItem removes the element at oldIndex and reinserts it at newIndex,
// leaving all other relative order unchanged. The move happens in place on
// the passed slice; the same slice is returned for convenience.
func MoveItem[T any](items []T, oldIndex, newIndex int) ([]T, error) {
	n := len(items)
	if oldIndex < 0 || oldIndex >= n {
		return items, fmt.Errorf("old_index %d out of range [0,%d)", oldIndex, n)
	}
	if newIndex < 0 || newIndex >= n {
		return items, fmt.Errorf("new_index %d out of range [0,%d)", newIndex, n)
	}
	if oldIndex == newIndex {
		return items, nil
	}

	moved := items[oldIndex]
	if oldIndex < newIndex {
		copy(items[oldIndex:], items[oldIndex+1:newIndex+1])
	} else {
		copy(items[newIndex+1:], items[newIndex:oldIndex])
	}
	items[newIndex] = moved
	return items, nil
}
