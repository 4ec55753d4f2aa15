// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package models

import (
	"reflect"
	"testing"
)

func TestMoveItem(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		oldIndex int
		newIndex int
		want     []string
		wantErr  bool
	}{
		{
			name:     "move forward",
			items:    []string{"a", "b", "c", "d"},
			oldIndex: 0,
			newIndex: 2,
			want:     []string{"b", "c", "a", "d"},
		},
		{
			name:     "move backward",
			items:    []string{"a", "b", "c", "d"},
			oldIndex: 3,
			newIndex: 1,
			want:     []string{"a", "d", "b", "c"},
		},
		{
			name:     "same index",
			items:    []string{"a", "b", "c"},
			oldIndex: 1,
			newIndex: 1,
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "adjacent swap",
			items:    []string{"a", "b"},
			oldIndex: 0,
			newIndex: 1,
			want:     []string{"b", "a"},
		},
		{
			name:     "old index out of range",
			items:    []string{"a", "b"},
			oldIndex: 2,
			newIndex: 0,
			wantErr:  true,
		},
		{
			name:     "new index out of range",
			items:    []string{"a", "b"},
			oldIndex: 0,
			newIndex: -1,
			wantErr:  true,
		},
		{
			name:     "empty slice",
			items:    []string{},
			oldIndex: 0,
			newIndex: 0,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MoveItem(tt.items, tt.oldIndex, tt.newIndex)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveItemPreservesLength(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	for oldIdx := 0; oldIdx < len(items); oldIdx++ {
		for newIdx := 0; newIdx < len(items); newIdx++ {
			in := append([]int(nil), items...)
			got, err := MoveItem(in, oldIdx, newIdx)
			if err != nil {
				t.Fatalf("MoveItem(%d, %d): %v", oldIdx, newIdx, err)
			}
			if len(got) != len(items) {
				t.Fatalf("MoveItem(%d, %d): length %d, want %d", oldIdx, newIdx, len(got), len(items))
			}
			sum := 0
			for _, v := range got {
				sum += v
			}
			if sum != 15 {
				t.Fatalf("MoveItem(%d, %d): elements changed: %v", oldIdx, newIdx, got)
			}
		}
	}
}

func TestNormalizedMBTITraits(t *testing.T) {
	tests := []struct {
		name   string
		traits []string
		want   []string
	}{
		{
			name:   "exact length unchanged",
			traits: []string{"a", "b", "c", "d"},
			want:   []string{"a", "b", "c", "d"},
		},
		{
			name:   "short list padded",
			traits: []string{"a", "b"},
			want:   []string{"a", "b", "", ""},
		},
		{
			name:   "long list truncated",
			traits: []string{"a", "b", "c", "d", "e", "f"},
			want:   []string{"a", "b", "c", "d"},
		},
		{
			name:   "nil padded",
			traits: nil,
			want:   []string{"", "", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizedMBTITraits(tt.traits)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
