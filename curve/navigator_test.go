// SPDX-License-Identifier: MIT
// Package curve_test contains unit tests for the circular navigator.
package curve_test

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathlib/curve"
)

func TestAdvance(t *testing.T) {
	t.Parallel()

	five := []string{"a", "b", "c", "d", "e"}
	tests := []struct {
		name      string
		pos, skip int
		want      int
	}{
		{"back from first wraps to last", 0, -1, 4},
		{"forward from last wraps to first", 4, 1, 0},
		{"zero skip", 2, 0, 2},
		{"plain forward", 1, 2, 3},
		{"plain backward", 3, -2, 1},
		{"more than a lap forward", 1, 7, 3},
		{"more than two laps backward", 1, -12, 4},
		{"exact lap", 3, 5, 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, curve.Advance(five, tc.pos, tc.skip))
		})
	}

	// the sequence is never touched
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, five)

	// empty sequences leave the cursor alone
	assert.Equal(t, 3, curve.Advance([]int(nil), 3, 1))
}

func TestAdvanceElement(t *testing.T) {
	t.Parallel()

	l := list.New()
	els := make([]*list.Element, 5)
	for i := range els {
		els[i] = l.PushBack(i)
	}

	tests := []struct {
		name      string
		from      int
		skip      int
		wantValue int
	}{
		{"back from front wraps to back", 0, -1, 4},
		{"forward from back wraps to front", 4, 1, 0},
		{"zero skip", 2, 0, 2},
		{"forward", 1, 2, 3},
		{"more than a lap forward", 1, 7, 3},
		{"more than two laps backward", 1, -12, 4},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := curve.AdvanceElement(l, els[tc.from], tc.skip)
			require.NotNil(t, got)
			assert.Equal(t, tc.wantValue, got.Value)
		})
	}

	// agrees with the slice navigator everywhere
	for from := range els {
		for skip := -11; skip <= 11; skip++ {
			got := curve.AdvanceElement(l, els[from], skip)
			assert.Equal(t, curve.Advance(els, from, skip), got.Value)
		}
	}

	assert.Nil(t, curve.AdvanceElement(l, nil, 3))
	assert.Equal(t, 5, l.Len())
}
