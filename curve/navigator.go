// SPDX-License-Identifier: MIT

package curve

import "container/list"

// Advance returns the cursor reached by moving |skip| steps from pos over the
// circular sequence seq: forward for skip > 0, backward for skip < 0.
// Stepping past the last element continues at the first and vice versa.
//
// skip == 0 returns pos unchanged, as does an empty sequence. seq is only
// used for its length and is never modified.
//
// Complexity: O(1).
func Advance[S ~[]E, E any](seq S, pos, skip int) int {
	n := len(seq)
	if skip == 0 || n == 0 {
		return pos
	}
	i := (pos + skip) % n
	if i < 0 {
		i += n
	}
	return i
}

// AdvanceElement is Advance for a doubly-linked list: it walks |skip| links
// from e, wrapping from Back to Front going forward and from Front to Back
// going backward. A nil e, an empty list or skip == 0 return e unchanged.
//
// Complexity: O(min(|skip|, l.Len())).
func AdvanceElement(l *list.List, e *list.Element, skip int) *list.Element {
	if e == nil || skip == 0 || l.Len() == 0 {
		return e
	}

	// full laps are no-ops
	skip %= l.Len()
	for ; skip > 0; skip-- {
		if e = e.Next(); e == nil {
			e = l.Front()
		}
	}
	for ; skip < 0; skip++ {
		if e = e.Prev(); e == nil {
			e = l.Back()
		}
	}
	return e
}
