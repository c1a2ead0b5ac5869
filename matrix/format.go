// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// formatRows renders an n-column row-major buffer as one line per row,
// every field followed by ", ". For example Identity3 renders as
//
//	1, 0, 0,
//	0, 1, 0,
//	0, 0, 1,
func formatRows[T Float](data []T, n int) string {
	var b strings.Builder
	for i, v := range data {
		fmt.Fprintf(&b, "%v, ", v)
		if (i+1)%n == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
