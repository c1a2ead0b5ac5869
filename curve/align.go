// SPDX-License-Identifier: MIT

package curve

import (
	"errors"
	"math"

	"github.com/katalvlaran/mathlib/vector"
)

// ErrPathNeedsFullMatrix indicates that AlignOptions asked for the warping
// path while keeping only two DP rows.
var ErrPathNeedsFullMatrix = errors.New("curve: ReturnPath requires full DP matrix")

// AlignOptions configures Align.
//
// Fields:
//   - Window       : maximum |i-j| allowed (Sakoe-Chiba band); <= 0 disables it.
//   - SlopePenalty : extra cost of a non-diagonal step.
//   - ReturnPath   : backtrack and return the optimal warping path.
//   - Rolling      : keep two DP rows instead of the full matrix. Incompatible
//     with ReturnPath.
type AlignOptions struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	Rolling      bool
}

// Align measures how closely two polylines follow each other with Dynamic
// Time Warping, using the Euclidean distance between points as the local cost.
// Typical use is comparing two Sample outputs of different kinds or step
// counts, whose lengths need not match.
//
// Algorithm:
//  1. D[0][0] = 0, D[i][0] = D[0][j] = +Inf.
//  2. D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1]),
//     with cells outside the window set to +Inf.
//  3. distance = D[n][m]; the path is recovered by walking back from (n, m)
//     to the cheapest predecessor.
//
// A nil opts aligns without a window or penalty and without a path.
// When the window is narrower than |n-m| no alignment exists and the
// distance is +Inf.
//
// Errors:
//   - ErrTooFewPoints        when either polyline is empty.
//   - ErrPathNeedsFullMatrix when ReturnPath and Rolling are both set.
//
// Complexity: O(n·m) time; O(n·m) memory, or O(m) with Rolling.
func Align[T vector.Float](a, b []vector.Vec3[T], opts *AlignOptions) (distance float64, path [][2]int, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, curveErrorf(opAlign, ErrTooFewPoints)
	}

	var o AlignOptions
	if opts != nil {
		o = *opts
	}
	if o.ReturnPath && o.Rolling {
		return 0, nil, curveErrorf(opAlign, ErrPathNeedsFullMatrix)
	}
	window := n + m
	if o.Window > 0 {
		window = o.Window
	}

	rows := n + 1
	if o.Rolling {
		rows = 2
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	row := func(i int) []float64 { return dp[i%rows] }

	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	var (
		i, j            int
		cur, prev       []float64
		ins, del, match float64
	)
	for i = 1; i <= n; i++ {
		cur, prev = row(i), row(i-1)
		cur[0] = inf
		for j = 1; j <= m; j++ {
			if absInt(i-j) > window {
				cur[j] = inf
				continue
			}
			ins = prev[j] + o.SlopePenalty
			del = cur[j-1] + o.SlopePenalty
			match = prev[j-1]
			cur[j] = pointCost(a[i-1], b[j-1]) + math.Min(match, math.Min(ins, del))
		}
	}
	distance = row(n)[m]

	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrack(dp, n, m, o.SlopePenalty)
	}

	return distance, path, nil
}

// backtrack walks from (n, m) to (1, 1) choosing the cheapest predecessor,
// preferring the diagonal on ties, and returns 0-based index pairs in order.
func backtrack(dp [][]float64, n, m int, penalty float64) [][2]int {
	path := make([][2]int, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, [2]int{i - 1, j - 1})
		match := dp[i-1][j-1]
		ins := dp[i-1][j] + penalty
		del := dp[i][j-1] + penalty
		switch {
		case match <= ins && match <= del:
			i, j = i-1, j-1
		case ins <= del:
			i--
		default:
			j--
		}
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

func pointCost[T vector.Float](p, q vector.Vec3[T]) float64 {
	return math.Sqrt(float64(p.DistanceSquared(q)))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
