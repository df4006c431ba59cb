// SPDX-License-Identifier: MIT
// Package order: group-aware 1-D ranking.

package order

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// Rank1D writes into out the within-group rank of every element of
// values, honoring the ties method, sort direction, percentage scaling
// and NA placement in opts. Rows are grouped by labels; rows with label
// -1 are excluded and receive NaN. mask, when non-nil, overrides the
// policy's per-value missingness test (true = missing).
//
// Stage 1 (Validate): length checks, option tags.
// Stage 2 (Order):    one stable sort of the surviving row indices by
//
//	(label, NA placement, value), direction per opts.Ascending.
//
// Stage 3 (Assign):   walk each group span, segment it into tie runs and
//
//	hand out ranks per the ties method; missing rows under
//	NAKeep emit NaN instead of a rank.
//
// Stage 4 (Scale):    under Pct, divide each group's ranks by its ranked
//
//	count (distinct-run count under TiesDense).
//
// Complexity: O(n log n) time for the sort, O(n) memory for the
// permutation. Deterministic: ties of equal sort keys keep original row
// order (stable sort).
func Rank1D[T core.Real, P na.Policy[T]](
	pol P,
	out []float64,
	values []T,
	labels []int,
	mask []bool,
	opts RankOptions,
) error {
	// Stage 1: validation before any write.
	n := len(values)
	if len(out) != n || len(labels) != n {
		return core.ErrLengthMismatch
	}
	if mask != nil && len(mask) != n {
		return core.ErrShapeMismatch
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	missing := func(i int) bool {
		if mask != nil {
			return mask[i]
		}

		return pol.IsNA(values[i])
	}

	// Stage 2: collect rows with a real group and sort them.
	perm := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if labels[i] < 0 {
			out[i] = math.NaN()
			continue
		}
		perm = append(perm, i)
	}

	naFirst := opts.NAOption == NATop
	sort.SliceStable(perm, func(x, y int) bool {
		a, b := perm[x], perm[y]
		if labels[a] != labels[b] {
			return labels[a] < labels[b]
		}
		aNA, bNA := missing(a), missing(b)
		if aNA != bNA {
			if naFirst {
				return aNA
			}

			return bNA
		}
		if aNA {
			return false // equal NA keys: stable order decides
		}
		if opts.Ascending {
			return values[a] < values[b]
		}

		return values[b] < values[a]
	})

	// Stage 3 + 4: rank each group span run by run.
	keep := opts.NAOption == NAKeep
	for start := 0; start < len(perm); {
		lab := labels[perm[start]]
		end := start
		for end < len(perm) && labels[perm[end]] == lab {
			end++
		}
		rankGroupSpan(out, values, perm[start:end], missing, keep, opts)
		start = end
	}

	return nil
}

// rankGroupSpan assigns ranks inside one group's sorted span.
func rankGroupSpan[T core.Real](
	out []float64,
	values []T,
	span []int,
	missing func(int) bool,
	keep bool,
	opts RankOptions,
) {
	var (
		pos    int // ranked entries handed out so far (1-based positions)
		dense  int // distinct runs ranked so far
		ranked int // total entries that received a numeric rank
	)

	for s := 0; s < len(span); {
		// Extend the tie run: same NA status, and equal values when real.
		runNA := missing(span[s])
		e := s
		for e+1 < len(span) {
			nextNA := missing(span[e+1])
			if nextNA != runNA {
				break
			}
			if !runNA && values[span[e+1]] != values[span[s]] {
				break
			}
			e++
		}
		runLen := e - s + 1

		if runNA && keep {
			for t := s; t <= e; t++ {
				out[span[t]] = math.NaN()
			}
		} else {
			dense++
			first, last := pos+1, pos+runLen
			switch opts.Ties {
			case TiesAverage:
				r := float64(first+last) / 2
				for t := s; t <= e; t++ {
					out[span[t]] = r
				}
			case TiesMin:
				for t := s; t <= e; t++ {
					out[span[t]] = float64(first)
				}
			case TiesMax:
				for t := s; t <= e; t++ {
					out[span[t]] = float64(last)
				}
			case TiesFirst:
				for t := s; t <= e; t++ {
					out[span[t]] = float64(first + (t - s))
				}
			case TiesDense:
				for t := s; t <= e; t++ {
					out[span[t]] = float64(dense)
				}
			}
			pos += runLen
			ranked += runLen
		}
		s = e + 1
	}

	if !opts.Pct {
		return
	}
	div := float64(ranked)
	if opts.Ties == TiesDense {
		div = float64(dense)
	}
	if div == 0 {
		return
	}
	for _, i := range span {
		if !math.IsNaN(out[i]) {
			out[i] /= div
		}
	}
}
