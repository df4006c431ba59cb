// SPDX-License-Identifier: MIT
// Package order: rank configuration surface.
// This file declares the ties / NA-placement tags and the RankOptions
// struct consumed by Rank1D (and taken directly by rank.Rank).

package order

import "github.com/katalvlaran/lvlagg/core"

// TiesMethod selects how equal values inside one group share ranks.
type TiesMethod uint8

const (
	// TiesAverage assigns the mean of the positions the tie spans.
	TiesAverage TiesMethod = iota

	// TiesMin assigns the first (lowest) position of the tie.
	TiesMin

	// TiesMax assigns the last (highest) position of the tie.
	TiesMax

	// TiesFirst assigns positions in order of appearance (stable).
	TiesFirst

	// TiesDense numbers distinct values consecutively, without gaps.
	TiesDense
)

// NAOption selects where missing values land in the ranking.
type NAOption uint8

const (
	// NAKeep leaves missing values unranked: their output is NaN.
	NAKeep NAOption = iota

	// NATop ranks missing values ahead of everything (lowest ranks).
	NATop

	// NABottom ranks missing values after everything (highest ranks).
	NABottom
)

// RankOptions configures Rank1D and rank.Rank.
//
//	Ties      - tie-sharing method inside a group (default TiesAverage).
//	Ascending - sort direction for values (default true).
//	Pct       - divide ranks by the group's ranked-entry count
//	            (distinct-value count under TiesDense).
//	NAOption  - placement of missing values (default NAKeep).
type RankOptions struct {
	Ties      TiesMethod
	Ascending bool
	Pct       bool
	NAOption  NAOption
}

// DefaultRankOptions returns the conventional ranking configuration:
// average ties, ascending, absolute ranks, missing values kept unranked.
func DefaultRankOptions() RankOptions {
	return RankOptions{
		Ties:      TiesAverage,
		Ascending: true,
		Pct:       false,
		NAOption:  NAKeep,
	}
}

// Validate checks the tag fields hold known values.
// Returns core.ErrInvalidArgument otherwise.
func (o RankOptions) Validate() error {
	if o.Ties > TiesDense {
		return core.ErrInvalidArgument
	}
	if o.NAOption > NABottom {
		return core.ErrInvalidArgument
	}

	return nil
}
