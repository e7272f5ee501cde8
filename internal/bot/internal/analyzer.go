// Package internal holds hand-analysis helpers shared by the bot
// strategies. All helpers work on hand snapshots and return indices into
// the hand, preserving hand order on ties.
package internal

import (
	"sort"

	"pisti/internal/domain"
)

// FindRank returns the index of the first hand card with the given rank.
func FindRank(hand []domain.Card, rank int) (int, bool) {
	for i, c := range hand {
		if c.Rank == rank {
			return i, true
		}
	}
	return -1, false
}

// FindNonJack returns the index of the first hand card that is not a Jack.
func FindNonJack(hand []domain.Card) (int, bool) {
	for i, c := range hand {
		if c.Rank != domain.RankJack {
			return i, true
		}
	}
	return -1, false
}

// FirstDuplicatedRank returns the index of the first card whose rank
// occurs at least twice in the hand, a pair worth saving for a pisti.
func FirstDuplicatedRank(hand []domain.Card) (int, bool) {
	counts := make(map[int]int, len(hand))
	for _, c := range hand {
		counts[c.Rank]++
	}
	for i, c := range hand {
		if counts[c.Rank] > 1 {
			return i, true
		}
	}
	return -1, false
}

// OrderByPoint returns hand indices sorted by ascending point value,
// stable in hand order.
func OrderByPoint(hand []domain.Card) []int {
	idx := make([]int, len(hand))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return hand[idx[a]].Point < hand[idx[b]].Point
	})
	return idx
}

// OrderByPointThenSeen sorts like OrderByPoint but breaks point ties by
// how often the rank was remembered, fewest sightings first.
func OrderByPointThenSeen(hand []domain.Card, seenCount func(rank int) int) []int {
	idx := OrderByPoint(hand)
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := hand[idx[a]], hand[idx[b]]
		if ca.Point != cb.Point {
			return ca.Point < cb.Point
		}
		return seenCount(ca.Rank) < seenCount(cb.Rank)
	})
	return idx
}

// HasPoints reports whether any card in the set carries a point value.
func HasPoints(cards []domain.Card) bool {
	for _, c := range cards {
		if c.Point > 0 {
			return true
		}
	}
	return false
}
