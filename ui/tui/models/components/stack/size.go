// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"math"
	"slices"

	"github.com/lazyprop/lazyprop/util/slicest"
)

// SizeConfig describes the share of a region an item asks for.
type SizeConfig interface {
	Priority() int
	Calculate(remaining_size int, total_size int) int
}
type maxSize struct {
	Size int
}
type fillSize struct {
	Weight      int
	totalWeight int
}

// Max asks for n cells, or whatever remains when less is available.
func Max(n int) SizeConfig { return &maxSize{Size: n} }

// Fill shares the space left by Max items between Fill items by weight.
func Fill(weight int) SizeConfig { return &fillSize{Weight: weight} }

func (sc *maxSize) Priority() int {
	return 0
}
func (sc *fillSize) Priority() int {
	return math.MaxInt
}

func (sc *maxSize) Calculate(_ int, _ int) int {
	return sc.Size
}
func (sc *fillSize) Calculate(remaining_size int, _ int) int {
	if sc.totalWeight == 0 {
		return remaining_size
	}
	// floor(remaining * weight / total) without float conversion; the last
	// fill item sees totalWeight == Weight and takes the rest
	return (remaining_size * sc.Weight) / sc.totalWeight
}

// Layout splits total between configs, leaving gap cells between items.
// Max items are served first, in order; Fill items share the remainder.
func Layout(configs []SizeConfig, total_size int, gap int) []int {
	sizes := make([]int, len(configs))
	if len(configs) == 0 {
		return sizes
	}

	// track remaining size
	remaining_size := max(total_size-(gap*(len(configs)-1)), 0)

	// stable priority order keeps equal priorities in declaration order
	order := make([]int, len(configs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		pa, pb := configs[a].Priority(), configs[b].Priority()
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		}
		return 0
	})

	// get total weight from fill configs
	total_weight := slicest.Reduce(configs, func(sc SizeConfig, total int) int {
		if f, ok := sc.(*fillSize); ok {
			return total + f.Weight
		}
		return total
	})

	for _, i := range order {
		f, ok := configs[i].(*fillSize)
		if ok {
			f.totalWeight = total_weight
		}

		size := min(max(configs[i].Calculate(remaining_size, total_size), 0), remaining_size)

		if ok {
			total_weight -= f.Weight
		}

		remaining_size -= size
		sizes[i] = size
	}
	return sizes
}
