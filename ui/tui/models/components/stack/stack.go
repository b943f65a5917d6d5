// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out rendered regions along one axis.
package stack

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyprop/lazyprop/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

// Item is one region of a stack. Render receives the region's size.
type Item struct {
	SizeConfig SizeConfig
	Render     func(width, height int) string
}

type Stack struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	Items       []Item
}

type NewOpt = func(stack *Stack)

func New(orientation Orientation, opts ...NewOpt) Stack {
	stack := Stack{
		Orientation: orientation,
		Align:       lipgloss.Top,
	}
	for _, opt := range opts {
		opt(&stack)
	}
	return stack
}

func WithGap(gap int) NewOpt {
	return func(stack *Stack) {
		stack.Gap = gap
	}
}

func WithAlign(align lipgloss.Position) NewOpt {
	return func(stack *Stack) {
		stack.Align = align
	}
}

func WithItem(sizeConfig SizeConfig, render func(width, height int) string) NewOpt {
	return func(stack *Stack) {
		stack.Items = append(stack.Items, Item{SizeConfig: sizeConfig, Render: render})
	}
}

// Sizes reports the share of each item for a region of width x height.
func (s Stack) Sizes(width, height int) []int {
	total := width
	if s.Orientation == Vertical {
		total = height
	}
	return Layout(slicest.Map(s.Items, func(item Item) SizeConfig { return item.SizeConfig }), total, s.Gap)
}

// View renders every item into its share and joins the results.
func (s Stack) View(width, height int) string {
	sizes := s.Sizes(width, height)

	// prepare based on orientation
	var joiner func(pos lipgloss.Position, strs ...string) string
	var dims func(size int) (int, int)
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		dims = func(size int) (int, int) { return width, size }
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		dims = func(size int) (int, int) { return size, height }
	}

	var parts []string
	for i, item := range s.Items {
		if sizes[i] == 0 {
			continue
		}
		// no gap before the first rendered item
		if len(parts) > 0 && s.Gap > 0 {
			parts = append(parts, Region(dims(s.Gap)).Render(""))
		}
		w, h := dims(sizes[i])
		parts = append(parts, Region(w, h).Render(item.Render(w, h)))
	}
	return joiner(s.Align, parts...)
}

// Region is a style that pads or cuts content to exactly width x height.
func Region(width, height int) lipgloss.Style {
	return lipgloss.
		NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height)
}
