// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package action defines the closed set of symbolic actions exchanged
// between the dispatcher, the popup and the panes.
package action

// Action is one symbolic event. Only types declared in this package
// implement it.
type Action interface {
	action()
}

type (
	Tick   struct{}
	Resize struct{ Width, Height int }

	Up        struct{}
	Down      struct{}
	Tab       struct{}
	BackTab   struct{}
	Input     struct{ Rune rune }
	Backspace struct{}
	Toggle    struct{}
	Submit    struct{}
	Cancel    struct{}

	Add        struct{}
	Edit       struct{}
	Remove     struct{}
	Save       struct{}
	Copy       struct{}
	Fullscreen struct{}
	Help       struct{}
	Quit       struct{}

	Focus   struct{}
	UnFocus struct{}

	Message struct{ Text string }
	Error   struct{ Text string }
)

func (Tick) action()       {}
func (Resize) action()     {}
func (Up) action()         {}
func (Down) action()       {}
func (Tab) action()        {}
func (BackTab) action()    {}
func (Input) action()      {}
func (Backspace) action()  {}
func (Toggle) action()     {}
func (Submit) action()     {}
func (Cancel) action()     {}
func (Add) action()        {}
func (Edit) action()       {}
func (Remove) action()     {}
func (Save) action()       {}
func (Copy) action()       {}
func (Fullscreen) action() {}
func (Help) action()       {}
func (Quit) action()       {}
func (Focus) action()      {}
func (UnFocus) action()    {}
func (Message) action()    {}
func (Error) action()      {}
