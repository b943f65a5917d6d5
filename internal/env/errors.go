// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package env

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("environment not found")
	ErrDuplicateName = errors.New("duplicate environment name")
	ErrInvalidIndex  = errors.New("invalid environment index")
)

// Error describes a failed store operation. Kind is one of the sentinel
// errors above and is matched by errors.Is.
type Error struct {
	Kind  error
	Name  string
	Index int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("Environment not found: %s", e.Name)
	case ErrDuplicateName:
		return fmt.Sprintf("Environment with duplicate name: %s", e.Name)
	case ErrInvalidIndex:
		return fmt.Sprintf("Invalid environment index: %d", e.Index)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

func notFound(name string) error      { return &Error{Kind: ErrNotFound, Name: name} }
func duplicateName(name string) error { return &Error{Kind: ErrDuplicateName, Name: name} }
func invalidIndex(i int) error        { return &Error{Kind: ErrInvalidIndex, Index: i} }
