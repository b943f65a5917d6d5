// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package env

import "slices"

// Store is the ordered collection of environments plus the current
// selection. Names are unique and the current index is always 0 for an
// empty store or a valid position otherwise. Every mutation validates
// before it changes anything, so a failed call leaves the store untouched.
type Store struct {
	envs    []Environment
	current int
}

// NewStore builds a store from envs, rejecting duplicate names.
func NewStore(envs ...Environment) (*Store, error) {
	s := &Store{}
	for _, e := range envs {
		if err := s.Add(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Len() int { return len(s.envs) }

func (s *Store) IsEmpty() bool { return len(s.envs) == 0 }

// All returns a copy of the environments in display order.
func (s *Store) All() []Environment { return slices.Clone(s.envs) }

func (s *Store) Names() []string {
	names := make([]string, len(s.envs))
	for i, e := range s.envs {
		names[i] = e.Name
	}
	return names
}

func (s *Store) indexOf(name string) int {
	return slices.IndexFunc(s.envs, func(e Environment) bool { return e.Name == name })
}

// Add appends e unless its name is already taken.
func (s *Store) Add(e Environment) error {
	if s.indexOf(e.Name) >= 0 {
		return duplicateName(e.Name)
	}
	s.envs = append(s.envs, e)
	return nil
}

// Remove deletes the entry at i and keeps the current index in bounds.
func (s *Store) Remove(i int) error {
	if i < 0 || i >= len(s.envs) {
		return invalidIndex(i)
	}
	s.envs = slices.Delete(s.envs, i, i+1)
	if s.current >= len(s.envs) {
		s.current = max(len(s.envs)-1, 0)
	}
	return nil
}

// Edit replaces the entry at i. Keeping the same name never collides.
func (s *Store) Edit(i int, e Environment) error {
	if i < 0 || i >= len(s.envs) {
		return invalidIndex(i)
	}
	if s.envs[i].Name != e.Name {
		if j := s.indexOf(e.Name); j >= 0 && j != i {
			return duplicateName(e.Name)
		}
	}
	s.envs[i] = e
	return nil
}

func (s *Store) Get(i int) (Environment, error) {
	if i < 0 || i >= len(s.envs) {
		return Environment{}, invalidIndex(i)
	}
	return s.envs[i], nil
}

// Find looks an environment up by name.
func (s *Store) Find(name string) (int, Environment, error) {
	i := s.indexOf(name)
	if i < 0 {
		return -1, Environment{}, notFound(name)
	}
	return i, s.envs[i], nil
}

func (s *Store) Current() int { return s.current }

func (s *Store) SetCurrent(i int) error {
	if s.IsEmpty() && i == 0 {
		s.current = 0
		return nil
	}
	if i < 0 || i >= len(s.envs) {
		return invalidIndex(i)
	}
	s.current = i
	return nil
}

// CurrentEnvironment returns the selected entry, failing on an empty store.
func (s *Store) CurrentEnvironment() (Environment, error) {
	return s.Get(s.current)
}
