// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package env

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func named(names ...string) []Environment {
	envs := make([]Environment, len(names))
	for i, n := range names {
		envs[i] = Environment{Name: n, Algorithm: AES, Mode: CBC, UseRandomIVs: true, Key: "k" + n}
	}
	return envs
}

func TestAdd_DuplicateLeavesStoreUnchanged(t *testing.T) {
	s := &Store{}
	require.NoError(t, s.Add(Environment{Name: "prod", Algorithm: AES, Mode: CBC, UseRandomIVs: true, Key: "k1"}))
	require.Equal(t, 1, s.Len())
	require.Equal(t, 0, s.Current())

	before := s.All()
	err := s.Add(Environment{Name: "prod", Algorithm: DES, Mode: ECB, UseRandomIVs: false, Key: "k2"})
	require.ErrorIs(t, err, ErrDuplicateName)
	require.EqualError(t, err, "Environment with duplicate name: prod")
	require.Equal(t, before, s.All())
	require.Equal(t, 0, s.Current())
}

func TestRemove_ClampsCurrentIndex(t *testing.T) {
	s, err := NewStore(named("a", "b", "c")...)
	require.NoError(t, err)
	require.NoError(t, s.SetCurrent(2))

	require.NoError(t, s.Remove(2))
	require.Equal(t, 2, s.Len())
	require.Equal(t, 1, s.Current())
	require.Equal(t, []string{"a", "b"}, s.Names())
}

func TestRemove_LastEntryResetsIndex(t *testing.T) {
	s, err := NewStore(named("only")...)
	require.NoError(t, err)

	require.NoError(t, s.Remove(0))
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Current())

	err = s.Remove(0)
	require.ErrorIs(t, err, ErrInvalidIndex)
	require.EqualError(t, err, "Invalid environment index: 0")
}

func TestEdit_SelfRenameAlwaysSucceeds(t *testing.T) {
	s, err := NewStore(named("a", "b")...)
	require.NoError(t, err)

	require.NoError(t, s.Edit(1, Environment{Name: "b", Algorithm: Blowfish, Mode: OFB, Key: "new"}))
	got, err := s.Get(1)
	require.NoError(t, err)
	require.Equal(t, Blowfish, got.Algorithm)
	require.Equal(t, "new", got.Key)

	err = s.Edit(1, Environment{Name: "a"})
	require.ErrorIs(t, err, ErrDuplicateName)

	require.NoError(t, s.Edit(0, Environment{Name: "renamed", Algorithm: AES, Mode: CBC}))
	require.Equal(t, []string{"renamed", "b"}, s.Names())

	require.ErrorIs(t, s.Edit(5, Environment{Name: "x"}), ErrInvalidIndex)
}

func TestGetAndFind(t *testing.T) {
	s, err := NewStore(named("dev", "prod")...)
	require.NoError(t, err)

	_, err = s.Get(-1)
	require.ErrorIs(t, err, ErrInvalidIndex)

	i, e, err := s.Find("prod")
	require.NoError(t, err)
	require.Equal(t, 1, i)
	require.Equal(t, "prod", e.Name)

	_, _, err = s.Find("qa")
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "Environment not found: qa")

	var storeErr *Error
	require.True(t, errors.As(err, &storeErr))
	require.Equal(t, "qa", storeErr.Name)
}

func TestSetCurrent(t *testing.T) {
	s := &Store{}
	require.NoError(t, s.SetCurrent(0))
	_, err := s.CurrentEnvironment()
	require.ErrorIs(t, err, ErrInvalidIndex)

	require.NoError(t, s.Add(named("a")[0]))
	require.ErrorIs(t, s.SetCurrent(1), ErrInvalidIndex)
	require.NoError(t, s.SetCurrent(0))
	cur, err := s.CurrentEnvironment()
	require.NoError(t, err)
	require.Equal(t, "a", cur.Name)
}

func TestNewStore_RejectsDuplicates(t *testing.T) {
	_, err := NewStore(named("a", "b", "a")...)
	require.ErrorIs(t, err, ErrDuplicateName)
}

// TestInvariants_RandomOperations drives the store with a seeded sequence of
// operations and checks uniqueness and index bounds after every step.
func TestInvariants_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := &Store{}

	for step := 0; step < 2000; step++ {
		name := fmt.Sprintf("env%d", rng.Intn(8))
		switch rng.Intn(4) {
		case 0:
			_ = s.Add(Environment{Name: name, Algorithm: AES, Mode: CBC})
		case 1:
			_ = s.Remove(rng.Intn(s.Len() + 2))
		case 2:
			_ = s.Edit(rng.Intn(s.Len()+2), Environment{Name: name, Algorithm: DES, Mode: ECB})
		case 3:
			if s.Len() > 0 {
				require.NoError(t, s.SetCurrent(rng.Intn(s.Len())))
			}
		}

		seen := map[string]bool{}
		for _, n := range s.Names() {
			require.False(t, seen[n], "duplicate name %q after step %d", n, step)
			seen[n] = true
		}
		if s.IsEmpty() {
			require.Equal(t, 0, s.Current(), "step %d", step)
		} else {
			require.GreaterOrEqual(t, s.Current(), 0, "step %d", step)
			require.Less(t, s.Current(), s.Len(), "step %d", step)
		}
	}
}

func TestParseAlgorithmAndMode(t *testing.T) {
	a, err := ParseAlgorithm("desede")
	require.NoError(t, err)
	require.Equal(t, DESede, a)
	_, err = ParseAlgorithm("rot13")
	require.Error(t, err)

	m, err := ParseMode(" ofb ")
	require.NoError(t, err)
	require.Equal(t, OFB, m)
	_, err = ParseMode("GCM")
	require.Error(t, err)

	require.Equal(t, 3, AlgorithmIndex(DESede))
	require.Equal(t, 0, AlgorithmIndex("nope"))
	require.Equal(t, 2, ModeIndex(ECB))
}
