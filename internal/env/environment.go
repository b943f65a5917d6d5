// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package env holds the environment profiles managed by lazyprop: the
// Environment record, the supported algorithms and modes, and the Store that
// keeps the ordered collection consistent.
package env

import (
	"fmt"
	"strings"
)

// Algorithm names a cipher understood by the secure properties tool.
type Algorithm string

const (
	AES      Algorithm = "AES"
	Blowfish Algorithm = "Blowfish"
	DES      Algorithm = "DES"
	DESede   Algorithm = "DESede"
	RC2      Algorithm = "RC2"
	RCA      Algorithm = "RCA"
)

// Algorithms lists every algorithm in display order.
var Algorithms = []Algorithm{AES, Blowfish, DES, DESede, RC2, RCA}

// Mode names a block cipher mode of operation.
type Mode string

const (
	CBC Mode = "CBC"
	CFB Mode = "CFB"
	ECB Mode = "ECB"
	OFB Mode = "OFB"
)

// Modes lists every mode in display order.
var Modes = []Mode{CBC, CFB, ECB, OFB}

// Environment is a named set of cryptographic parameters.
type Environment struct {
	Name         string    `yaml:"name" mapstructure:"name"`
	Algorithm    Algorithm `yaml:"algorithm" mapstructure:"algorithm"`
	Mode         Mode      `yaml:"state" mapstructure:"mode"`
	UseRandomIVs bool      `yaml:"use_random_ivs" mapstructure:"use_random_ivs"`
	Key          string    `yaml:"key" mapstructure:"key"`
}

func (a Algorithm) String() string { return string(a) }
func (m Mode) String() string      { return string(m) }

// ParseAlgorithm resolves s case-insensitively against Algorithms.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(string(a), strings.TrimSpace(s)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm %q", s)
}

// ParseMode resolves s case-insensitively against Modes.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// AlgorithmIndex returns the position of a in Algorithms, or 0 when unknown.
func AlgorithmIndex(a Algorithm) int {
	for i, v := range Algorithms {
		if v == a {
			return i
		}
	}
	return 0
}

// ModeIndex returns the position of m in Modes, or 0 when unknown.
func ModeIndex(m Mode) int {
	for i, v := range Modes {
		if v == m {
			return i
		}
	}
	return 0
}

// validate checks the enumerated fields of a record read from disk.
func (e Environment) validate() error {
	if _, err := ParseAlgorithm(string(e.Algorithm)); err != nil {
		return fmt.Errorf("environment %q: %w", e.Name, err)
	}
	if _, err := ParseMode(string(e.Mode)); err != nil {
		return fmt.Errorf("environment %q: %w", e.Name, err)
	}
	return nil
}
