// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package env

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/lazyprop/lazyprop/internal/logging"
)

// BackupSuffix is appended to the environments file path for the
// compressed copy written before each save.
const BackupSuffix = ".bak.zst"

type document struct {
	Environments []Environment `yaml:"environments"`
}

// Load reads the environments file at path. A missing file yields an empty
// store so the first run starts clean.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debugf("environments file %s not found, starting empty", path)
		return &Store{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read environments file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse environments file: %w", err)
	}
	for _, e := range doc.Environments {
		if err := e.validate(); err != nil {
			return nil, err
		}
	}
	return NewStore(doc.Environments...)
}

type saveOptions struct {
	backup bool
}

type SaveOpt = func(*saveOptions)

// WithBackup keeps a zstd-compressed copy of the previous file next to it.
func WithBackup(enabled bool) SaveOpt {
	return func(o *saveOptions) { o.backup = enabled }
}

// Save rewrites the whole file at path. The content goes to a temporary
// file in the same directory which is then renamed over the target, so
// readers see either the old or the new collection.
func (s *Store) Save(path string, opts ...SaveOpt) error {
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, err := yaml.Marshal(document{Environments: s.envs})
	if err != nil {
		return fmt.Errorf("could not encode environments: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create directory %s: %w", dir, err)
	}

	if o.backup {
		if err := writeBackup(path); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not write environments: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not sync environments: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// may contain keys
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace environments file: %w", err)
	}
	logging.Infof("saved %d environments to %s", len(s.envs), path)
	return nil
}

// writeBackup compresses the current file at path, if any.
func writeBackup(path string) error {
	src, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open environments for backup: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(path+BackupSuffix, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("could not create backup file: %w", err)
	}
	return compressTo(dst, src)
}

// compressTo writes src zstd-compressed to dst and closes dst, returning
// the close error too.
func compressTo(dst io.WriteCloser, src io.Reader) error {
	zw, err := zstd.NewWriter(dst)
	if err != nil {
		_ = dst.Close()
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	if _, err := io.Copy(zw, src); err != nil {
		_ = zw.Close()
		_ = dst.Close()
		return fmt.Errorf("could not write backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		_ = dst.Close()
		return fmt.Errorf("could not write backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("could not close backup file: %w", err)
	}
	return nil
}

// ReadBackup decodes the backup belonging to the environments file at path.
func ReadBackup(path string) (*Store, error) {
	file, err := os.Open(path + BackupSuffix)
	if err != nil {
		return nil, fmt.Errorf("could not open backup file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zr, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("could not decompress backup: %w", err)
	}
	return parse(data)
}

// RestoreBackup replaces the environments file with its backup and returns
// the restored store.
func RestoreBackup(path string) (*Store, error) {
	s, err := ReadBackup(path)
	if err != nil {
		return nil, err
	}
	if err := s.Save(path); err != nil {
		return nil, err
	}
	return s, nil
}
