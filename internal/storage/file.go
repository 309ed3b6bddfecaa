package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// WriteFileAtomic writes data to path with the given permissions.
// It ensures the parent directory exists, writes to a temp file in the same
// directory, then renames it over path.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*"+TempSuffix)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// CreateTemp uses 0600; chmod explicitly so umask does not apply either.
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up temp file on failure
		return err
	}
	return nil
}

// TempSuffix marks temp files left behind by an interrupted WriteFileAtomic.
const TempSuffix = ".tmp"

// TempFileTarget reports whether name has the shape of a WriteFileAtomic
// temp file (".<base>.<digits>.tmp") and returns the base name of the file
// it was written for.
func TempFileTarget(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, ".")
	if !ok {
		return "", false
	}
	rest, ok = strings.CutSuffix(rest, TempSuffix)
	if !ok {
		return "", false
	}
	i := strings.LastIndexByte(rest, '.')
	if i <= 0 {
		return "", false
	}
	random := rest[i+1:]
	if random == "" || strings.Trim(random, "0123456789") != "" {
		return "", false
	}
	return rest[:i], true
}

// SaveTOML encodes v as TOML below an optional comment header and writes it
// atomically to path.
func SaveTOML(path, header string, v any) error {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	return WriteFileAtomic(path, buf.Bytes(), 0o644)
}

// LoadTOML reads TOML from path into dest.
// Returns an error satisfying errors.Is(err, os.ErrNotExist) if the file
// doesn't exist (caller should handle) and a *FormatError if it can't be parsed.
func LoadTOML(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if _, err := toml.Decode(string(data), dest); err != nil {
		return &FormatError{Path: path, Err: err}
	}
	return nil
}
