// Package flatfile holds the newline-delimited record file helpers shared by
// the data and formula persistence.
package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// ReadLines returns the non-empty lines of path in order. A missing file is
// not an error: the second return value reports whether the file existed, so
// callers can fall back to defaults.
func ReadLines(path string) ([]string, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, true, err
	}
	return lines, true, nil
}

// WriteLines rewrites path with the given lines, one record per line. The
// content goes to a temp file in the same directory and is renamed into
// place, so a reader sees either the old file or the new one, never a
// partial write.
func WriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	writer := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := writer.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
