package marble

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dbmrq/marbles/internal/env"
	"github.com/dbmrq/marbles/internal/errors"
)

// Store reads and writes lists as line-delimited text files in the data
// directory. Each list is one file, one item per line, sorted. There is no
// locking: concurrent invocations against the same list race and the last
// save wins.
type Store struct {
	env env.Provider
}

// NewStore creates a Store resolving paths through the given provider.
func NewStore(p env.Provider) *Store {
	return &Store{env: p}
}

// dir resolves the data directory and creates it if absent.
// Failure to create the directory is the one fatal load-time error.
func (s *Store) dir() (string, error) {
	dir, err := s.env.DataDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrStorage, "could not resolve data directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrStorage, "could not create data directory").
			WithDetails("path", dir)
	}
	return dir, nil
}

// validateName rejects list names that would escape the data directory.
func validateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrList, "list name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.New(errors.ErrList, fmt.Sprintf("invalid list name %q", name))
	}
	return nil
}

// Path returns the backing file path for the named list, creating the
// data directory if needed. The file itself may not exist yet.
func (s *Store) Path(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Load reads the named list from disk. A missing file yields an empty
// list; blank lines are skipped and duplicates collapse into the set.
func (s *Store) Load(name string) (*List, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	list := NewList(name)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return list, nil
		}
		return nil, errors.Wrap(err, errors.ErrStorage, "could not open list file").
			WithDetails("path", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		list.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrStorage, "could not read list file").
			WithDetails("path", path)
	}

	return list, nil
}

// Save writes the list to disk, truncating or creating its file, one item
// per line in sorted order.
func (s *Store) Save(list *List) error {
	path, err := s.Path(list.Name())
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrap(err, errors.ErrStorage, "could not open list file for writing").
			WithDetails("path", path)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, item := range list.Items() {
		if _, err := fmt.Fprintln(writer, item); err != nil {
			return errors.Wrap(err, errors.ErrStorage, "could not write list file").
				WithDetails("path", path)
		}
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrStorage, "could not flush list file").
			WithDetails("path", path)
	}

	return nil
}

// Names returns the names of all lists present in the data directory,
// sorted lexicographically.
func (s *Store) Names() ([]string, error) {
	dir, err := s.dir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStorage, "could not read data directory").
			WithDetails("path", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
