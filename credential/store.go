// Package credential implements the credential store collaborator: a small
// append-only user file with bcrypt-hashed passwords. The core only relies
// on the Authenticate/Register contract; the storage format is private to
// this package.
package credential

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nmiguel/vendas"
)

// Store holds credentials in a JSONL file, one user per line.
type Store struct {
	path string
}

// Open returns a store backed by the given file. The file is created lazily
// on the first registration.
func Open(path string) *Store {
	return &Store{path: path}
}

type userRecord struct {
	Username string `json:"username"`
	Hash     string `json:"hash"`
}

// Register adds a new user. Returns vendas.ErrUserExists when the username
// is already taken.
func (s *Store) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", vendas.ErrValidation)
	}

	users, err := s.load()
	if err != nil {
		return err
	}
	if _, taken := users[username]; taken {
		return fmt.Errorf("%w: %q", vendas.ErrUserExists, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	return s.append(userRecord{Username: username, Hash: string(hash)})
}

// Authenticate reports whether the username/password pair matches a
// registered user. Unknown users and wrong passwords are both a plain false,
// not an error.
func (s *Store) Authenticate(username, password string) (bool, error) {
	users, err := s.load()
	if err != nil {
		return false, err
	}
	hash, ok := users[strings.TrimSpace(username)]
	if !ok {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

// load reads the whole user file into a username -> hash map. A missing file
// is an empty store.
func (s *Store) load() (map[string]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vendas.ErrStorageUnavailable, err)
	}
	defer f.Close()
	return decodeUsers(f)
}

func decodeUsers(r io.Reader) (map[string]string, error) {
	users := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var rec userRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode user line %q: %w", string(line), err)
		}
		users[rec.Username] = rec.Hash
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading user file: %w", err)
	}
	return users, nil
}

func (s *Store) append(rec userRecord) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", vendas.ErrStorageUnavailable, err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("could not encode user: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write user: %w", err)
	}
	return nil
}
