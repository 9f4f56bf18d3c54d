package company

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

var ErrNotFound = errors.New("company profile not found")

// Store JSON ファイルへの read-modify-write。書き込みは一時ファイル→rename。
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store { return &Store{path: path} }

func (s *Store) Load() (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (*Profile, error) {
	buf, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(buf, &p); err != nil {
		return nil, fmt.Errorf("%s のパース失敗: %w", s.path, err)
	}
	return &p, nil
}

// Update 既存値に fn を適用して保存する。ファイルが無ければ空の Profile から始める。
func (s *Store) Update(fn func(p *Profile) error) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if errors.Is(err, ErrNotFound) {
		p, err = &Profile{}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) save(p *Profile) error {
	buf, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".company-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
