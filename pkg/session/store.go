package session

import (
	"github.com/peterbourgon/diskv/v3"
)

// Store is durable key/value persistence for session state. Reads of
// missing or unreadable keys report absent, never an error: the rest of
// the system treats absent exactly like "never logged in".
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Load creates a Store backed by diskv using the provided config.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &diskvStore{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
	})}, nil
}

type diskvStore struct {
	d *diskv.Diskv
}

func (s *diskvStore) Get(key string) (string, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (s *diskvStore) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}

func (s *diskvStore) Remove(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}
