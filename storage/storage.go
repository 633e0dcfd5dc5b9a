package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/topdown/levels"
)

var (
	ErrNotFound   = errors.New("slot not found")
	ErrInvalidKey = errors.New("invalid slot key")
)

// HandoffKey is the slot the editor writes and the game reads on start.
const HandoffKey = "tempMap"

const slotPrefix = "map_"

// Store persists serialized maps under string keys.
type Store interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
	List() ([]string, error)
	Delete(key string) error
	Close() error
}

// SlotKey returns the key of a named save slot.
func SlotKey(name string) string {
	return slotPrefix + name
}

// SlotName strips the slot prefix from key.
func SlotName(key string) (string, bool) {
	if !strings.HasPrefix(key, slotPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, slotPrefix), true
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// SaveMap encodes m as JSON and stores it under key.
func SaveMap(s Store, key string, m *levels.Map) error {
	data, err := levels.Marshal(m, levels.FormatJSON)
	if err != nil {
		return err
	}
	if err := s.Save(key, data); err != nil {
		return fmt.Errorf("save map %s: %w", key, err)
	}
	return nil
}

// LoadMap reads and decodes the map stored under key.
func LoadMap(s Store, key string) (*levels.Map, error) {
	data, err := s.Load(key)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", key, err)
	}
	m, err := levels.Unmarshal(data, levels.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", key, err)
	}
	return m, nil
}
