// Package file holds the one piece of local persisted state: the per-user
// preferred reflection time, a single JSON file mapping user id to "HH:MM".
package file

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"go-diettrack-backend/internal/domain"
)

type reflectionTimeRepo struct {
	path string
	mu   sync.Mutex
}

// NewReflectionTimeRepository stores times in the file at path. Every Set
// reads the whole map, updates one key, and rewrites the file. The mutex
// serializes writers within this process; across processes the last
// writer wins, so this store assumes a single running instance.
func NewReflectionTimeRepository(path string) domain.ReflectionTimeRepository {
	return &reflectionTimeRepo{path: path}
}

func (r *reflectionTimeRepo) Get(ctx context.Context, userID string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	times, err := r.load()
	if err != nil {
		return "", false, err
	}
	t, ok := times[userID]
	return t, ok, nil
}

func (r *reflectionTimeRepo) Set(ctx context.Context, userID string, timeStr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	times, err := r.load()
	if err != nil {
		return err
	}
	times[userID] = timeStr
	return r.save(times)
}

func (r *reflectionTimeRepo) load() (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	times := map[string]string{}
	if len(data) == 0 {
		return times, nil
	}
	if err := json.Unmarshal(data, &times); err != nil {
		return nil, err
	}
	return times, nil
}

func (r *reflectionTimeRepo) save(times map[string]string) error {
	data, err := json.MarshalIndent(times, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}
