// Package store implements the flat-file record store backing the
// classifieds core. Every entity kind lives in its own JSON artifact that
// is always read and written in full; Update runs the whole
// read-modify-write cycle as one critical section per collection, which
// is the mutual-exclusion point for id assignment and appends.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/fleamarket/internal/common"
	"github.com/dmitrijs2005/fleamarket/internal/filex"
)

// Record is implemented by every persisted entity type.
type Record interface {
	RecordID() int64
}

// Collection stores all records of one entity kind in a single JSON
// artifact on disk.
type Collection[T Record] struct {
	mu   sync.Mutex
	path string
}

func NewCollection[T Record](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// GetAll reads the entire artifact. A missing or empty artifact reads as
// an empty collection; any other read failure, including malformed
// content, wraps ErrStorage instead of masking corruption.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// SaveAll replaces the entire durable extent for this kind.
func (c *Collection[T]) SaveAll(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Update loads the current records, applies fn, and persists whatever fn
// returns, all under the collection lock. If fn returns an error, nothing
// is written and the error is passed through unchanged.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return nil, err
	}
	out, err := fn(records)
	if err != nil {
		return nil, err
	}
	if err := c.save(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrStorage, c.path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", common.ErrStorage, c.path, err)
	}
	return records, nil
}

func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", common.ErrStorage, c.path, err)
	}
	if err := filex.AtomicWrite(c.path, data); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}

// NextID returns 1 for an empty collection, otherwise the maximum
// existing id plus one. Ids derive from the current maximum only, so
// deleting the highest-id record lets a later insert reissue its id.
func NextID[T Record](records []T) int64 {
	var max int64
	for _, r := range records {
		if id := r.RecordID(); id > max {
			max = id
		}
	}
	return max + 1
}
