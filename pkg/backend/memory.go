package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-adminforms/pkg/schema"
)

// Memory is an in-process backend holding collections and records in maps.
// It serves the same schema/CRUD surface as Client, which makes it the
// natural test double and example driver. Safe for concurrent use.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]schema.Collection
	records     map[string][]Record
	now         func() time.Time
}

// NewMemory creates an empty in-memory backend seeded with the supplied
// collections.
func NewMemory(collections ...schema.Collection) *Memory {
	m := &Memory{
		collections: make(map[string]schema.Collection, len(collections)),
		records:     make(map[string][]Record),
		now:         time.Now,
	}
	for _, col := range collections {
		m.collections[col.Name] = col
	}
	return m
}

// AddCollection registers or replaces a collection definition.
func (m *Memory) AddCollection(col schema.Collection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[col.Name] = col
}

// Schema returns the ordered field descriptors for a collection.
func (m *Memory) Schema(_ context.Context, collection string) ([]schema.Field, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, ok := m.collections[collection]
	if !ok {
		return nil, fmt.Errorf("backend: collection %q not found", collection)
	}
	return col.Fields, nil
}

// List returns one page of records. Pages are 1-based; page and perPage
// values below 1 fall back to the first page of 30.
func (m *Memory) List(_ context.Context, collection string, page, perPage int) (ListResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.collections[collection]; !ok {
		return ListResult{}, fmt.Errorf("backend: collection %q not found", collection)
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 30
	}

	all := m.records[collection]
	total := len(all)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	items := make([]Record, end-start)
	copy(items, all[start:end])

	return ListResult{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		Items:      items,
	}, nil
}

// Create stores a record, assigning an id and timestamps.
func (m *Memory) Create(_ context.Context, collection string, record map[string]any) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collections[collection]; !ok {
		return nil, fmt.Errorf("backend: collection %q not found", collection)
	}

	stored := make(Record, len(record)+3)
	for key, value := range record {
		stored[key] = value
	}
	stamp := m.now().UTC().Format(time.RFC3339)
	stored["id"] = uuid.NewString()
	stored["created"] = stamp
	stored["updated"] = stamp

	m.records[collection] = append(m.records[collection], stored)
	return stored, nil
}

// Update merges record into an existing record and bumps its updated stamp.
func (m *Memory) Update(_ context.Context, collection, id string, record map[string]any) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.findLocked(collection, id)
	if err != nil {
		return nil, err
	}
	for key, value := range record {
		if key == "id" || key == "created" {
			continue
		}
		stored[key] = value
	}
	stored["updated"] = m.now().UTC().Format(time.RFC3339)
	return stored, nil
}

// Delete removes a record.
func (m *Memory) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.records[collection]
	for i, record := range all {
		if record.ID() == id {
			m.records[collection] = append(all[:i], all[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("backend: record %q not found in %q", id, collection)
}

func (m *Memory) findLocked(collection, id string) (Record, error) {
	for _, record := range m.records[collection] {
		if record.ID() == id {
			return record, nil
		}
	}
	return nil, fmt.Errorf("backend: record %q not found in %q", id, collection)
}
