package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/serroba/linklist/internal/linklist"
)

// MemoryStore is an in-memory implementation of linklist.Repository, used in
// tests and when no database is configured. It enforces the same invariants
// as the Postgres store: unique slugs and URLs referencing an existing list.
type MemoryStore struct {
	mu         sync.RWMutex
	lists      map[int64]linklist.List
	urls       map[int64]linklist.URL
	nextListID int64
	nextURLID  int64
}

// NewMemoryStore creates a new empty in-memory repository.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lists: make(map[int64]linklist.List),
		urls:  make(map[int64]linklist.URL),
	}
}

func (m *MemoryStore) CreateList(_ context.Context, list *linklist.List) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.lists {
		if existing.Slug == list.Slug {
			return linklist.ErrSlugTaken
		}
	}

	m.nextListID++
	list.ID = m.nextListID
	list.CreatedAt = time.Now().UTC()
	m.lists[list.ID] = *list

	return nil
}

func (m *MemoryStore) Lists(_ context.Context) ([]linklist.List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lists := make([]linklist.List, 0, len(m.lists))
	for _, list := range m.lists {
		lists = append(lists, list)
	}

	sort.Slice(lists, func(i, j int) bool {
		if !lists[i].CreatedAt.Equal(lists[j].CreatedAt) {
			return lists[i].CreatedAt.After(lists[j].CreatedAt)
		}

		return lists[i].ID > lists[j].ID
	})

	return lists, nil
}

func (m *MemoryStore) ListByID(_ context.Context, id int64) (*linklist.List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list, ok := m.lists[id]
	if !ok {
		return nil, linklist.ErrNotFound
	}

	return &list, nil
}

func (m *MemoryStore) ListBySlug(_ context.Context, slug string) (*linklist.List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, list := range m.lists {
		if list.Slug == slug {
			return &list, nil
		}
	}

	return nil, linklist.ErrNotFound
}

func (m *MemoryStore) DeleteList(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for urlID, u := range m.urls {
		if u.ListID == id {
			delete(m.urls, urlID)
		}
	}

	delete(m.lists, id)

	return nil
}

func (m *MemoryStore) CreateURL(_ context.Context, url *linklist.URL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lists[url.ListID]; !ok {
		return linklist.ErrNotFound
	}

	m.nextURLID++
	url.ID = m.nextURLID
	url.CreatedAt = time.Now().UTC()
	m.urls[url.ID] = *url

	return nil
}

func (m *MemoryStore) URLs(_ context.Context, listID int64) ([]linklist.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	urls := []linklist.URL{}

	for _, u := range m.urls {
		if u.ListID == listID {
			urls = append(urls, u)
		}
	}

	sort.Slice(urls, func(i, j int) bool {
		if !urls[i].CreatedAt.Equal(urls[j].CreatedAt) {
			return urls[i].CreatedAt.After(urls[j].CreatedAt)
		}

		return urls[i].ID > urls[j].ID
	})

	return urls, nil
}

func (m *MemoryStore) DeleteURL(_ context.Context, listID, urlID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.urls[urlID]; ok && u.ListID == listID {
		delete(m.urls, urlID)
	}

	return nil
}

// Compile-time check.
var _ linklist.Repository = (*MemoryStore)(nil)
