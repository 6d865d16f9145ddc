// Package state holds the mirror of server data a client session works
// against: the list being viewed, its URLs, and the in-progress form drafts.
// Mutations go through explicit setters and every mutation delivers a fresh
// snapshot to registered observers.
package state

import (
	"sync"

	"github.com/serroba/linklist/internal/linklist"
)

// Snapshot is an immutable view of the session state. The URL slice is copied
// on every mutation, so observers may keep a snapshot without it changing
// underneath them.
type Snapshot struct {
	CurrentList  *linklist.List
	ListURLs     []linklist.URL
	NewURL       linklist.NewURLInput
	CustomSlug   string
	IsLoading    bool
	ErrorMessage string
}

// Observer receives a snapshot after each mutation.
type Observer func(Snapshot)

// Store is a thread-safe container for session state.
type Store struct {
	mu        sync.Mutex
	snapshot  Snapshot
	observers map[int]Observer
	nextID    int
}

// NewStore creates an empty state store.
func NewStore() *Store {
	return &Store{observers: make(map[int]Observer)}
}

// Subscribe registers an observer and returns a function that removes it.
// Observers are invoked synchronously after each mutation.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot
}

// SetCurrentList replaces the list being viewed.
func (s *Store) SetCurrentList(list *linklist.List) {
	s.mutate(func(snap *Snapshot) {
		snap.CurrentList = list
	})
}

// SetURLs replaces the URL collection with a copy of urls.
func (s *Store) SetURLs(urls []linklist.URL) {
	copied := make([]linklist.URL, len(urls))
	copy(copied, urls)

	s.mutate(func(snap *Snapshot) {
		snap.ListURLs = copied
	})
}

// PrependURL puts url at the front of the collection, mirroring the server's
// newest-first ordering.
func (s *Store) PrependURL(url linklist.URL) {
	s.mutate(func(snap *Snapshot) {
		urls := make([]linklist.URL, 0, len(snap.ListURLs)+1)
		urls = append(urls, url)
		urls = append(urls, snap.ListURLs...)
		snap.ListURLs = urls
	})
}

// RemoveURL drops the URL with the given id, if present.
func (s *Store) RemoveURL(id int64) {
	s.mutate(func(snap *Snapshot) {
		urls := make([]linklist.URL, 0, len(snap.ListURLs))
		for _, u := range snap.ListURLs {
			if u.ID != id {
				urls = append(urls, u)
			}
		}
		snap.ListURLs = urls
	})
}

// SetNewURL replaces the draft URL form.
func (s *Store) SetNewURL(draft linklist.NewURLInput) {
	s.mutate(func(snap *Snapshot) {
		snap.NewURL = draft
	})
}

// SetCustomSlug replaces the draft slug.
func (s *Store) SetCustomSlug(slug string) {
	s.mutate(func(snap *Snapshot) {
		snap.CustomSlug = slug
	})
}

// SetLoading flips the loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mutate(func(snap *Snapshot) {
		snap.IsLoading = loading
	})
}

// SetError records a user-facing error message. An empty string clears it.
func (s *Store) SetError(message string) {
	s.mutate(func(snap *Snapshot) {
		snap.ErrorMessage = message
	})
}

// ResetForm clears the draft URL form and any error message.
func (s *Store) ResetForm() {
	s.mutate(func(snap *Snapshot) {
		snap.NewURL = linklist.NewURLInput{}
		snap.ErrorMessage = ""
	})
}

// ResetStores returns the whole store to its zero state. Used when leaving a
// list's context.
func (s *Store) ResetStores() {
	s.mutate(func(snap *Snapshot) {
		*snap = Snapshot{}
	})
}

func (s *Store) mutate(apply func(*Snapshot)) {
	s.mu.Lock()
	apply(&s.snapshot)

	snap := s.snapshot
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	// Notify outside the lock so an observer may call back into the store.
	for _, fn := range observers {
		fn(snap)
	}
}
