package handlers_test

import (
	"context"
	"errors"

	"github.com/serroba/linklist/internal/linklist"
)

var errMock = errors.New("mock error")

// mockRepo is a test double for linklist.Repository that can be configured
// to fail per operation. Unset operations behave like an empty store.
type mockRepo struct {
	createListErr error
	listsErr      error
	listByIDErr   error
	listByID      *linklist.List
	listBySlugErr error
	listBySlug    *linklist.List
	deleteListErr error
	createURLErr  error
	urlsErr       error
	deleteURLErr  error
}

func (m *mockRepo) CreateList(_ context.Context, list *linklist.List) error {
	if m.createListErr != nil {
		return m.createListErr
	}

	list.ID = 1

	return nil
}

func (m *mockRepo) Lists(_ context.Context) ([]linklist.List, error) {
	if m.listsErr != nil {
		return nil, m.listsErr
	}

	return []linklist.List{}, nil
}

func (m *mockRepo) ListByID(_ context.Context, _ int64) (*linklist.List, error) {
	if m.listByIDErr != nil {
		return nil, m.listByIDErr
	}

	if m.listByID != nil {
		return m.listByID, nil
	}

	return nil, linklist.ErrNotFound
}

func (m *mockRepo) ListBySlug(_ context.Context, _ string) (*linklist.List, error) {
	if m.listBySlugErr != nil {
		return nil, m.listBySlugErr
	}

	if m.listBySlug != nil {
		return m.listBySlug, nil
	}

	return nil, linklist.ErrNotFound
}

func (m *mockRepo) DeleteList(_ context.Context, _ int64) error {
	return m.deleteListErr
}

func (m *mockRepo) CreateURL(_ context.Context, url *linklist.URL) error {
	if m.createURLErr != nil {
		return m.createURLErr
	}

	url.ID = 1

	return nil
}

func (m *mockRepo) URLs(_ context.Context, _ int64) ([]linklist.URL, error) {
	if m.urlsErr != nil {
		return nil, m.urlsErr
	}

	return []linklist.URL{}, nil
}

func (m *mockRepo) DeleteURL(_ context.Context, _, _ int64) error {
	return m.deleteURLErr
}
