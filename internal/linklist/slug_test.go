package linklist_test

import (
	"testing"

	"github.com/serroba/linklist/internal/linklist"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips punctuation and lowercases", "My Awesome List!", "my-awesome-list"},
		{"collapses whitespace runs", "  a   b  ", "a-b"},
		{"collapses repeated hyphens", "a -- b", "a-b"},
		{"keeps underscores and digits", "List_2 v3", "list_2-v3"},
		{"already a slug", "my-list", "my-list"},
		{"punctuation only yields empty", "!!!", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, linklist.GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	assert.Equal(t, linklist.GenerateSlug("Same Input"), linklist.GenerateSlug("Same Input"))
}
