package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		length  int
		want    string
	}{
		{"shorter than limit", "short content", 150, "short content"},
		{"exactly at limit", strings.Repeat("x", 150), 150, strings.Repeat("x", 150)},
		{"one over limit", strings.Repeat("x", 151), 150, strings.Repeat("x", 150) + "..."},
		{"custom length", "abcdefghij", 4, "abcd..."},
		{"zero falls back to default", strings.Repeat("x", 200), 0, strings.Repeat("x", 150) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &Post{Content: tt.content}
			assert.Equal(t, tt.want, post.Excerpt(tt.length))
		})
	}
}

func TestPostValidationCountsRunes(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		valid   bool
	}{
		{"multibyte title at max length", strings.Repeat("é", 100), "valid content here", true},
		{"multibyte title over max length", strings.Repeat("é", 101), "valid content here", false},
		{"multibyte title at min length", "ééé", "valid content here", true},
		{"multibyte title under min length", "éé", "valid content here", false},
		{"multibyte content at min length", "A valid title", strings.Repeat("日", 10), true},
		{"multibyte content under min length", "A valid title", strings.Repeat("日", 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &Post{Title: tt.title, Content: tt.content, AuthorID: "some-author"}
			err := post.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidationErrorJoinsMessages(t *testing.T) {
	err := NewValidationError("title is required", "content is required")
	assert.Equal(t, "title is required, content is required", err.Error())
}
