package validation

import (
	"strings"
	"testing"

	"blog-api/models"
)

func TestValidateCreatePost(t *testing.T) {
	tests := []struct {
		name    string
		input   models.CreatePostInput
		wantErr bool
	}{
		{"valid", models.CreatePostInput{Title: "T", Content: "C"}, false},
		{"missing title", models.CreatePostInput{Content: "C"}, true},
		{"missing content", models.CreatePostInput{Title: "T"}, true},
		{"whitespace title", models.CreatePostInput{Title: "   ", Content: "C"}, true},
		{"whitespace content", models.CreatePostInput{Title: "T", Content: "\n\t "}, true},
		{"both missing", models.CreatePostInput{}, true},
		{"title too long", models.CreatePostInput{Title: strings.Repeat("a", MaxTitleLen+1), Content: "C"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreatePost(&tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCreatePost() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCreatePostTrims(t *testing.T) {
	in := models.CreatePostInput{Title: "  My Title  ", Content: " body \n"}
	if err := ValidateCreatePost(&in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Title != "My Title" {
		t.Errorf("title not trimmed: %q", in.Title)
	}
	if in.Content != "body" {
		t.Errorf("content not trimmed: %q", in.Content)
	}
}

func TestValidateUpdatePost(t *testing.T) {
	title := "T"
	content := "C"
	empty := "   "

	tests := []struct {
		name    string
		input   models.UpdatePostInput
		wantErr bool
	}{
		{"both fields", models.UpdatePostInput{Title: &title, Content: &content}, false},
		{"title only", models.UpdatePostInput{Title: &title}, false},
		{"content only", models.UpdatePostInput{Content: &content}, false},
		{"neither field", models.UpdatePostInput{}, true},
		{"present but empty title", models.UpdatePostInput{Title: &empty}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdatePost(&tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUpdatePost() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
