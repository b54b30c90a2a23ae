package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"blog-api/models"
)

// Generous upper bounds; posts are short text.
const (
	MaxTitleLen   = 200
	MaxContentLen = 20000
)

// ValidationError represents custom validation errors
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %s", strings.Join(e.Errors, ", "))
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateCreatePost trims and validates a create payload in place. Both
// title and content must be non-empty after trimming.
func ValidateCreatePost(in *models.CreatePostInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)

	var validationErrors []string

	if err := validate.Struct(in); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fe := range fieldErrors {
				validationErrors = append(validationErrors, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
			}
		} else {
			validationErrors = append(validationErrors, err.Error())
		}
	}

	if len(in.Title) > MaxTitleLen {
		validationErrors = append(validationErrors, "title exceeds length limit")
	}
	if len(in.Content) > MaxContentLen {
		validationErrors = append(validationErrors, "content exceeds length limit")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}
	return nil
}

// ValidateUpdatePost trims and validates an update payload in place. At
// least one field must be present, and a present field must be non-empty
// after trimming so a stored post can never lose its title or content.
func ValidateUpdatePost(in *models.UpdatePostInput) error {
	if in.Title == nil && in.Content == nil {
		return &ValidationError{Errors: []string{"at least one of title or content is required"}}
	}

	var validationErrors []string

	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		*in.Title = trimmed
		if trimmed == "" {
			validationErrors = append(validationErrors, "title must not be empty")
		} else if len(trimmed) > MaxTitleLen {
			validationErrors = append(validationErrors, "title exceeds length limit")
		}
	}

	if in.Content != nil {
		trimmed := strings.TrimSpace(*in.Content)
		*in.Content = trimmed
		if trimmed == "" {
			validationErrors = append(validationErrors, "content must not be empty")
		} else if len(trimmed) > MaxContentLen {
			validationErrors = append(validationErrors, "content exceeds length limit")
		}
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}
	return nil
}
