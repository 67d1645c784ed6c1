package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/itchan-dev/qaboard/internal/errors"
)

// PostValidator checks user input for threads and replies. Lengths are
// counted in runes after trimming.
type PostValidator struct {
	TitleMaxLen  int
	BodyMaxLen   int
	AuthorMaxLen int
}

func (v *PostValidator) Title(title string) error {
	return required("Title", title, v.TitleMaxLen)
}

func (v *PostValidator) Body(body string) error {
	return required("Body", body, v.BodyMaxLen)
}

// Author may be blank; the factory fills in the default name.
func (v *PostValidator) Author(author string) error {
	if utf8.RuneCountInString(strings.TrimSpace(author)) > v.AuthorMaxLen {
		return errors.Validation(fmt.Sprintf("Author is too long (max %d characters)", v.AuthorMaxLen))
	}
	return nil
}

func required(field, value string, maxLen int) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errors.Validation(field + " is required")
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return errors.Validation(fmt.Sprintf("%s is too long (max %d characters)", field, maxLen))
	}
	return nil
}
