package entity

import "fmt"

// maxTitleLength is the maximum allowed length for article titles,
// matching the VARCHAR(255) column in the schema.
const maxTitleLength = 255

// ValidateTitle checks that an article title is present and within the column limit.
// Returns a ValidationError describing the offending field otherwise.
func ValidateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if len(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

// ValidateContent checks that article or comment content is present.
func ValidateContent(content string) error {
	if content == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	return nil
}
