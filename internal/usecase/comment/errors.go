// Package comment provides use cases for managing article comments.
package comment

import "errors"

// Sentinel errors for comment use case operations.
var (
	// ErrCommentNotFound indicates that the requested comment was not found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrInvalidCommentID indicates that the provided comment ID is invalid.
	ErrInvalidCommentID = errors.New("invalid comment ID")

	// ErrArticleNotFound indicates that the referenced article does not exist.
	ErrArticleNotFound = errors.New("article not found")
)
