package content

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentInvalid = errors.New("content: document failed invariant validation")
	ErrPayloadInvalid  = errors.New("content: payload does not match the document schema")

	// ErrRemoteUnavailable signals that a save reached the local mirror but
	// not the remote store. The document is still considered saved; callers
	// should report the save as local-only, not roll anything back.
	ErrRemoteUnavailable = errors.New("content: remote store unavailable, saved locally only")

	ErrArticleSourceEmpty = errors.New("content: article source is empty")
)

// NotFoundError reports a missing document or cache entry.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "content: not found"
	}
	return fmt.Sprintf("content: %s %q not found", e.Resource, e.Key)
}

// DuplicateIDError reports a violated unique-id invariant in one of the
// document's lists.
type DuplicateIDError struct {
	List string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	if e == nil {
		return ErrDocumentInvalid.Error()
	}
	return fmt.Sprintf("%s: list=%s id=%q", ErrDocumentInvalid.Error(), e.List, e.ID)
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDocumentInvalid
}
