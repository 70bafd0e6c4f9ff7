package model

import "strings"

const (
	// DefaultPageSize applies when the caller does not specify a size.
	DefaultPageSize = 20
	// MaxPageSize caps the size a caller may request.
	MaxPageSize = 100
)

// PendingCriteria carries the query parameters for the pending-applications
// listing. Page is 0-based. Filter matches email or identity document.
type PendingCriteria struct {
	Page       int
	Size       int
	Filter     string
	StateID    *int64
	LoanTypeID *int64
}

// Normalize returns a copy with page floored at 0, size clamped to
// [1, MaxPageSize] (defaulting when non-positive) and a blank filter
// collapsed to empty.
func (c PendingCriteria) Normalize() PendingCriteria {
	n := c
	if n.Page < 0 {
		n.Page = 0
	}
	if n.Size <= 0 {
		n.Size = DefaultPageSize
	}
	if n.Size > MaxPageSize {
		n.Size = MaxPageSize
	}
	n.Filter = strings.TrimSpace(n.Filter)
	return n
}

// Page is one page of query results. Items preserve the repository's
// ordering; TotalPages is derived as ceil(TotalElements / Size).
type Page[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage builds a Page and computes TotalPages. Size must be positive;
// criteria normalization guarantees that upstream.
func NewPage[T any](items []T, page, size int, totalElements int64) Page[T] {
	totalPages := int((totalElements + int64(size) - 1) / int64(size))
	return Page[T]{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}
