package model

import (
	"errors"
	"time"
)

// Category groups videos for the TV surface. DisplayOrder drives the
// dashboard's sorted listing; ties keep the backend's original order.
type Category struct {
	ID           string     `json:"_id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Icon         string     `json:"icon"`
	Description  string     `json:"description,omitempty"`
	DisplayOrder int        `json:"displayOrder"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// CategoryInput is the body for POST /api/categories and PUT /api/categories/:id.
// Pointer fields are omitted from partial updates when nil; the backend merges
// only what is present (including isActive, which toggle-status uses alone).
type CategoryInput struct {
	Name         *string `json:"name,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

var (
	// ErrCategoryNotFound is returned when the backend reports an unknown category id.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when a create form has no name.
	ErrCategoryNameRequired = errors.New("category name is required")
)
