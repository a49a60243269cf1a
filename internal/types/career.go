// Package types provides type definitions for the career match engine and its catalog.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Career represents one record in the career catalog.
// RequiredSkills may be empty; the engine scores such a career 0 rather
// than skipping it.
type Career struct {
	ID             string   `json:"id"`
	Title          string   `json:"title" validate:"required,min=2,max=200"`
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"required_skills"`
}

// Validate validates the Career record using the validator.
func (c *Career) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
