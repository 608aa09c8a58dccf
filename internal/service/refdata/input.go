package refdata

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// AddStageInput holds the parameters for appending a pipeline stage.
type AddStageInput struct {
	Name        string
	Color       string // "" = default color
	Description *string
}

// Validate checks all fields and collects all errors.
func (i AddStageInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName("name", i.Name)...)
	if i.Color != "" && !colorRe.MatchString(i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a #rrggbb hex color"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStageInput holds the parameters for editing a stage. Order cannot change.
type UpdateStageInput struct {
	StageID     uuid.UUID
	Name        *string
	Color       *string
	Description *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateStageInput) Validate() error {
	var errs []domain.FieldError

	if i.StageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "stageId", Message: "required"})
	}
	if i.Name == nil && i.Color == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName("name", *i.Name)...)
	}
	if i.Color != nil && !colorRe.MatchString(*i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a #rrggbb hex color"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(field, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if len(name) > maxNameLength {
		return []domain.FieldError{{Field: field, Message: "max 100 characters"}}
	}
	return nil
}

// cleanName validates and trims a single name argument.
func cleanName(name string) (string, error) {
	if errs := validateName("name", name); errs != nil {
		return "", &domain.ValidationError{Errors: errs}
	}
	return strings.TrimSpace(name), nil
}
