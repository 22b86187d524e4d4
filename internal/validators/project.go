// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/billable-hours/models"
)

// Field names accepted by [ProjectValidator].
const (
	FieldName               = "name"
	FieldProjectDescription = "project_description"
)

const (
	maxProjectName        = 100
	maxProjectDescription = 255
)

// ProjectValidator validates [models.Project] values.
type ProjectValidator struct{}

func NewProjectValidator() Validator {
	return &ProjectValidator{}
}

func (v *ProjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Project:
		return v.validateProject(value, fields...)
	case *models.Project:
		return v.validateProject(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProjectValidator) validateProject(project models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldProjectDescription}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(project.Name)
			if name == "" {
				errs = append(errs, ErrProjectNameRequired)
			} else if utf8.RuneCountInString(name) > maxProjectName {
				errs = append(errs, ErrProjectNameTooLong)
			}
		case FieldProjectDescription:
			if utf8.RuneCountInString(project.Description) > maxProjectDescription {
				errs = append(errs, ErrProjectDescriptionLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}
