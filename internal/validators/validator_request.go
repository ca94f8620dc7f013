// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Struct field names of the validated models.
const (
	FieldName        = "Name"
	FieldTitle       = "Title"
	FieldDescription = "Description"
	FieldOffset      = "Offset"
	FieldLimit       = "Limit"
)

const (
	tagNotBlank   = "notblank"
	tagMax        = "max"
	tagPageNumber = "pagenum"
)

type fieldTag struct {
	field string
	tag   string
}

// sentinels maps a failed (field, tag) pair to the error reported to callers.
// Fields of PageQuery map every tag to the same error.
var sentinels = map[fieldTag]error{
	{FieldName, tagNotBlank}:        ErrEmptyName,
	{FieldName, tagMax}:             ErrNameTooLong,
	{FieldTitle, tagNotBlank}:       ErrEmptyTitle,
	{FieldTitle, tagMax}:            ErrTitleTooLong,
	{FieldDescription, tagNotBlank}: ErrEmptyDescription,
	{FieldDescription, tagMax}:      ErrDescriptionTooLong,
}

var pageSentinels = map[string]error{
	FieldOffset: ErrInvalidOffset,
	FieldLimit:  ErrInvalidLimit,
}

// RequestValidator validates the user, todo and paging inputs with
// go-playground/validator struct tags declared on the models.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator] and returns it as the
// [Validator] interface.
func NewRequestValidator() Validator {
	return newRequestValidator()
}

func newRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// only fails on a malformed tag
	if err := v.RegisterValidation(tagNotBlank, nonstandard.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(tagPageNumber, isPageNumber); err != nil {
		panic(err)
	}
	return &RequestValidator{validate: v}
}

// Validate dispatches on the input type. Supported: models.UserForm,
// models.TodoForm and models.PageQuery.
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch obj.(type) {
	case models.UserForm, models.TodoForm, models.PageQuery:
		return v.validateStruct(ctx, obj)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation failed: %w", err)
	}

	return firstSentinel(validationErrors)
}

// firstSentinel reports blank fields before any other failure, keeping the
// declaration order of fields within each group.
func firstSentinel(validationErrors validator.ValidationErrors) error {
	for _, fe := range validationErrors {
		if fe.Tag() == tagNotBlank {
			return toSentinel(fe)
		}
	}
	return toSentinel(validationErrors[0])
}

func toSentinel(fe validator.FieldError) error {
	if err, ok := pageSentinels[fe.StructField()]; ok {
		return err
	}
	if err, ok := sentinels[fieldTag{fe.StructField(), fe.Tag()}]; ok {
		return err
	}
	return fmt.Errorf("validation failed on field %s (%s)", fe.StructField(), fe.Tag())
}

// parsePageNumber accepts a decimal integer with an optional leading sign
// that fits in 32 bits and is not negative.
func parsePageNumber(raw string) (uint64, bool) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return 0, false
	}
	return uint64(n), true
}

func isPageNumber(fl validator.FieldLevel) bool {
	_, ok := parsePageNumber(fl.Field().String())
	return ok
}

// ParsePage validates the raw paging query and converts it to a
// [models.Page]. Offset and limit must be non-negative 32-bit integers;
// anything larger is rejected like any other malformed number.
func ParsePage(ctx context.Context, v Validator, query models.PageQuery) (models.Page, error) {
	if err := v.Validate(ctx, query); err != nil {
		return models.Page{}, err
	}

	offset, ok := parsePageNumber(query.Offset)
	if !ok {
		return models.Page{}, fmt.Errorf("%w: %q", ErrInvalidOffset, query.Offset)
	}
	limit, ok := parsePageNumber(query.Limit)
	if !ok {
		return models.Page{}, fmt.Errorf("%w: %q", ErrInvalidLimit, query.Limit)
	}

	return models.Page{Offset: offset, Limit: limit}, nil
}
