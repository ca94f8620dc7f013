// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/models"
)

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{Name: "x"}), ErrUnsupportedType)
}

func TestValidate_UserForm(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		form    models.UserForm
		wantErr error
	}{
		{name: "valid", form: models.UserForm{Name: "alice"}},
		{name: "surrounding spaces are fine", form: models.UserForm{Name: "  alice  "}},
		{name: "exactly 2000 runes", form: models.UserForm{Name: strings.Repeat("я", 2000)}},
		{name: "empty", form: models.UserForm{Name: ""}, wantErr: ErrEmptyName},
		{name: "whitespace only", form: models.UserForm{Name: " \t\n "}, wantErr: ErrEmptyName},
		{name: "too long", form: models.UserForm{Name: strings.Repeat("a", 2001)}, wantErr: ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_TodoForm(t *testing.T) {
	v := NewRequestValidator()
	longTitle := strings.Repeat("t", 501)
	longDescription := strings.Repeat("d", 5001)

	tests := []struct {
		name    string
		form    models.TodoForm
		wantErr error
	}{
		{name: "valid", form: models.TodoForm{Title: "buy", Description: "milk"}},
		{name: "limits", form: models.TodoForm{Title: strings.Repeat("t", 500), Description: strings.Repeat("d", 5000)}},
		{name: "empty title", form: models.TodoForm{Title: "", Description: "milk"}, wantErr: ErrEmptyTitle},
		{name: "empty description", form: models.TodoForm{Title: "buy", Description: "  "}, wantErr: ErrEmptyDescription},
		{name: "both empty reports title", form: models.TodoForm{}, wantErr: ErrEmptyTitle},
		{name: "title too long", form: models.TodoForm{Title: longTitle, Description: "milk"}, wantErr: ErrTitleTooLong},
		{name: "description too long", form: models.TodoForm{Title: "buy", Description: longDescription}, wantErr: ErrDescriptionTooLong},
		{name: "both too long reports title", form: models.TodoForm{Title: longTitle, Description: longDescription}, wantErr: ErrTitleTooLong},
		{name: "blank description beats long title", form: models.TodoForm{Title: longTitle, Description: ""}, wantErr: ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PointerIsUnsupported(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), &models.TodoForm{Title: "buy", Description: "milk"}), ErrUnsupportedType)
}

func TestValidate_PageQuery(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		query   models.PageQuery
		wantErr error
	}{
		{name: "valid", query: models.PageQuery{Offset: "0", Limit: "2"}},
		{name: "missing offset", query: models.PageQuery{Limit: "2"}, wantErr: ErrInvalidOffset},
		{name: "negative offset", query: models.PageQuery{Offset: "-1", Limit: "2"}, wantErr: ErrInvalidOffset},
		{name: "non numeric limit", query: models.PageQuery{Offset: "0", Limit: "ten"}, wantErr: ErrInvalidLimit},
		{name: "missing limit", query: models.PageQuery{Offset: "0"}, wantErr: ErrInvalidLimit},
		{name: "fraction", query: models.PageQuery{Offset: "1.5", Limit: "2"}, wantErr: ErrInvalidOffset},
		{name: "leading plus", query: models.PageQuery{Offset: "+1", Limit: "+2"}},
		{name: "max int32", query: models.PageQuery{Offset: "2147483647", Limit: "2147483647"}},
		{name: "offset above int32", query: models.PageQuery{Offset: "2147483648", Limit: "2"}, wantErr: ErrInvalidOffset},
		{name: "limit above int64", query: models.PageQuery{Offset: "0", Limit: "9223372036854775808"}, wantErr: ErrInvalidLimit},
		{name: "limit max uint64", query: models.PageQuery{Offset: "0", Limit: "18446744073709551615"}, wantErr: ErrInvalidLimit},
		{name: "offset max uint64", query: models.PageQuery{Offset: "18446744073709551615", Limit: "1"}, wantErr: ErrInvalidOffset},
		{name: "bad offset reported before bad limit", query: models.PageQuery{Offset: "x", Limit: "y"}, wantErr: ErrInvalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.query)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParsePage(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name     string
		query    models.PageQuery
		wantPage models.Page
		wantErr  error
	}{
		{name: "valid", query: models.PageQuery{Offset: "4", Limit: "10"}, wantPage: models.Page{Offset: 4, Limit: 10}},
		{name: "leading plus", query: models.PageQuery{Offset: "+3", Limit: "+1"}, wantPage: models.Page{Offset: 3, Limit: 1}},
		{name: "max int32", query: models.PageQuery{Offset: "0", Limit: "2147483647"}, wantPage: models.Page{Limit: 2147483647}},
		{name: "non numeric offset", query: models.PageQuery{Offset: "x", Limit: "10"}, wantErr: ErrInvalidOffset},
		{name: "limit max uint64", query: models.PageQuery{Offset: "0", Limit: "18446744073709551615"}, wantErr: ErrInvalidLimit},
		{name: "limit above int64", query: models.PageQuery{Offset: "0", Limit: "9223372036854775808"}, wantErr: ErrInvalidLimit},
		{name: "offset max uint64", query: models.PageQuery{Offset: "18446744073709551615", Limit: "1"}, wantErr: ErrInvalidOffset},
		{name: "huge limit", query: models.PageQuery{Offset: "0", Limit: "99999999999999999999999"}, wantErr: ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ParsePage(context.Background(), v, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
		})
	}
}
