package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalog/core/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", "Desk", "required"),
			validator.MinLen("name", "Desk", 3, "too short"),
		)
		assert.NoError(t, err)
	})

	t.Run("first failure per field wins", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", "  ", "Product name is required"),
			validator.MinLen("name", "  ", 3, "Product name must be at least 3 characters"),
			validator.Required("category", "", "Category is required"),
		)
		require.Error(t, err)

		errs, ok := validator.Extract(err)
		require.True(t, ok)
		require.Len(t, errs, 2)
		assert.Equal(t, "Product name is required", errs.Get("name"))
		assert.Equal(t, "Category is required", errs.Get("category"))
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("nil checks are ignored", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.Rule{}))
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("submit: %w", validator.ValidationErrors{{Field: "price", Message: "bad"}})
	errs, ok := validator.Extract(wrapped)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"price": "bad"}, errs.Fields())

	_, ok = validator.Extract(errors.New("other"))
	assert.False(t, ok)
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "name", Message: "required"},
		{Field: "price", Message: "must be positive"},
	}
	assert.Equal(t, "name: required; price: must be positive", errs.Error())
	assert.True(t, errs.Has("price"))
	assert.False(t, errs.Has("images"))
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"email valid", validator.Email("email", "user@example.com", ""), true},
		{"email missing domain", validator.Email("email", "user@", ""), false},
		{"email with space", validator.Email("email", "us er@example.com", ""), false},
		{"numeric", validator.Numeric("price", "12.50", ""), true},
		{"numeric garbage", validator.Numeric("price", "12abc", ""), false},
		{"greater than", validator.GreaterThan("price", 0.01, 0, ""), true},
		{"greater than zero fails on zero", validator.GreaterThan("price", 0, 0, ""), false},
		{"at most bound", validator.AtMost("price", 1_000_000, 1_000_000, ""), true},
		{"at most above", validator.AtMost("price", 1_000_000.01, 1_000_000, ""), false},
		{"not empty", validator.NotEmpty("images", []string{"x"}, ""), true},
		{"empty", validator.NotEmpty("images", []string{}, ""), false},
		{"http urls", validator.HTTPURLs("images", []string{"https://a/b.png", "http://c"}, ""), true},
		{"ftp url", validator.HTTPURLs("images", []string{"https://a", "ftp://b"}, ""), false},
		{"min len counts runes", validator.MinLen("name", " äöü ", 3, ""), true},
		{"check", validator.Check("x", false, ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}
