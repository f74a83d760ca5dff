package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalog/core/sanitizer"
)

func TestSanitizeStruct_BasicFields(t *testing.T) {
	t.Parallel()

	type form struct {
		Email       string   `sanitize:"email"`
		Name        string   `sanitize:"trim"`
		Description string   `sanitize:"text"`
		Images      []string `sanitize:"trim"`
		Code        *string  `sanitize:"trim_lower"`
		NoTag       string
		Skip        string `sanitize:"-"`
	}

	code := "  ABC  "
	in := form{
		Email:       "  User@Example.COM ",
		Name:        "  Desk lamp  ",
		Description: " warm\x00 light\n",
		Images:      []string{" https://a/1.png ", "https://a/2.png"},
		Code:        &code,
		NoTag:       "  untouched  ",
		Skip:        "  skipped  ",
	}

	require.NoError(t, sanitizer.SanitizeStruct(&in))

	assert.Equal(t, "User@example.com", in.Email)
	assert.Equal(t, "Desk lamp", in.Name)
	assert.Equal(t, "warm light", in.Description)
	assert.Equal(t, []string{"https://a/1.png", "https://a/2.png"}, in.Images)
	assert.Equal(t, "abc", *in.Code)
	assert.Equal(t, "  untouched  ", in.NoTag)
	assert.Equal(t, "  skipped  ", in.Skip)
}

func TestSanitizeStruct_Nested(t *testing.T) {
	t.Parallel()

	type inner struct {
		Value string `sanitize:"no_spaces"`
	}
	type outer struct {
		Inner inner
		Ptr   *inner
	}

	in := outer{Inner: inner{Value: " a   b "}, Ptr: &inner{Value: "c \t d"}}
	require.NoError(t, sanitizer.SanitizeStruct(&in))

	assert.Equal(t, "a b", in.Inner.Value)
	assert.Equal(t, "c d", in.Ptr.Value)
}

func TestSanitizeStruct_MaxLength(t *testing.T) {
	t.Parallel()

	type form struct {
		Name string `sanitize:"trim,max:5"`
	}

	in := form{Name: "  abcdefgh  "}
	require.NoError(t, sanitizer.SanitizeStruct(&in))
	assert.Equal(t, "abcde", in.Name)
}

func TestSanitizeStruct_Custom(t *testing.T) {
	sanitizer.RegisterSanitizer("shout", strings.ToUpper)

	type form struct {
		Name string `sanitize:"trim,shout"`
	}

	in := form{Name: " hey "}
	require.NoError(t, sanitizer.SanitizeStruct(&in))
	assert.Equal(t, "HEY", in.Name)
}

func TestSanitizeStruct_Errors(t *testing.T) {
	t.Parallel()

	type form struct{ Name string }

	assert.Error(t, sanitizer.SanitizeStruct(form{}))
	assert.Error(t, sanitizer.SanitizeStruct((*form)(nil)))

	s := "text"
	assert.Error(t, sanitizer.SanitizeStruct(&s))
}

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.SingleLine("a\nb\r\nc"))
	assert.Equal(t, "héll", sanitizer.MaxLength("héllo", 4))
	assert.Equal(t, "", sanitizer.MaxLength("x", 0))
	assert.Equal(t, "no-at-sign", sanitizer.NormalizeEmail(" no-at-sign "))
}
