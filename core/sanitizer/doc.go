// Package sanitizer cleans user input before validation.
//
// Sanitizers are plain string functions, composable through `sanitize` struct tags:
//
//	type LoginForm struct {
//		Email string `sanitize:"email"`
//	}
//
//	type ProductForm struct {
//		Name   string   `sanitize:"trim"`
//		Images []string `sanitize:"trim"`
//	}
//
//	if err := sanitizer.SanitizeStruct(&form); err != nil {
//		return err
//	}
//
// Tags are applied left to right. "max:N" truncates to N runes. Unknown names are ignored.
// Custom sanitizers can be added with RegisterSanitizer.
package sanitizer
