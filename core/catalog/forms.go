package catalog

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/catalog/core/sanitizer"
	"github.com/dmitrymomot/catalog/core/validator"
)

// Form field names used in validation errors.
const (
	FieldEmail       = "email"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategoryID  = "categoryId"
	FieldImages      = "images"
)

// MaxPrice is the highest price the product form accepts.
const MaxPrice = 1_000_000

// LoginForm is the login input.
type LoginForm struct {
	Email string `sanitize:"email"`
}

// Normalize sanitizes and validates the form, returning the email to submit.
func (f LoginForm) Normalize() (string, error) {
	if err := sanitizer.SanitizeStruct(&f); err != nil {
		return "", err
	}

	err := validator.Apply(
		validator.Required(FieldEmail, f.Email, "Email is required"),
		validator.Email(FieldEmail, f.Email, "Please enter a valid email address"),
	)
	if err != nil {
		return "", err
	}
	return f.Email, nil
}

// ProductForm is the raw create/edit input. Price stays textual until validated.
type ProductForm struct {
	Name        string   `sanitize:"trim"`
	Description string   `sanitize:"trim"`
	Price       string   `sanitize:"trim"`
	CategoryID  string   `sanitize:"trim"`
	Images      []string `sanitize:"trim"`
}

// FormFromProduct prefills a form for editing.
func FormFromProduct(p Product) ProductForm {
	return ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		CategoryID:  p.Category.ID,
		Images:      append([]string(nil), p.Images...),
	}
}

// Input sanitizes and validates the form and converts it into a request body.
// Blank image entries are dropped. Validation failures are validator.ValidationErrors
// with one message per field.
func (f ProductForm) Input() (ProductInput, error) {
	f.Images = append([]string(nil), f.Images...)
	if err := sanitizer.SanitizeStruct(&f); err != nil {
		return ProductInput{}, err
	}

	images := make([]string, 0, len(f.Images))
	for _, img := range f.Images {
		if img != "" {
			images = append(images, img)
		}
	}

	price, _ := strconv.ParseFloat(f.Price, 64)

	err := validator.Apply(
		validator.Required(FieldName, f.Name, "Product name is required"),
		validator.MinLen(FieldName, f.Name, 3, "Product name must be at least 3 characters"),

		validator.Required(FieldDescription, f.Description, "Description is required"),
		validator.MinLen(FieldDescription, f.Description, 10, "Description must be at least 10 characters"),

		validator.Required(FieldPrice, f.Price, "Price is required"),
		validator.Numeric(FieldPrice, f.Price, "Price must be a valid number"),
		validator.GreaterThan(FieldPrice, price, 0, "Price must be greater than 0"),
		validator.AtMost(FieldPrice, price, MaxPrice, "Price cannot exceed 1,000,000"),

		validator.Required(FieldCategoryID, f.CategoryID, "Category is required"),

		validator.NotEmpty(FieldImages, images, "At least one image URL is required"),
		validator.HTTPURLs(FieldImages, images, "All image URLs must start with http:// or https://"),
	)
	if err != nil {
		return ProductInput{}, err
	}

	return ProductInput{
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		CategoryID:  f.CategoryID,
		Images:      images,
	}, nil
}

// ParseImages splits a comma or newline separated list of image URLs.
func ParseImages(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '\n' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
