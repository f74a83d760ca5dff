// Package validator provides programmatic validation for client-side forms.
//
// Rules are built with small constructors that carry the user-facing message and are
// evaluated by Apply. Each field reports only its first failing rule, which matches how
// forms show one message per input:
//
//	err := validator.Apply(
//		validator.Required("name", form.Name, "Product name is required"),
//		validator.MinLen("name", form.Name, 3, "Product name must be at least 3 characters"),
//		validator.Email("email", form.Email, "Please enter a valid email address"),
//	)
//	if errs, ok := validator.Extract(err); ok {
//		fmt.Println(errs.Get("name"))
//	}
//
// ValidationErrors matches ErrValidation through errors.Is.
package validator
