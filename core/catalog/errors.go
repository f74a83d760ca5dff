package catalog

import "errors"

// ErrMissingToken is returned when the login response carries no token.
var ErrMissingToken = errors.New("login response did not include a token")
