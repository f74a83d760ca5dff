package catalog

import "errors"

var ErrUnknownStateDriver = errors.New("unknown state driver")
