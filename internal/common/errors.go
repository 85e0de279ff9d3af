// Package common holds small helpers shared by client layers.
package common

import "errors"

// ErrValidation marks input rejected locally, before any request is sent.
// Form handlers report it inline next to the offending field.
var ErrValidation = errors.New("validation error")
