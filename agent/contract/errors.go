package contract

import "errors"

var (
	ErrModelInvoke           = errors.New("model invoke failed")
	ErrSchemaViolation       = errors.New("model response violates schema")
	ErrValidation            = errors.New("validation failed")
	ErrNoSpecialist          = errors.New("no specialist registered for intent")
	ErrSpecialistUnavailable = errors.New("specialist construction failed")
	ErrCapabilityUnavailable = errors.New("capability is not configured")
)
