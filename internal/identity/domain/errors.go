package domain

import (
	apperrors "github.com/allisson/iga/internal/errors"
)

var (
	// ErrIdentityNotFound indicates no identity exists with the requested id.
	ErrIdentityNotFound = apperrors.Wrap(apperrors.ErrNotFound, "identity not found")

	// ErrIdentityAlreadyExists indicates the employee id or primary email is taken.
	ErrIdentityAlreadyExists = apperrors.Wrap(
		apperrors.ErrConflict,
		"identity with this employee id or primary email already exists",
	)

	// ErrEmptyPatch indicates an update request that changes nothing.
	ErrEmptyPatch = apperrors.Wrap(apperrors.ErrInvalidInput, "update must set at least one attribute")
)
