package domain

import "errors"

// Validation failures (HTTP 400).
var ErrEmailExists = errors.New("user with this email already exists")
var ErrInvalidRole = errors.New("unknown role")

// Authentication failures (HTTP 401). Login mismatch and unknown email
// share ErrInvalidCredentials so callers cannot tell which occurred.
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrUnauthenticated = errors.New("authentication required")

// Authorization failures (HTTP 403). Messages are distinct for UI display;
// the status code is the same for all of them.
var ErrForbidden = errors.New("access forbidden")
var ErrInsufficientRights = errors.New("insufficient rights to manage this role")
var ErrAccountDeactivated = errors.New("account is deactivated")
var ErrSelfRoleChange = errors.New("cannot change your own role")
var ErrSelfDeactivation = errors.New("cannot deactivate your own account")
var ErrSelfDeletion = errors.New("cannot delete your own account")

// Missing entities (HTTP 404).
var ErrUserNotFound = errors.New("user not found")
