package domain

import "errors"

// ErrNotFound is returned when no record matches the requested identifier.
var ErrNotFound = errors.New("record not found")

// ErrUsernameTaken is returned on registration when the username is in use.
var ErrUsernameTaken = errors.New("username already taken")

// ErrEmailTaken is returned on registration when the email is in use.
var ErrEmailTaken = errors.New("email already taken")

// ErrInvalidCredentials is returned when the supplied password does not match
// the stored hash.
var ErrInvalidCredentials = errors.New("invalid credentials")
