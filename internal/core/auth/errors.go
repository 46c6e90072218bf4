package auth

import "errors"

// ErrMissingToken means no bearer token was presented at all.
var ErrMissingToken = errors.New("missing token")

// ErrInvalidSignature means the token was tampered with or signed with a
// different key.
var ErrInvalidSignature = errors.New("invalid token signature")

// ErrTokenExpired means the embedded expiry is in the past.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenMalformed means the string is not a decodable token.
var ErrTokenMalformed = errors.New("malformed token")
