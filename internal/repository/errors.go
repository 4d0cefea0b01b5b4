// Package repository wraps the MongoDB collections behind typed stores.
// This file defines sentinel error values reused across repositories so
// that handlers can distinguish failure scenarios with errors.Is instead
// of inspecting driver errors.
package repository

import "errors"

// ErrEmailExists is returned by UserRepo.Create when a record with the
// same email already exists. Handlers translate it into the
// "Email already registered!" message.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidCredentials is returned by UserRepo.Authenticate for an
// unknown email or a wrong password. Callers cannot tell the two cases
// apart on purpose.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserNotFound is returned when an operation addresses a user id
// that matches no record.
var ErrUserNotFound = errors.New("user not found")

// ErrProductNotFound is returned when an operation addresses a product
// id that is malformed or matches no record.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidInput is returned for input that fails boundary validation,
// such as a negative or non-numeric price.
var ErrInvalidInput = errors.New("invalid input")
