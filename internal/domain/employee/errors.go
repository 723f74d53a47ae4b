package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrNothingToUpdate    = errors.New("no profile fields to update")
)
