package department

import "errors"

// Department domain errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNameExists         = errors.New("department name already exists for this company")
)
