package services

// ValidationError marks failures the caller can fix (missing fields,
// references to rows that do not exist). Handlers map these to 400; a
// gorm.ErrRecordNotFound maps to 404; anything else is an internal fault.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrTitleRequired     = ValidationError("Title required")
	ErrInvalidDepartment = ValidationError("Invalid departmentId")
	ErrInvalidLocation   = ValidationError("Invalid locationId")
)
