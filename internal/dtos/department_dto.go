package dtos

type DepartmentCreateRequest struct {
	Title string `json:"title"`
}

// DepartmentUpdateRequest uses a pointer so "field absent" can be told apart
// from "field set to empty"; absent fields keep their current value.
type DepartmentUpdateRequest struct {
	Title *string `json:"title"`
}

type DepartmentCreatedResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// DepartmentRow is one row of GET /departments, including the number of
// jobs currently referencing the department.
type DepartmentRow struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Count int64  `json:"count"`
}
