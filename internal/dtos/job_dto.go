package dtos

import "time"

type JobCreateRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	LocationID   uint       `json:"locationId"`
	DepartmentID uint       `json:"departmentId"`
	ClosingDate  *time.Time `json:"closingDate"`
}

// JobUpdateRequest keeps title/description when they are absent; the two
// foreign keys are always required and closingDate is replaced wholesale
// (sending no closingDate clears it).
type JobUpdateRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	LocationID   uint       `json:"locationId"`
	DepartmentID uint       `json:"departmentId"`
	ClosingDate  *time.Time `json:"closingDate"`
}

// JobListRequest is the combined search/filter/paginate request. Handlers
// start from DefaultJobListRequest before binding, so omitted fields keep
// their defaults; explicitly sent out-of-range values are clamped by the
// service (pageNo to >=1, pageSize to [1,200]).
type JobListRequest struct {
	Q            string `json:"q"`
	PageNo       int    `json:"pageNo"`
	PageSize     int    `json:"pageSize"`
	LocationID   *uint  `json:"locationId"`
	DepartmentID *uint  `json:"departmentId"`
}

// DefaultJobListRequest seeds a listing request with the documented
// defaults; binding overwrites only the fields the caller actually sends.
func DefaultJobListRequest() JobListRequest {
	return JobListRequest{Q: "", PageNo: 1, PageSize: 10}
}

// JobListItem is the reduced projection returned by POST /jobs/list:
// location and department are flattened to their titles.
type JobListItem struct {
	ID          uint       `json:"id"`
	Code        string     `json:"code"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Department  string     `json:"department"`
	PostedDate  time.Time  `json:"postedDate"`
	ClosingDate *time.Time `json:"closingDate"`
}

type JobListResponse struct {
	Total int64         `json:"total"`
	Data  []JobListItem `json:"data"`
}

type DepartmentDetail struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type LocationDetail struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

// JobDetails is the nested shape returned by GET /jobs/{id}.
type JobDetails struct {
	ID          uint             `json:"id"`
	Code        string           `json:"code"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    LocationDetail   `json:"location"`
	Department  DepartmentDetail `json:"department"`
	PostedDate  time.Time        `json:"postedDate"`
	ClosingDate *time.Time       `json:"closingDate"`
}
