package dtos

type LocationCreateRequest struct {
	Title   string `json:"title"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

// LocationUpdateRequest mirrors the create shape with pointer fields so
// absent fields fall back to the stored value.
type LocationUpdateRequest struct {
	Title   *string `json:"title"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Zip     *string `json:"zip"`
}

type LocationCreatedResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// LocationRow is one row of GET /locations, including the number of jobs
// currently referencing the location.
type LocationRow struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
	Count   int64  `json:"count"`
}
