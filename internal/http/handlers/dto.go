package handlers

// coordinatesDTO is the wire form of a lat/lng pair.
type coordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// createRequestDTO is the POST /requests payload.
type createRequestDTO struct {
	Priority      string          `json:"priority"`
	CenterName    string          `json:"center_name"`
	CenterID      string          `json:"center_id"`
	CenterAddress string          `json:"center_address"`
	Coordinates   *coordinatesDTO `json:"coordinates"`
	CallerName    string          `json:"caller_name"`
	CallerNumber  string          `json:"caller_number"`
	Notes         string          `json:"notes"`
	Route         string          `json:"route"`
	SampleType    string          `json:"sample_type"`
	TestIDs       []string        `json:"test_ids"`
	TestNames     []string        `json:"test_names"`
}

// createdDTO is the POST /requests response body.
type createdDTO struct {
	ID string `json:"id"`
}

// updateStatusDTO is the PATCH /requests/{id}/status payload.
type updateStatusDTO struct {
	Status string `json:"status"`
}

// requestDTO is the wire form of a collection request.
type requestDTO struct {
	ID            string         `json:"id"`
	SampleID      string         `json:"sample_id"`
	Status        string         `json:"status"`
	Priority      string         `json:"priority"`
	CenterName    string         `json:"center_name"`
	CenterID      string         `json:"center_id,omitempty"`
	CenterAddress string         `json:"center_address,omitempty"`
	Coordinates   coordinatesDTO `json:"coordinates"`
	CallerName    string         `json:"caller_name,omitempty"`
	CallerNumber  string         `json:"caller_number,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	Route         string         `json:"route,omitempty"`
	SampleType    string         `json:"sample_type"`
	TestIDs       []string       `json:"test_ids,omitempty"`
	TestNames     []string       `json:"test_names,omitempty"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
	RequestedAt   string         `json:"requested_at,omitempty"`
}

// centerDTO is the wire form of a lab-partner center.
type centerDTO struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	ContactPerson string         `json:"contact_person,omitempty"`
	Coordinates   coordinatesDTO `json:"coordinates"`
	Status        string         `json:"status"`
	Route         string         `json:"route,omitempty"`
}

// statsDTO is the GET /stats response body.
type statsDTO struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}
