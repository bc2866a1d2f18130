package pagination

// limit and offset of one page
type Params struct {
	Limit  int
	Offset int
}

// pagination metadata for list responses
type Meta struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}
