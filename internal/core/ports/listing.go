package ports

// ListParams carries the query parameters shared by every listing endpoint.
// The listing engine clamps PageSize to [1,20] and PageNumber to >= 1.
type ListParams struct {
	Search     string
	SortType   string
	SortOrder  string // "desc" descends; anything else ascends
	PageSize   int
	PageNumber int
}
