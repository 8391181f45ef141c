package store

// SortOrder is the direction of a sorted listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DefaultPageSize is used when a listing request does not specify a size.
const DefaultPageSize = 20

// MaxPageSize caps the number of rows a single page may request.
const MaxPageSize = 100

// PageRequest describes pagination and ordering for list operations.
// Page is 1-based. SortBy is matched against a per-store whitelist of
// sortable columns; unknown values fall back to the store's default.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder SortOrder
}

// Normalize clamps the request into valid bounds and fills defaults.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		p.SortOrder = SortAsc
	}
	return p
}

// Offset returns the row offset for the normalized request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}
