package models

// DefaultPageSize is the number of profile cards shown per page
const DefaultPageSize = 4

// PaginationResult holds pagination metadata
type PaginationResult struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginationResult creates a pagination result
func NewPaginationResult(page, pageSize int, totalCount int64) PaginationResult {
	return PaginationResult{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: TotalPages(totalCount, pageSize),
	}
}

// TotalPages returns ceil(totalCount / pageSize)
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}
	return totalPages
}

// CalculateOffset calculates the slice offset for pagination
func CalculateOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}
