package directory

import (
	"fmt"

	"github.com/Raymond9734/profile-directory/internal/models"
)

// Paginator tracks the current page over a filtered result of known size.
// The current page always stays within [1, max(1, TotalPages)].
type Paginator struct {
	pageSize int
	current  int
	total    int
}

// NewPaginator creates a paginator positioned on page 1
func NewPaginator(pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, current: 1}
}

// SetTotal updates the number of filtered items, pulling the current page
// back inside the valid range when the result shrank.
func (p *Paginator) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	if last := max(1, p.TotalPages()); p.current > last {
		p.current = last
	}
}

// Reset moves back to the first page
func (p *Paginator) Reset() {
	p.current = 1
}

// TotalPages returns ceil(total / pageSize)
func (p *Paginator) TotalPages() int {
	return models.TotalPages(int64(p.total), p.pageSize)
}

// GoToPage moves to page if it is within [1, TotalPages].
// Any other request is ignored and reported as false.
func (p *Paginator) GoToPage(page int) bool {
	if page < 1 || page > p.TotalPages() {
		return false
	}
	p.current = page
	return true
}

// Next moves forward one page when possible
func (p *Paginator) Next() bool {
	return p.GoToPage(p.current + 1)
}

// Prev moves back one page when possible
func (p *Paginator) Prev() bool {
	return p.GoToPage(p.current - 1)
}

// Current returns the 1-based current page
func (p *Paginator) Current() int {
	return p.current
}

// PageSize returns the fixed window size
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Result returns the pagination metadata for the current position
func (p *Paginator) Result() models.PaginationResult {
	return models.NewPaginationResult(p.current, p.pageSize, int64(p.total))
}

// Page returns the window of profiles for a 1-based page
func Page(profiles []*models.Profile, page, pageSize int) []*models.Profile {
	if page < 1 || pageSize < 1 {
		return []*models.Profile{}
	}
	start := models.CalculateOffset(page, pageSize)
	if start > len(profiles) {
		start = len(profiles)
	}
	end := start + pageSize
	if end > len(profiles) {
		end = len(profiles)
	}
	return profiles[start:end]
}

// View is one rendered page of the directory
type View struct {
	Profiles   []*models.Profile       `json:"profiles"`
	Matched    int                     `json:"matched"`
	Summary    string                  `json:"summary"`
	Pagination models.PaginationResult `json:"pagination"`
}

// Render filters profiles with c and slices out the paginator's current page.
// The paginator's total is updated to the filtered count first.
func Render(profiles []*models.Profile, c Criteria, p *Paginator) View {
	filtered := Filter(profiles, c)
	p.SetTotal(len(filtered))
	return View{
		Profiles:   Page(filtered, p.Current(), p.PageSize()),
		Matched:    len(filtered),
		Summary:    Summary(len(filtered)),
		Pagination: p.Result(),
	}
}

// Browse renders the requested page of the filtered profiles with the default page size.
// A page outside the valid range leaves the view on page 1.
func Browse(profiles []*models.Profile, c Criteria, page int) View {
	p := NewPaginator(models.DefaultPageSize)
	p.SetTotal(len(Filter(profiles, c)))
	p.GoToPage(page)
	return Render(profiles, c, p)
}

// Summary formats the result count line
func Summary(n int) string {
	if n == 1 {
		return "1 profile found"
	}
	return fmt.Sprintf("%d profiles found", n)
}
