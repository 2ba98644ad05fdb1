package model

import "math"

// Page carries 1-indexed pagination parameters for admin listings.
type Page struct {
	Number  int
	PerPage int
}

// Offset returns the number of rows to skip before this page. It saturates
// at math.MaxInt instead of overflowing for very large page numbers.
func (p Page) Offset() int {
	if p.Number < 1 || p.PerPage <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.PerPage {
		return math.MaxInt
	}
	return (p.Number - 1) * p.PerPage
}

// TotalPages returns ceil(total / PerPage).
func (p Page) TotalPages(total int) int {
	if p.PerPage <= 0 {
		return 0
	}
	return (total + p.PerPage - 1) / p.PerPage
}
