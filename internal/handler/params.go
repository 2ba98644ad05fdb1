package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gurusoftware/backend/internal/model"
)

// PageConfig bounds the page size accepted by admin listings.
type PageConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

// parsePage reads page and per_page from the query string. Missing,
// non-numeric or non-positive values fall back to 1 and DefaultPerPage;
// per_page is capped at MaxPerPage and page at the largest value whose
// offset fits in an int.
func (c PageConfig) parsePage(r *http.Request) model.Page {
	p := model.Page{Number: 1, PerPage: c.DefaultPerPage}
	q := r.URL.Query()
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		p.Number = n
	}
	if n, err := strconv.Atoi(q.Get("per_page")); err == nil && n > 0 {
		p.PerPage = n
	}
	if c.MaxPerPage > 0 && p.PerPage > c.MaxPerPage {
		p.PerPage = c.MaxPerPage
	}
	// (page-1)*per_page must fit in an int; larger pages are empty anyway
	if p.PerPage > 0 && p.Number > math.MaxInt/p.PerPage {
		p.Number = math.MaxInt / p.PerPage
	}
	return p
}

// pathID parses the {id} path value as a positive integer.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// statusUpdateRequest is the PUT body for admin record updates.
// Status is nil when the field is absent.
type statusUpdateRequest struct {
	Status *string `json:"status"`
}
