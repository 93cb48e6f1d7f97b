// Package query turns untrusted list parameters into a bounded,
// deterministic storage query. Invalid input degrades to safe defaults
// rather than erroring; listing is a low-risk read path.
package query

import (
	"strconv"
	"strings"

	"tradepost/internal/domain"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	defaultSortColumn = "created_at"
)

// Params are the raw, untrusted query parameters of a list request.
type Params struct {
	Page       string
	Limit      string
	SortBy     string
	SortOrder  string
	Categories string
	OwnedByMe  string
}

// Query is the bounded result consumed by the storage layer.
type Query struct {
	Categories []string // in-set filter on the category column
	OwnerID    string   // equality filter, bound only to the verified caller
	SortColumn string
	SortDesc   bool
	Page       int
	Limit      int
	Skip       int
}

// Build assembles a Query. callerID is the identity attached by the
// identity guard; it is the only source for the ownedByMe filter, so a
// client-supplied owner value can never widen the result set.
func Build(p Params, callerID string) Query {
	page := intOrDefault(p.Page, 1)
	if page < 1 {
		page = 1
	}
	limit := intOrDefault(p.Limit, DefaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	col, ok := domain.ProductSortFields.Column(p.SortBy)
	if !ok {
		col = defaultSortColumn
	}

	q := Query{
		SortColumn: col,
		SortDesc:   p.SortOrder != "asc",
		Page:       page,
		Limit:      limit,
		Skip:       (page - 1) * limit,
	}

	if p.Categories != "" {
		for _, raw := range strings.Split(p.Categories, ",") {
			c := strings.TrimSpace(raw)
			if domain.ValidCategory(c) {
				q.Categories = append(q.Categories, c)
			}
		}
	}

	if p.OwnedByMe == "1" && callerID != "" {
		q.OwnerID = callerID
	}

	return q
}

func intOrDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
