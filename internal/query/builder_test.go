package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_PaginationDefaultsAndClamping(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{"absent", "", "", 1, 10, 0},
		{"normal", "3", "20", 3, 20, 40},
		{"zero limit", "1", "0", 1, 1, 0},
		{"negative limit", "1", "-5", 1, 1, 0},
		{"oversized limit", "2", "250", 2, 100, 100},
		{"negative page", "-2", "10", 1, 10, 0},
		{"garbage", "abc", "xyz", 1, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Build(Params{Page: tc.page, Limit: tc.limit}, "")
			assert.Equal(t, tc.wantPage, q.Page)
			assert.Equal(t, tc.wantLimit, q.Limit)
			assert.Equal(t, tc.wantSkip, q.Skip)
			assert.GreaterOrEqual(t, q.Limit, 1)
			assert.LessOrEqual(t, q.Limit, MaxLimit)
			assert.Equal(t, (q.Page-1)*q.Limit, q.Skip)
		})
	}
}

func TestBuild_SortAllowList(t *testing.T) {
	q := Build(Params{SortBy: "price", SortOrder: "asc"}, "")
	assert.Equal(t, "price", q.SortColumn)
	assert.False(t, q.SortDesc)

	// App-level names translate to storage columns.
	q = Build(Params{SortBy: "finalTotalPrice"}, "")
	assert.Equal(t, "final_total_price", q.SortColumn)
	assert.True(t, q.SortDesc)

	// Outside the allow-list falls back to the creation-time column.
	for _, bad := range []string{"", "password_hash", "id; DROP TABLE products", "createdBy"} {
		q = Build(Params{SortBy: bad}, "")
		assert.Equal(t, "created_at", q.SortColumn, "sortBy=%q", bad)
	}

	// Anything other than "asc" sorts descending.
	for _, ord := range []string{"", "desc", "ASC", "random"} {
		q = Build(Params{SortOrder: ord}, "")
		assert.True(t, q.SortDesc, "sortOrder=%q", ord)
	}
}

func TestBuild_CategoryFilter(t *testing.T) {
	q := Build(Params{Categories: "Books, Electronics ,Weapons,"}, "")
	assert.Equal(t, []string{"Books", "Electronics"}, q.Categories)

	// Nothing valid survives: no in-set filter at all.
	q = Build(Params{Categories: "Weapons,Gadgets"}, "")
	assert.Empty(t, q.Categories)
}

func TestBuild_OwnedByMe(t *testing.T) {
	// Bound only to the verified identity.
	q := Build(Params{OwnedByMe: "1"}, "caller-1")
	assert.Equal(t, "caller-1", q.OwnerID)

	// No verified identity: flag is ignored.
	q = Build(Params{OwnedByMe: "1"}, "")
	assert.Empty(t, q.OwnerID)

	// Flag not set: no owner filter regardless of identity.
	q = Build(Params{}, "caller-1")
	assert.Empty(t, q.OwnerID)
}
