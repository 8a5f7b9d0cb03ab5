package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Query
		wantPage  int
		wantLimit int
		wantSort  string
	}{
		{"defaults", Query{}, 1, DefaultLimit, DefaultSort},
		{"negative page", Query{Page: -3, Limit: 20}, 1, 20, DefaultSort},
		{"zero limit", Query{Page: 2, Limit: 0}, 2, DefaultLimit, DefaultSort},
		{"limit above max", Query{Page: 1, Limit: 500}, 1, MaxLimit, DefaultSort},
		{"limit at max", Query{Page: 1, Limit: MaxLimit}, 1, MaxLimit, DefaultSort},
		{"custom sort kept", Query{Page: 1, Limit: 10, Sort: "name ASC"}, 1, 10, "name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
			assert.Equal(t, tt.wantSort, tt.in.Sort)
		})
	}
}

func TestConditionSearchOnly(t *testing.T) {
	q := Query{Search: "acme", SearchFields: []string{"name", "email"}}

	sql, args := Compile(q.Condition())
	assert.Equal(t, "(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", sql)
	assert.Equal(t, []interface{}{"%acme%", "%acme%"}, args)
}

func TestConditionFilterAndSearch(t *testing.T) {
	q := Query{
		Filter:       Eq("status", "active"),
		Search:       "bolt",
		SearchFields: []string{"name", "sku"},
	}

	sql, args := Compile(q.Condition())
	assert.Equal(t, "(status = ? AND (LOWER(name) LIKE ? OR LOWER(sku) LIKE ?))", sql)
	assert.Equal(t, []interface{}{"active", "%bolt%", "%bolt%"}, args)
}

func TestConditionNoSearchFields(t *testing.T) {
	// A search term without fields to match falls back to the filter alone
	q := Query{Filter: Eq("role", "staff"), Search: "ignored"}

	sql, args := Compile(q.Condition())
	assert.Equal(t, "role = ?", sql)
	assert.Equal(t, []interface{}{"staff"}, args)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(1, 10, 25)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(25), meta.TotalCount)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 2, *meta.NextPage)
	assert.Nil(t, meta.PrevPage)
}

func TestBuildMetaLastPage(t *testing.T) {
	meta := BuildMeta(3, 10, 25)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
	assert.Nil(t, meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 2, *meta.PrevPage)
}

func TestBuildMetaPageBeyondLast(t *testing.T) {
	// The reported page clamps down to the last page
	meta := BuildMeta(9, 10, 25)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestBuildMetaEmpty(t *testing.T) {
	meta := BuildMeta(1, 10, 0)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
	assert.Nil(t, meta.NextPage)
	assert.Nil(t, meta.PrevPage)
}

func TestBuildMetaExactMultiple(t *testing.T) {
	meta := BuildMeta(2, 10, 20)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.False(t, meta.HasNextPage)
}

func TestErrorCode(t *testing.T) {
	err := wrapErr(assert.AnError)
	assert.Equal(t, ErrCodePagination, err.Code)
	assert.False(t, err.Success)
	assert.Equal(t, assert.AnError.Error(), err.Error())
}
