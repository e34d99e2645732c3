package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter_Offset(t *testing.T) {
	tests := []struct {
		name     string
		filter   PageFilter
		expected int
	}{
		{"first page", PageFilter{Page: 1, PageSize: 20}, 0},
		{"third page", PageFilter{Page: 3, PageSize: 20}, 40},
		{"zero page clamps to start", PageFilter{Page: 0, PageSize: 20}, 0},
		{"negative page clamps to start", PageFilter{Page: -2, PageSize: 20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Offset())
		})
	}
}

func TestPageFilter_Limit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, PageFilter{Page: 1}.Limit())
	assert.Equal(t, 5, PageFilter{Page: 1, PageSize: 5}.Limit())
}

func TestSortFilter_OrderClause(t *testing.T) {
	assert.Equal(t, "", SortFilter{}.OrderClause())
	assert.Equal(t, "created_at DESC", SortFilter{SortBy: "created_at", SortOrder: "desc"}.OrderClause())
	assert.Equal(t, "name ASC", SortFilter{SortBy: "name"}.OrderClause())
}
