package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams(t *testing.T) {
	params := QueryParams(1, 10)
	assert.Equal(t, "10", params.Get("limit"))
	assert.Equal(t, "0", params.Get("offset"))

	params = QueryParams(3, 10)
	assert.Equal(t, "10", params.Get("limit"))
	assert.Equal(t, "20", params.Get("offset"))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name      string
		itemCount int
		pageSize  int
		want      int
	}{
		{"zero items is zero pages", 0, 10, 0},
		{"one item", 1, 10, 1},
		{"exactly one page", 10, 10, 1},
		{"one item over", 11, 10, 2},
		{"partial last page", 25, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.itemCount, tt.pageSize))
		})
	}
}

func TestFromCount(t *testing.T) {
	l := FromCount([]string{"a", "b"}, 11, 10)
	assert.Equal(t, []string{"a", "b"}, l.Values)
	assert.Equal(t, 2, l.Total)
}

func TestReplace_FirstMatchOnly(t *testing.T) {
	l := List[int]{Values: []int{1, 2, 2, 3}, Total: 1}

	got := Replace(l, func(v int) bool { return v == 2 }, 9)

	assert.Equal(t, []int{1, 9, 2, 3}, got.Values)
	assert.Equal(t, 1, got.Total)
	// Original untouched.
	assert.Equal(t, []int{1, 2, 2, 3}, l.Values)
}

func TestReplace_NoMatchLeavesListUnchanged(t *testing.T) {
	l := List[int]{Values: []int{1, 2}, Total: 1}

	got := Replace(l, func(v int) bool { return v == 7 }, 9)

	assert.Equal(t, []int{1, 2}, got.Values)
}
