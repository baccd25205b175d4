package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		paging     Paging
		count      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"halaman pertama", 45, Paging{Page: 1, PerPage: 20}, 20, 3, true, false},
		{"halaman tengah", 45, Paging{Page: 2, PerPage: 20}, 20, 3, true, true},
		{"halaman terakhir", 45, Paging{Page: 3, PerPage: 20}, 5, 3, false, true},
		{"kosong", 0, Paging{Page: 1, PerPage: 20}, 0, 0, false, false},
	}
	for _, tt := range tests {
		got := BuildPagination(tt.total, tt.paging, tt.count)
		if got.TotalPages != tt.totalPages || got.HasNext != tt.hasNext || got.HasPrev != tt.hasPrev {
			t.Errorf("%s: BuildPagination = %+v, want totalPages=%d hasNext=%v hasPrev=%v",
				tt.name, got, tt.totalPages, tt.hasNext, tt.hasPrev)
		}
	}
}
