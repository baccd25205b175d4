// file: internals/features/finance/iuran/service/period_test.go
package service

import (
	"testing"

	"github.com/lib/pq"
)

func TestMonthRangeLabel(t *testing.T) {
	tests := []struct {
		from, to int
		want     string
	}{
		{3, 4, "Maret - April"},
		{1, 12, LabelSetahunPenuh},
		{5, 5, "Mei"},
		{7, 12, "Juli - Desember"},
		{0, 4, LabelSetahunPenuh},  // invalid from
		{3, 13, LabelSetahunPenuh}, // invalid to
		{8, 3, LabelSetahunPenuh},  // terbalik
	}
	for _, tt := range tests {
		if got := MonthRangeLabel(tt.from, tt.to); got != tt.want {
			t.Errorf("MonthRangeLabel(%d, %d) = %q, mau %q", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsPrefixMonths(t *testing.T) {
	tests := []struct {
		name   string
		months pq.Int64Array
		wantK  int
		wantOK bool
	}{
		{"kosong", nil, 0, false},
		{"prefix dua bulan", pq.Int64Array{1, 2}, 2, true},
		{"prefix urutan acak", pq.Int64Array{3, 1, 2}, 3, true},
		{"setahun penuh", pq.Int64Array{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, 12, true},
		{"loncat", pq.Int64Array{1, 3}, 0, false},
		{"hanya maret", pq.Int64Array{3}, 0, false},
		{"duplikat", pq.Int64Array{1, 1, 2}, 0, false},
		{"di luar rentang", pq.Int64Array{0, 1}, 0, false},
		{"bulan 13", pq.Int64Array{13}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := isPrefixMonths(tt.months)
			if k != tt.wantK || ok != tt.wantOK {
				t.Errorf("isPrefixMonths(%v) = (%d, %v), mau (%d, %v)", tt.months, k, ok, tt.wantK, tt.wantOK)
			}
		})
	}
}

func TestValidMonths(t *testing.T) {
	tests := []struct {
		name   string
		months []int64
		want   bool
	}{
		{"kosong", nil, false},
		{"normal", []int64{1, 5, 9}, true},
		{"duplikat", []int64{2, 2}, false},
		{"nol", []int64{0}, false},
		{"tiga belas", []int64{13}, false},
	}
	for _, tt := range tests {
		if got := ValidMonths(tt.months); got != tt.want {
			t.Errorf("%s: ValidMonths(%v) = %v, mau %v", tt.name, tt.months, got, tt.want)
		}
	}
}
