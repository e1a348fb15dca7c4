package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridworks/internal/domain"
)

func TestNormalizePageDefaults(t *testing.T) {
	in := domain.NormalizePage(domain.PageQuery{})
	assert.Equal(t, 1, in.Page)
	assert.Equal(t, domain.DefaultPerPage, in.PerPage)
	assert.Equal(t, domain.SortAsc, in.SortDir)
	assert.Empty(t, in.Sort)
	assert.Empty(t, in.Filter)
}

func TestNormalizePageClampsAndFallsBack(t *testing.T) {
	cases := []struct {
		name string
		q    domain.PageQuery
		want domain.PageInput
	}{
		{
			name: "negative page",
			q:    domain.PageQuery{Page: -3, PerPage: 25},
			want: domain.PageInput{Page: 1, PerPage: 25, SortDir: domain.SortAsc},
		},
		{
			name: "per_page above cap",
			q:    domain.PageQuery{Page: 2, PerPage: 5000},
			want: domain.PageInput{Page: 2, PerPage: domain.MaxPerPage, SortDir: domain.SortAsc},
		},
		{
			name: "invalid sort_dir",
			q:    domain.PageQuery{Page: 1, PerPage: 10, SortDir: "sideways"},
			want: domain.PageInput{Page: 1, PerPage: 10, SortDir: domain.SortAsc},
		},
		{
			name: "desc preserved",
			q:    domain.PageQuery{Page: 1, PerPage: 10, Sort: "full_name", SortDir: "desc"},
			want: domain.PageInput{Page: 1, PerPage: 10, Sort: "full_name", SortDir: domain.SortDesc},
		},
		{
			name: "filter passes through verbatim",
			q:    domain.PageQuery{Filter: "  weld% "},
			want: domain.PageInput{Page: 1, PerPage: domain.DefaultPerPage, SortDir: domain.SortAsc, Filter: "  weld% "},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.NormalizePage(tc.q))
		})
	}
}

func TestNormalizePageWithConfiguredBounds(t *testing.T) {
	bounds := domain.PageBounds{PerPage: 25, MaxPerPage: 50}

	in := domain.NormalizePageWith(domain.PageQuery{}, bounds)
	assert.Equal(t, 25, in.PerPage)

	in = domain.NormalizePageWith(domain.PageQuery{PerPage: 500}, bounds)
	assert.Equal(t, 50, in.PerPage)

	// Zero bounds behave exactly like NormalizePage.
	in = domain.NormalizePageWith(domain.PageQuery{}, domain.PageBounds{})
	assert.Equal(t, domain.DefaultPerPage, in.PerPage)
}

func TestPageInputOffset(t *testing.T) {
	in := domain.NormalizePage(domain.PageQuery{Page: 3, PerPage: 20})
	assert.Equal(t, 40, in.Offset())
}

func TestStatusDefaultsAreValid(t *testing.T) {
	assert.True(t, domain.DefaultEmployeeStatus.Valid())
	assert.True(t, domain.DefaultEquipmentStatus.Valid())
	assert.True(t, domain.DefaultProductionStatus.Valid())
	assert.False(t, domain.EmployeeStatus("RETIRED").Valid())
}
