package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swrzee/console/modules/dashboard/domain/entities/view"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want view.View
	}{
		{"", view.Overview},
		{"overview", view.Overview},
		{"users", view.Users},
		{"services", view.Services},
		{"batches", view.Batches},
		{"bogus", view.Overview},
		{"USERS", view.Overview},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, view.Parse(tt.raw), "tab=%q", tt.raw)
	}
}

func TestURL(t *testing.T) {
	assert.Equal(t, "/dashboard", view.Overview.URL())
	assert.Equal(t, "/dashboard?tab=users", view.Users.URL())
}

func TestAllCoversEveryView(t *testing.T) {
	all := view.All()
	assert.Len(t, all, 4)
	for _, v := range all {
		assert.Equal(t, v, view.Parse(string(v)))
	}
}
