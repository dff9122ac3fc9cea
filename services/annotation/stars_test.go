package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapReviewStatusToStars(t *testing.T) {
	cases := []struct {
		status string
		stars  int
	}{
		{"reviewed by expert panel", 4},
		{"criteria provided, multiple submitters, no conflicts", 3},
		{"criteria provided, conflicting classifications from multiple submitters", 2},
		{"criteria provided, single submitter", 1},
		{"no assertion criteria provided", 0},
		{"no assertion provided", 0},
		{"", 0},
	}

	for _, c := range cases {
		t.Run(c.status, func(t *testing.T) {
			stars := MapReviewStatusToStars(c.status)
			if assert.NotNil(t, stars) {
				assert.Equal(t, c.stars, *stars)
			}
		})
	}

	t.Run("unrecognized statuses are unrated", func(t *testing.T) {
		assert.Nil(t, MapReviewStatusToStars("practice guideline pending"))
	})
}
