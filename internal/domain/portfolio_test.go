package domain_test

import (
	"testing"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProject(t *testing.T) {
	t.Run("Fills defaults for partially-populated rows", func(t *testing.T) {
		p := domain.Project{Title: "Bare"}
		domain.NormalizeProject(&p)

		assert.NotNil(t, p.Tech)
		assert.Empty(t, p.Tech)
		assert.NotNil(t, p.Highlights)
		assert.Empty(t, p.Highlights)
		assert.Equal(t, "completed", p.Status)
		assert.Nil(t, p.Demo)
		assert.False(t, p.Featured)
	})

	t.Run("Leaves populated fields alone", func(t *testing.T) {
		demo := "https://relay.example.com"
		p := domain.Project{
			Tech:       []string{"Go", "BoltDB"},
			Highlights: []string{"80k msgs/sec"},
			Status:     "in-progress",
			Featured:   true,
			Demo:       &demo,
		}
		domain.NormalizeProject(&p)

		assert.Equal(t, []string{"Go", "BoltDB"}, p.Tech)
		assert.Equal(t, []string{"80k msgs/sec"}, p.Highlights)
		assert.Equal(t, "in-progress", p.Status)
		assert.True(t, p.Featured)
		assert.Equal(t, &demo, p.Demo)
	})
}
