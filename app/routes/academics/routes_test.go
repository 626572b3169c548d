package academics

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSetupAcademicsRoutes(t *testing.T) {
	app := fiber.New()
	SetupAcademicsRoutes(app)

	registered := make(map[string]bool)
	for _, routes := range app.Stack() {
		for _, r := range routes {
			registered[r.Method+" "+r.Path] = true
		}
	}

	assert.True(t, registered["GET /api/academics/teachers"], "teacher listing must be routed")
	assert.True(t, registered["GET /api/academics/teachers/:id/subjects"])
	assert.True(t, registered["POST /api/academics/courses"])
	assert.True(t, registered["POST /api/academics/subjects/:id/teachers"])
}
