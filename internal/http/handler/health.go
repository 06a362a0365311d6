package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

// EgressCheck probes outbound connectivity to the generation upstream.
type EgressCheck func(ctx context.Context) error

// HealthCheck is a pure liveness probe. It touches no dependency, so it
// answers as long as the process serves requests.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	}
}

// ConnectivityCheck verifies the database and outbound egress. Either failure
// yields 503 with the failing checks named, so an operator can tell a dead
// database from a blocked upstream.
func ConnectivityCheck(db *sql.DB, egress EgressCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		checks := fiber.Map{"database": "ok", "egress": "ok"}
		healthy := true

		if err := db.PingContext(ctx); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if egress != nil {
			if err := egress(ctx); err != nil {
				checks["egress"] = err.Error()
				healthy = false
			}
		}

		if !healthy {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"checks": checks,
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"checks": checks,
		})
	}
}
