package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 3 * time.Second

// HealthHandler exposes liveness and readiness probes plus the legacy
// connectivity check used by the web client.
type HealthHandler struct {
	mongoClient *mongo.Client
	redisClient *goredis.Client
}

func NewHealthHandler(mongoClient *mongo.Client, redisClient *goredis.Client) *HealthHandler {
	return &HealthHandler{mongoClient: mongoClient, redisClient: redisClient}
}

// Test answers the client's connectivity check.
//
// @Summary      Backend connectivity check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/test [get]
func (h *HealthHandler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "Backend is connected successfully",
	})
}

// Live reports process liveness.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}

// Ready pings the backing stores and reports per-dependency state.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	checks := map[string]string{"mongo": "up", "redis": "up"}
	healthy := true

	if err := h.mongoClient.Ping(ctx, nil); err != nil {
		checks["mongo"] = "down"
		healthy = false
	}
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		checks["redis"] = "down"
		healthy = false
	}

	code := http.StatusOK
	status := "success"
	if !healthy {
		code = http.StatusServiceUnavailable
		status = "error"
	}
	return c.JSON(code, echo.Map{"status": status, "checks": checks})
}
