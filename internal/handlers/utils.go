package handlers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestActor returns slog attributes naming who issued the request.
// Identity attributes are only present behind RequireAuth.
func requestActor(c echo.Context) []any {
	attrs := []any{"ip", c.RealIP(), "trace_id", getTraceID(c)}
	if userID, ok := c.Get("user_id").(uuid.UUID); ok {
		attrs = append(attrs, "user_id", userID.String())
	}
	if role, ok := c.Get("user_role").(string); ok && role != "" {
		attrs = append(attrs, "role", role)
	}
	return attrs
}
