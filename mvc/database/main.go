package database

import (
	"fmt"
	"net/http"
	"time"

	"pvv/api/contexts"
	"pvv/api/models/dtos"
	"pvv/api/models/dtos/errors"

	"github.com/labstack/echo"
)

// DatabaseReset drops and recreates both tables. Destructive and
// irreversible; exposed as its own explicit POST endpoint and never
// triggered by any other route.
func DatabaseReset(c echo.Context) error {
	fmt.Printf("[%s] - DatabaseReset hit!\n", time.Now())
	pc := c.(*contexts.PvvContext)

	if err := pc.Repository.Reset(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, dtos.DatabaseResetResponseDTO{
		Status:  http.StatusOK,
		Message: "Database reset: inputs and outputs dropped and recreated",
	})
}
