package mvc

import (
	"pvv/api/contexts"
	sqliteRepo "pvv/api/repositories/sqlite"

	"github.com/labstack/echo"
)

// RetrieveCommonElements pulls the store and the middleware-validated
// composite key out of the request context.
func RetrieveCommonElements(c echo.Context) (*sqliteRepo.Store, int, int) {
	pc := c.(*contexts.PvvContext)
	return pc.Repository, pc.PatientId, pc.VariantNumber
}
