package outputs

import (
	"fmt"
	"net/http"
	"time"

	"pvv/api/models/dtos"
	"pvv/api/models/dtos/errors"
	"pvv/api/mvc"
	sqliteRepo "pvv/api/repositories/sqlite"

	"github.com/labstack/echo"
)

func OutputsGetByKey(c echo.Context) error {
	fmt.Printf("[%s] - OutputsGetByKey hit!\n", time.Now())
	repository, patientId, variantNumber := mvc.RetrieveCommonElements(c)

	output, err := repository.GetOutput(c.Request().Context(), patientId, variantNumber)
	if err == sqliteRepo.ErrNotFound {
		return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound(fmt.Sprintf("No annotation for variant (%d, %d) found!", patientId, variantNumber)))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, dtos.OutputResponseDTO{
		Status:  http.StatusOK,
		Message: "Success",
		Data:    output,
	})
}
