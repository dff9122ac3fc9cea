package middleware

import (
	"net/http"
	"strconv"

	"pvv/api/contexts"
	"pvv/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a valid `patientId` HTTP query parameter was provided
*/
func MandatePatientIdAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for patientId query parameter
		patientIdQP := c.QueryParam("patientId")
		if len(patientIdQP) == 0 {
			// if no id was provided return an error
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Missing 'patientId' query parameter!"))
		}

		// verify:
		patientId, conversionErr := strconv.Atoi(patientIdQP)
		if conversionErr != nil {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Error converting 'patientId' query parameter! Check your input"))
		}

		if patientId <= 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Please provide a 'patientId' greater than 0!"))
		}

		// forward a type-safe value down the pipeline
		pc := c.(*contexts.PvvContext)
		pc.PatientId = patientId

		return next(pc)
	}
}
