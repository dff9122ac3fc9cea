package middleware

import (
	"net/http"
	"strconv"

	"pvv/api/contexts"
	"pvv/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a valid `variantNumber` HTTP query parameter was provided
*/
func MandateVariantNumberAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for variantNumber query parameter
		variantNumberQP := c.QueryParam("variantNumber")
		if len(variantNumberQP) == 0 {
			// if no number was provided return an error
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Missing 'variantNumber' query parameter!"))
		}

		// verify:
		variantNumber, conversionErr := strconv.Atoi(variantNumberQP)
		if conversionErr != nil {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Error converting 'variantNumber' query parameter! Check your input"))
		}

		if variantNumber <= 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Please provide a 'variantNumber' greater than 0!"))
		}

		// forward a type-safe value down the pipeline
		pc := c.(*contexts.PvvContext)
		pc.VariantNumber = variantNumber

		return next(pc)
	}
}
