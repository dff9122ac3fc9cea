package middleware

import (
	"fmt"
	"net/http"

	"pvv/api/contexts"
	"pvv/api/models/constants/chromosome"
	"pvv/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure the `chromosome` HTTP query parameter,
if present, names a valid human chromosome
*/
func ValidateOptionalChromosomeAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		chromQP := c.QueryParam("chromosome")

		// if no chromosome was provided, continue as a wildcard
		if len(chromQP) > 0 && !chromosome.IsValidHumanChromosome(chromQP) {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("Invalid chromosome %s! Check your input", chromQP)))
		}

		// forward a type-safe value down the pipeline
		pc := c.(*contexts.PvvContext)
		pc.Chromosome = chromQP

		return next(pc)
	}
}
