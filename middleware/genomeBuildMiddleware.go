package middleware

import (
	"fmt"
	"net/http"

	"pvv/api/contexts"
	gb "pvv/api/models/constants/genome-build"
	"pvv/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to validate the optional `genomeBuild` HTTP query
parameter, defaulting to the build configured for the service
*/
func ValidateOptionalGenomeBuildAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		pc := c.(*contexts.PvvContext)

		buildQP := c.QueryParam("genomeBuild")
		if len(buildQP) == 0 {
			// fall back on the service-wide default
			pc.GenomeBuild = gb.CastToGenomeBuild(pc.Config.Annotation.GenomeBuild)
			return next(pc)
		}

		if !gb.IsKnownGenomeBuild(buildQP) {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("Unknown genome build %s! Check your input", buildQP)))
		}

		// forward a type-safe value down the pipeline
		pc.GenomeBuild = gb.CastToGenomeBuild(buildQP)

		return next(pc)
	}
}
