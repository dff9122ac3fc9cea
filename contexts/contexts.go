package contexts

import (
	"pvv/api/models"
	"pvv/api/models/constants"
	sqliteRepo "pvv/api/repositories/sqlite"
	"pvv/api/services"
	"pvv/api/services/annotation"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the variant store and other global singletons
	PvvContext struct {
		echo.Context
		Config            *models.Config
		Repository        *sqliteRepo.Store
		IngestionService  *services.IngestionService
		AnnotationService *annotation.AnnotationService

		// type-safe attributes validated by middleware
		PatientId     int
		VariantNumber int
		Chromosome    string
		GenomeBuild   constants.GenomeBuild
	}
)
