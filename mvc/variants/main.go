package variants

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"pvv/api/contexts"
	"pvv/api/models"
	"pvv/api/models/dtos"
	"pvv/api/models/dtos/errors"
	"pvv/api/models/ingest"
	sqliteRepo "pvv/api/repositories/sqlite"
	"pvv/api/services"

	linq "github.com/ahmetb/go-linq"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

func VariantsGetAll(c echo.Context) error {
	fmt.Printf("[%s] - VariantsGetAll hit!\n", time.Now())
	pc := c.(*contexts.PvvContext)

	joined, err := pc.Repository.ListJoined(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	// narrow down by chromosome if one was provided
	if pc.Chromosome != "" {
		filtered := []models.JoinedVariant{}
		linq.From(joined).WhereT(func(row models.JoinedVariant) bool {
			return strings.EqualFold(row.Chrom, pc.Chromosome)
		}).ToSlice(&filtered)
		joined = filtered
	}

	return c.JSON(http.StatusOK, dtos.VariantsResponseDTO{
		Status:  http.StatusOK,
		Message: "Success",
		Data:    joined,
	})
}

func GetVariantsOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetVariantsOverview hit!\n", time.Now())
	pc := c.(*contexts.PvvContext)
	requestContext := c.Request().Context()

	joined, err := pc.Repository.ListJoined(requestContext)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	outputsCount, err := pc.Repository.CountOutputs(requestContext)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	// distribution of variants across chromosomes
	chromosomes := map[string]int{}
	linq.From(joined).GroupByT(
		func(row models.JoinedVariant) string { return row.Chrom },
		func(row models.JoinedVariant) int { return 1 },
	).ToMapByT(&chromosomes,
		func(group linq.Group) string { return group.Key.(string) },
		func(group linq.Group) int { return len(group.Group) })

	// distribution of clinical significances across annotated variants
	significances := map[string]int{}
	linq.From(joined).WhereT(func(row models.JoinedVariant) bool {
		return row.ClinicalSignificance != nil
	}).GroupByT(
		func(row models.JoinedVariant) string { return *row.ClinicalSignificance },
		func(row models.JoinedVariant) int { return 1 },
	).ToMapByT(&significances,
		func(group linq.Group) string { return group.Key.(string) },
		func(group linq.Group) int { return len(group.Group) })

	return c.JSON(http.StatusOK, dtos.VariantsOverviewResponseDTO{
		Status:                http.StatusOK,
		Message:               "Success",
		InputsCount:           len(joined),
		OutputsCount:          outputsCount,
		UnannotatedCount:      len(joined) - outputsCount,
		Chromosomes:           chromosomes,
		ClinicalSignificances: significances,
	})
}

func VariantsIngest(c echo.Context) error {
	fmt.Printf("[%s] - VariantsIngest hit!\n", time.Now())
	pc := c.(*contexts.PvvContext)
	cfg := pc.Config
	ingestionService := pc.IngestionService

	dirPath := c.QueryParam("directory")
	if dirPath == "" {
		dirPath = cfg.Api.VcfPath
	}

	// retrieve file names from query parameter (comma separated), or
	// fall back on everything in the directory
	var fileNames []string
	fileNamesQP := c.QueryParam("fileNames")
	if len(fileNamesQP) > 0 {
		fileNames = strings.Split(fileNamesQP, ",")
	} else {
		discovered, err := ingestionService.FilterVcfFiles(dirPath)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
		}
		fileNames = discovered
	}

	if len(fileNames) == 0 {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("No VCF files found in %s!", dirPath)))
	}

	responseDtos := []ingest.IngestResponseDTO{}
	for _, fileName := range fileNames {
		// reject non-patient files upfront rather than mid-ingestion
		if _, err := services.ExtractPatientId(fileName); err != nil {
			responseDtos = append(responseDtos, ingest.IngestResponseDTO{
				Filename: fileName,
				State:    ingest.Error,
				Message:  err.Error(),
			})
			continue
		}

		newRequestState := &ingest.IngestRequest{
			Id:        uuid.New(),
			Filename:  fileName,
			State:     ingest.Queued,
			CreatedAt: fmt.Sprintf("%v", time.Now()),
		}
		ingestionService.IngestRequestChan <- newRequestState

		go func(vcfFilePath string, requestState *ingest.IngestRequest) {
			// take a spot in the file processing queue, and
			// leave it when done
			ingestionService.ConcurrentFileIngestionQueue <- true
			defer func() {
				<-ingestionService.ConcurrentFileIngestionQueue
			}()

			requestState.State = ingest.Running
			ingestionService.IngestRequestChan <- requestState

			insertedCount, skippedCount, err := ingestionService.ProcessVcf(context.Background(), vcfFilePath)
			if err != nil {
				requestState.State = ingest.Error
				requestState.Message = err.Error()
			} else {
				requestState.State = ingest.Done
				requestState.Message = fmt.Sprintf("%d inserted, %d skipped", insertedCount, skippedCount)
			}
			ingestionService.IngestRequestChan <- requestState
		}(path.Join(dirPath, fileName), newRequestState)

		responseDtos = append(responseDtos, ingest.IngestResponseDTO{
			Id:       newRequestState.Id,
			Filename: fileName,
			State:    ingest.Queued,
			Message:  "Ingest request created",
		})
	}

	return c.JSON(http.StatusOK, responseDtos)
}

func GetAllVariantIngestionRequests(c echo.Context) error {
	fmt.Printf("[%s] - GetAllVariantIngestionRequests hit!\n", time.Now())
	ingestionService := c.(*contexts.PvvContext).IngestionService

	ingestionService.IngestRequestMapMux.RLock()
	defer ingestionService.IngestRequestMapMux.RUnlock()

	m := make([]*ingest.IngestRequest, 0)
	for _, requestState := range ingestionService.IngestRequestMap {
		m = append(m, requestState)
	}
	return c.JSON(http.StatusOK, m)
}

func VariantsAnnotate(c echo.Context) error {
	fmt.Printf("[%s] - VariantsAnnotate hit!\n", time.Now())
	pc := c.(*contexts.PvvContext)
	annotationService := pc.AnnotationService
	requestContext := c.Request().Context()

	patientIdQP := c.QueryParam("patientId")
	variantNumberQP := c.QueryParam("variantNumber")

	// annotate a single variant when a full key was provided,
	// otherwise run through everything still unannotated
	if len(patientIdQP) > 0 || len(variantNumberQP) > 0 {
		patientId, pErr := strconv.Atoi(patientIdQP)
		variantNumber, vErr := strconv.Atoi(variantNumberQP)
		if pErr != nil || vErr != nil {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Please provide both 'patientId' and 'variantNumber' as integers to annotate a single variant!"))
		}

		input, err := pc.Repository.GetInput(requestContext, patientId, variantNumber)
		if err == sqliteRepo.ErrNotFound {
			return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound(fmt.Sprintf("No input variant (%d, %d) found!", patientId, variantNumber)))
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
		}

		if _, err := annotationService.AnnotateVariant(requestContext, input, pc.GenomeBuild); err != nil {
			return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
		}

		return c.JSON(http.StatusOK, dtos.AnnotationRunResponseDTO{
			Status:    http.StatusOK,
			Message:   "Success",
			Annotated: 1,
		})
	}

	annotated, failed, err := annotationService.AnnotateAllPending(requestContext, pc.GenomeBuild)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, dtos.AnnotationRunResponseDTO{
		Status:    http.StatusOK,
		Message:   "Success",
		Annotated: annotated,
		Failed:    failed,
	})
}
