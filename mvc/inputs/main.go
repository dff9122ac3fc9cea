package inputs

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pvv/api/contexts"
	"pvv/api/models"
	"pvv/api/models/dtos"
	"pvv/api/models/dtos/errors"
	"pvv/api/mvc"
	sqliteRepo "pvv/api/repositories/sqlite"

	"github.com/labstack/echo"
)

func InputsGetAll(c echo.Context) error {
	fmt.Printf("[%s] - InputsGetAll hit!\n", time.Now())
	pc := c.(*contexts.PvvContext)
	requestContext := c.Request().Context()

	// narrow down to one patient if a patientId was provided
	var (
		rows []models.VariantInput
		err  error
	)
	patientIdQP := c.QueryParam("patientId")
	if len(patientIdQP) > 0 {
		patientId, conversionErr := strconv.Atoi(patientIdQP)
		if conversionErr != nil || patientId <= 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Please provide a 'patientId' greater than 0!"))
		}
		rows, err = pc.Repository.ListInputsByPatient(requestContext, patientId)
	} else {
		rows, err = pc.Repository.ListInputs(requestContext)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, dtos.InputsResponseDTO{
		Status:  http.StatusOK,
		Message: "Success",
		Data:    rows,
	})
}

func InputsAdd(c echo.Context) error {
	fmt.Printf("[%s] - InputsAdd hit!\n", time.Now())
	pc := c.(*contexts.PvvContext)
	requestContext := c.Request().Context()

	var requestDto dtos.CreateInputRequestDTO
	if err := c.Bind(&requestDto); err != nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Malformed request body! Check your input"))
	}

	if requestDto.PatientId <= 0 || requestDto.VariantNumber <= 0 {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Please provide a 'patient_id' and 'variant_number' greater than 0!"))
	}

	newInput := &models.VariantInput{
		PatientId:     requestDto.PatientId,
		VariantNumber: requestDto.VariantNumber,
		Chrom:         requestDto.Chrom,
		Pos:           requestDto.Pos,
		Id:            requestDto.Id,
		Ref:           requestDto.Ref,
		Alt:           requestDto.Alt,
	}

	err := pc.Repository.CreateInput(requestContext, newInput)
	if sqliteRepo.IsUniqueKeyViolation(err) {
		return c.JSON(http.StatusConflict, errors.CreateSimpleConflict(fmt.Sprintf("Variant (%d, %d) already exists!", requestDto.PatientId, requestDto.VariantNumber)))
	}
	if sqliteRepo.IsNotNullViolation(err) {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Missing one of the required fields 'chrom', 'pos', 'ref', 'alt'!"))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	// echo the row back with its uploaded_at timestamp
	created, err := pc.Repository.GetInput(requestContext, requestDto.PatientId, requestDto.VariantNumber)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusCreated, created)
}

func InputsDelete(c echo.Context) error {
	fmt.Printf("[%s] - InputsDelete hit!\n", time.Now())
	repository, patientId, variantNumber := mvc.RetrieveCommonElements(c)

	err := repository.DeleteInput(c.Request().Context(), patientId, variantNumber)
	if err == sqliteRepo.ErrNotFound {
		return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound(fmt.Sprintf("No input variant (%d, %d) found!", patientId, variantNumber)))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	// the dependent output row (if any) was removed by the cascade
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": fmt.Sprintf("Input variant (%d, %d) and its annotation deleted", patientId, variantNumber),
	})
}
