package outputs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pvv/api/models"
	"pvv/api/models/dtos"
	"pvv/api/tests/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputsGetByKey(t *testing.T) {
	pc, recorder := common.NewServerContext(t, httptest.NewRequest("GET", "/outputs", nil))
	ctx := context.Background()

	require.NoError(t, pc.Repository.CreateInput(ctx, &models.VariantInput{
		PatientId: 1, VariantNumber: 1, Chrom: "17", Pos: 7676154, Ref: "G", Alt: "A",
	}))
	hgvs := "NC_000017.11:g.7676154G>A"
	significance := "Pathogenic"
	stars := 4
	require.NoError(t, pc.Repository.CreateOutput(ctx, &models.VariantOutput{
		PatientId:            1,
		VariantNumber:        1,
		Hgvs:                 &hgvs,
		ClinicalSignificance: &significance,
		StarRating:           &stars,
	}))

	pc.PatientId = 1
	pc.VariantNumber = 1

	require.NoError(t, OutputsGetByKey(pc))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response dtos.OutputResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Data)
	require.NotNil(t, response.Data.Hgvs)
	assert.Equal(t, hgvs, *response.Data.Hgvs)
	require.NotNil(t, response.Data.StarRating)
	assert.Equal(t, 4, *response.Data.StarRating)
}

func TestOutputsGetByKeyMissingIsNotFound(t *testing.T) {
	pc, recorder := common.NewServerContext(t, httptest.NewRequest("GET", "/outputs", nil))

	pc.PatientId = 1
	pc.VariantNumber = 1

	require.NoError(t, OutputsGetByKey(pc))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
