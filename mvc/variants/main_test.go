package variants

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pvv/api/models"
	"pvv/api/models/dtos"
	sqliteRepo "pvv/api/repositories/sqlite"
	"pvv/api/tests/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVariants(t *testing.T, ctx context.Context, store *sqliteRepo.Store) {
	t.Helper()

	require.NoError(t, store.CreateInput(ctx, &models.VariantInput{
		PatientId: 1, VariantNumber: 1, Chrom: "17", Pos: 7676154, Ref: "G", Alt: "A",
	}))
	require.NoError(t, store.CreateInput(ctx, &models.VariantInput{
		PatientId: 1, VariantNumber: 2, Chrom: "1", Pos: 155235252, Ref: "C", Alt: "T",
	}))
	require.NoError(t, store.CreateInput(ctx, &models.VariantInput{
		PatientId: 2, VariantNumber: 1, Chrom: "17", Pos: 45983420, Ref: "G", Alt: "T",
	}))

	significance := "Pathogenic"
	require.NoError(t, store.CreateOutput(ctx, &models.VariantOutput{
		PatientId: 1, VariantNumber: 1, ClinicalSignificance: &significance,
	}))
}

func TestVariantsGetAll(t *testing.T) {
	pc, recorder := common.NewServerContext(t, httptest.NewRequest("GET", "/variants", nil))
	seedVariants(t, context.Background(), pc.Repository)

	require.NoError(t, VariantsGetAll(pc))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response dtos.VariantsResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Data, 3)

	// annotated and unannotated rows come back side by side
	assert.NotNil(t, response.Data[0].ClinicalSignificance)
	assert.Nil(t, response.Data[1].ClinicalSignificance)
}

func TestVariantsGetAllFiltersByChromosome(t *testing.T) {
	pc, recorder := common.NewServerContext(t, httptest.NewRequest("GET", "/variants?chromosome=17", nil))
	seedVariants(t, context.Background(), pc.Repository)

	pc.Chromosome = "17"

	require.NoError(t, VariantsGetAll(pc))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response dtos.VariantsResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Data, 2)
	for _, row := range response.Data {
		assert.Equal(t, "17", row.Chrom)
	}
}

func TestGetVariantsOverview(t *testing.T) {
	pc, recorder := common.NewServerContext(t, httptest.NewRequest("GET", "/variants/overview", nil))
	seedVariants(t, context.Background(), pc.Repository)

	require.NoError(t, GetVariantsOverview(pc))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response dtos.VariantsOverviewResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, 3, response.InputsCount)
	assert.Equal(t, 1, response.OutputsCount)
	assert.Equal(t, 2, response.UnannotatedCount)
	assert.Equal(t, map[string]int{"17": 2, "1": 1}, response.Chromosomes)
	assert.Equal(t, map[string]int{"Pathogenic": 1}, response.ClinicalSignificances)
}

func TestGetAllVariantIngestionRequestsStartsEmpty(t *testing.T) {
	pc, recorder := common.NewServerContext(t, httptest.NewRequest("GET", "/variants/ingestion/requests", nil))

	require.NoError(t, GetAllVariantIngestionRequests(pc))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var requests []map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &requests))
	assert.Empty(t, requests)
}
