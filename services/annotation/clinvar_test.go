package annotation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pvv/api/models"
	genomeBuild "pvv/api/models/constants/genome-build"
	sqliteRepo "pvv/api/repositories/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const esummaryResponse = `{
	"result": {
		"uids": ["12345"],
		"12345": {
			"accession": "VCV000012345",
			"title": "NM_000546.6(TP53):c.215C>T (p.Pro72Arg)",
			"germline_classification": {
				"description": "Pathogenic",
				"review_status": "reviewed by expert panel",
				"trait_set": [
					{
						"trait_name": "Li-Fraumeni syndrome",
						"trait_xrefs": [
							{"db_source": "MedGen", "db_id": "C0085390"},
							{"db_source": "OMIM", "db_id": "151623"}
						]
					},
					{
						"trait_name": "Hereditary cancer-predisposing syndrome",
						"trait_xrefs": []
					}
				]
			},
			"variation_set": [
				{"canonical_spdi": "NC_000017.11:7676153:G:A"}
			],
			"genes": [
				{"symbol": "TP53", "geneid": "7157"}
			]
		}
	}
}`

func TestParseClinvarSummary(t *testing.T) {
	t.Run("extracts the clinical fields", func(t *testing.T) {
		result, err := ParseClinvarSummary([]byte(esummaryResponse), "12345")
		require.NoError(t, err)

		assert.True(t, result.Found)
		assert.Equal(t, "12345", result.ClinvarId)
		assert.Equal(t, "VCV000012345", result.Accession)
		assert.Equal(t, "Pathogenic", result.ClinicalSignificance)
		assert.Equal(t, "reviewed by expert panel", result.ReviewStatus)
		assert.Equal(t, "Li-Fraumeni syndrome; Hereditary cancer-predisposing syndrome", result.ConditionsAssoc)
		assert.Equal(t, "NM_000546.6", result.Transcript)
		assert.Equal(t, "NC_000017.11", result.RefSeqId)
		assert.Equal(t, "GeneID:7157", result.HgncId)
		assert.Equal(t, "151623", result.OmimId)
	})

	t.Run("falls back on the id when the accession is missing", func(t *testing.T) {
		result, err := ParseClinvarSummary([]byte(`{"result": {"99": {"title": "x"}}}`), "99")
		require.NoError(t, err)
		assert.Equal(t, "99", result.Accession)
	})

	t.Run("errors when the result block is absent", func(t *testing.T) {
		_, err := ParseClinvarSummary([]byte(`{"header": {}}`), "12345")
		assert.Error(t, err)
	})

	t.Run("errors when the document is absent", func(t *testing.T) {
		_, err := ParseClinvarSummary([]byte(`{"result": {"uids": []}}`), "12345")
		assert.Error(t, err)
	})
}

func newTestAnnotationService(t *testing.T, eutilsUrl string, lovdUrl string) *AnnotationService {
	t.Helper()

	store, err := sqliteRepo.Open(t.TempDir() + "/annotation-test.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &models.Config{}
	cfg.Annotation.EutilsUrl = eutilsUrl
	cfg.Annotation.LovdUrl = lovdUrl
	cfg.Annotation.GenomeBuild = "GRCh38"

	return NewAnnotationService(store, cfg)
}

func TestFetchClinvarVariant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/esearch.fcgi"):
			assert.Equal(t, "clinvar", r.URL.Query().Get("db"))
			assert.Contains(t, r.URL.Query().Get("term"), "[variant name]")
			w.Write([]byte(`{"esearchresult": {"idlist": ["12345"]}}`))
		case strings.HasPrefix(r.URL.Path, "/esummary.fcgi"):
			assert.Equal(t, "12345", r.URL.Query().Get("id"))
			w.Write([]byte(esummaryResponse))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	service := newTestAnnotationService(t, server.URL, server.URL)

	result, err := service.FetchClinvarVariant("NC_000017.11:g.7676154G>A")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "VCV000012345", result.Accession)
	assert.Equal(t, "Pathogenic", result.ClinicalSignificance)
}

func TestFetchClinvarVariantNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"esearchresult": {"idlist": []}}`))
	}))
	defer server.Close()

	service := newTestAnnotationService(t, server.URL, server.URL)

	result, err := service.FetchClinvarVariant("NC_000001.11:g.1A>C")
	require.NoError(t, err)
	assert.False(t, result.Found)
}

func TestAnnotateVariantEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/GRCh38/"):
			w.Write([]byte(lovdResponseWithObjectBlock))
		case strings.HasPrefix(r.URL.Path, "/esearch.fcgi"):
			w.Write([]byte(`{"esearchresult": {"idlist": ["12345"]}}`))
		case strings.HasPrefix(r.URL.Path, "/esummary.fcgi"):
			w.Write([]byte(esummaryResponse))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	service := newTestAnnotationService(t, server.URL, server.URL)
	ctx := context.Background()

	input := &models.VariantInput{
		PatientId:     1,
		VariantNumber: 1,
		Chrom:         "17",
		Pos:           7676154,
		Id:            "rs1042522",
		Ref:           "G",
		Alt:           "A",
	}
	require.NoError(t, service.Repository.CreateInput(ctx, input))

	output, err := service.AnnotateVariant(ctx, input, genomeBuild.GRCh38)
	require.NoError(t, err)

	require.NotNil(t, output.Hgvs)
	assert.Equal(t, "NC_000017.11:g.7676154G>A", *output.Hgvs)
	require.NotNil(t, output.Transcript)
	assert.Equal(t, "NM_000546.6", *output.Transcript)
	require.NotNil(t, output.ClinicalSignificance)
	assert.Equal(t, "Pathogenic", *output.ClinicalSignificance)
	require.NotNil(t, output.StarRating)
	assert.Equal(t, 4, *output.StarRating)

	stored, err := service.Repository.GetOutput(ctx, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, stored.ClinvarId)
	assert.Equal(t, "VCV000012345", *stored.ClinvarId)

	pending, err := service.Repository.ListUnannotated(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
