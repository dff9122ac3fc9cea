package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const lovdResponseWithObjectBlock = `{
	"17:7676154:G:A": {
		"NC_000017.11:g.7676154G>A": {
			"g_hgvs": "NC_000017.11:g.7676154G>A",
			"selected_build": "GRCh38",
			"hgvs_t_and_p": {
				"mane_select": "NM_000546.6",
				"t_hgvs": "NM_000546.6:c.215C>T",
				"p_hgvs_tlc": "NP_000537.3:p.(Pro72Arg)"
			}
		}
	},
	"metadata": {
		"variantvalidator_version": "2.2.0"
	}
}`

const lovdResponseWithStringBlock = `{
	"17:7676154:G:A": {
		"NC_000017.11:g.7676154G>A": {
			"g_hgvs": "NC_000017.11:g.7676154G>A",
			"selected_build": "GRCh38",
			"hgvs_t_and_p": "NM_000546.6:c.215C>T (p.(Pro72Arg))"
		}
	}
}`

func TestParseLovdResponse(t *testing.T) {
	t.Run("extracts fields from an object transcript block", func(t *testing.T) {
		result, err := ParseLovdResponse([]byte(lovdResponseWithObjectBlock))
		assert.NoError(t, err)

		assert.Equal(t, "NC_000017.11:g.7676154G>A", result.GHgvs)
		assert.Equal(t, "GRCh38", result.SelectedBuild)
		assert.Equal(t, "NM_000546.6", result.ManeSelectTranscript)
		assert.Equal(t, "g.7676154G>A", result.GChange)
		assert.Equal(t, "c.215C>T", result.CChange)
		assert.Equal(t, "p.(Pro72Arg)", result.PChange)
	})

	t.Run("falls back on pattern matching for string transcript blocks", func(t *testing.T) {
		result, err := ParseLovdResponse([]byte(lovdResponseWithStringBlock))
		assert.NoError(t, err)

		assert.Equal(t, "NM_000546.6", result.ManeSelectTranscript)
		assert.Equal(t, "c.215C>T", result.CChange)
		assert.Equal(t, "p.(Pro72Arg)", result.PChange)
	})

	t.Run("errors when no variant block is present", func(t *testing.T) {
		_, err := ParseLovdResponse([]byte(`{"metadata": {}}`))
		assert.Error(t, err)
	})

	t.Run("errors on malformed JSON", func(t *testing.T) {
		_, err := ParseLovdResponse([]byte(`{not json`))
		assert.Error(t, err)
	})
}
