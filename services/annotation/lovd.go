package annotation

import (
	"fmt"
	"regexp"
	"strings"

	"pvv/api/models"
	"pvv/api/models/constants"

	"github.com/Jeffail/gabs"
	"github.com/mitchellh/mapstructure"
)

// LovdResult captures what the VariantValidator LOVD endpoint knows
// about a single genomic variant.
type LovdResult struct {
	GHgvs                string
	SelectedBuild        string
	ManeSelectTranscript string
	GChange              string
	CChange              string
	PChange              string
}

var (
	maneTranscriptRe = regexp.MustCompile(`NM_\d+\.\d+`)
	cChangeRe        = regexp.MustCompile(`c\.[0-9_+\-*]+[A-Za-z>=_]+[A-Za-z0-9]*`)
	pChangeRe        = regexp.MustCompile(`p\.\(?[A-Za-z][a-z]{2}[0-9]+[A-Za-z*=][a-z]*\)?`)
)

// FetchHgvs queries the VariantValidator LOVD API for the HGVS names
// and MANE select transcript of one variant.
func (a *AnnotationService) FetchHgvs(input *models.VariantInput, build constants.GenomeBuild) (*LovdResult, error) {
	variantDesc := fmt.Sprintf("%s:%d:%s:%s", input.Chrom, input.Pos, input.Ref, input.Alt)
	url := fmt.Sprintf("%s/%s/%s/all/mane/True/True?content-type=application/json",
		a.Config.Annotation.LovdUrl, build, variantDesc)

	body, err := a.getJson(url)
	if err != nil {
		return nil, err
	}

	return ParseLovdResponse(body)
}

// ParseLovdResponse digs the variant block out of an LOVD payload. The
// response nests the data under dynamic keys (the variant descriptions
// themselves), so the outer layers are walked rather than unmarshalled.
func ParseLovdResponse(body []byte) (*LovdResult, error) {
	jsonParsed, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, fmt.Errorf("parsing LOVD response: %w", err)
	}

	outerChildren, err := jsonParsed.ChildrenMap()
	if err != nil {
		return nil, fmt.Errorf("unexpected LOVD response shape: %w", err)
	}

	for outerKey, outer := range outerChildren {
		// variant blocks are keyed by descriptions like
		// "17:45983420:G:T"; skip the metadata block
		if outerKey == "metadata" || !strings.Contains(outerKey, ":") {
			continue
		}

		innerChildren, err := outer.ChildrenMap()
		if err != nil {
			continue
		}

		for _, inner := range innerChildren {
			var block struct {
				GHgvs         string      `mapstructure:"g_hgvs"`
				HgvsTAndP     interface{} `mapstructure:"hgvs_t_and_p"`
				SelectedBuild string      `mapstructure:"selected_build"`
			}
			if decodeErr := mapstructure.Decode(inner.Data(), &block); decodeErr != nil {
				continue
			}

			result := &LovdResult{
				GHgvs:         block.GHgvs,
				SelectedBuild: block.SelectedBuild,
			}

			// g_change is the coordinate part of the genomic HGVS
			if separator := strings.Index(block.GHgvs, ":"); separator != -1 {
				result.GChange = block.GHgvs[separator+1:]
			}

			fillFromTranscriptBlock(result, block.HgvsTAndP)

			return result, nil
		}
	}

	return nil, fmt.Errorf("no variant block in LOVD response")
}

// fillFromTranscriptBlock extracts the MANE select transcript and the
// coding/protein changes. hgvs_t_and_p sometimes comes back as an
// object and sometimes as a plain string, so this falls back on crude
// pattern matching over the flattened value.
func fillFromTranscriptBlock(result *LovdResult, hgvsTAndP interface{}) {
	if hgvsTAndP == nil {
		return
	}

	if asMap, ok := hgvsTAndP.(map[string]interface{}); ok {
		if mane, ok := asMap["mane_select"].(string); ok {
			result.ManeSelectTranscript = mane
		}
	}

	flattened := fmt.Sprint(hgvsTAndP)

	if result.ManeSelectTranscript == "" {
		result.ManeSelectTranscript = maneTranscriptRe.FindString(flattened)
	}
	result.CChange = cChangeRe.FindString(flattened)
	result.PChange = pChangeRe.FindString(flattened)
}
