package annotation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Jeffail/gabs"
)

// ClinvarResult holds the clinical fields extracted from the NCBI
// e-utils esearch + esummary responses for one HGVS name.
type ClinvarResult struct {
	Found                bool
	ClinvarId            string
	Accession            string
	ClinicalSignificance string
	ReviewStatus         string
	ConditionsAssoc      string
	Transcript           string
	RefSeqId             string
	HgncId               string
	OmimId               string
}

var transcriptFromTitleRe = regexp.MustCompile(`^[^(]+`)

// FetchClinvarVariant queries ClinVar for an HGVS name: esearch for the
// ClinVar id, then esummary for the clinical details.
func (a *AnnotationService) FetchClinvarVariant(hgvs string) (*ClinvarResult, error) {
	searchUrl := fmt.Sprintf("%s/esearch.fcgi?db=clinvar&term=%s&retmode=json",
		a.Config.Annotation.EutilsUrl,
		url.QueryEscape(fmt.Sprintf("\"%s\"[variant name]", hgvs)))

	searchBody, err := a.getJson(searchUrl)
	if err != nil {
		return nil, err
	}

	searchParsed, err := gabs.ParseJSON(searchBody)
	if err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}

	ids := stringsAtPath(searchParsed, "esearchresult.idlist")
	if len(ids) == 0 {
		fmt.Printf("No ClinVar variants found for HGVS: %s\n", hgvs)
		return &ClinvarResult{Found: false}, nil
	}
	clinvarId := ids[0]

	summaryUrl := fmt.Sprintf("%s/esummary.fcgi?db=clinvar&id=%s&retmode=json",
		a.Config.Annotation.EutilsUrl, clinvarId)

	summaryBody, err := a.getJson(summaryUrl)
	if err != nil {
		return nil, err
	}

	return ParseClinvarSummary(summaryBody, clinvarId)
}

// ParseClinvarSummary extracts the clinical fields from an esummary
// payload for the given ClinVar id.
func ParseClinvarSummary(body []byte, clinvarId string) (*ClinvarResult, error) {
	parsed, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, fmt.Errorf("parsing esummary response: %w", err)
	}

	documents := parsed.Path("result")
	if documents == nil {
		return nil, fmt.Errorf("no result block in esummary response")
	}

	doc := documents.Search(clinvarId)
	if doc == nil {
		return nil, fmt.Errorf("no esummary document for ClinVar id %s", clinvarId)
	}

	result := &ClinvarResult{
		Found:                true,
		ClinvarId:            clinvarId,
		Accession:            stringAtPath(doc, "accession"),
		ClinicalSignificance: stringAtPath(doc, "germline_classification.description"),
		ReviewStatus:         stringAtPath(doc, "germline_classification.review_status"),
	}
	if result.Accession == "" {
		result.Accession = clinvarId
	}

	// transcript from the leading portion of the title,
	// e.g. "NM_000546.6(TP53):c.215C>T (p.Pro72Arg)"
	if title := stringAtPath(doc, "title"); title != "" {
		result.Transcript = strings.TrimSpace(transcriptFromTitleRe.FindString(title))
	}

	// associated conditions and their OMIM cross references
	var conditions []string
	if traits, err := doc.Path("germline_classification.trait_set").Children(); err == nil {
		for _, trait := range traits {
			if name := stringAtPath(trait, "trait_name"); name != "" {
				conditions = append(conditions, name)
			}
			if xrefs, err := trait.Path("trait_xrefs").Children(); err == nil {
				for _, xref := range xrefs {
					if stringAtPath(xref, "db_source") == "OMIM" {
						result.OmimId = stringAtPath(xref, "db_id")
					}
				}
			}
		}
	}
	result.ConditionsAssoc = strings.Join(conditions, "; ")

	// RefSeq sequence id out of the canonical SPDI
	// ("NC_000017.11:7674219:C:T")
	if variations, err := doc.Path("variation_set").Children(); err == nil && len(variations) > 0 {
		spdi := stringAtPath(variations[0], "canonical_spdi")
		if parts := strings.Split(spdi, ":"); len(parts) >= 4 {
			result.RefSeqId = parts[0]
		}
	}

	// gene cross reference
	if genes, err := doc.Path("genes").Children(); err == nil && len(genes) > 0 {
		if geneId := stringAtPath(genes[0], "geneid"); geneId != "" {
			result.HgncId = fmt.Sprintf("GeneID:%s", geneId)
		}
	}

	return result, nil
}

// stringAtPath safely reads a string leaf out of a gabs container.
func stringAtPath(container *gabs.Container, path string) string {
	child := container.Path(path)
	if child == nil {
		return ""
	}
	if value, ok := child.Data().(string); ok {
		return value
	}
	return ""
}

// stringsAtPath safely reads an array of strings out of a gabs container.
func stringsAtPath(container *gabs.Container, path string) []string {
	child := container.Path(path)
	if child == nil {
		return nil
	}

	children, err := child.Children()
	if err != nil {
		return nil
	}

	var values []string
	for _, item := range children {
		if value, ok := item.Data().(string); ok {
			values = append(values, value)
		}
	}
	return values
}
