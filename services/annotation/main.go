package annotation

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"pvv/api/models"
	"pvv/api/models/constants"
	sqliteRepo "pvv/api/repositories/sqlite"
	"pvv/api/utils"

	"github.com/cenkalti/backoff"
)

type (
	AnnotationService struct {
		Initialized bool
		Repository  *sqliteRepo.Store
		Config      *models.Config
		Client      *http.Client
	}
)

func NewAnnotationService(repo *sqliteRepo.Store, cfg *models.Config) *AnnotationService {
	az := &AnnotationService{
		Initialized: true,
		Repository:  repo,
		Config:      cfg,
		Client:      &http.Client{Timeout: 30 * time.Second},
	}

	return az
}

// AnnotateVariant runs the full pipeline for one input row:
// VariantValidator LOVD for the HGVS names, then ClinVar e-utils for
// the clinical fields, and persists the resulting output row
// (replacing any previous annotation for the same key).
func (a *AnnotationService) AnnotateVariant(ctx context.Context, input *models.VariantInput, build constants.GenomeBuild) (*models.VariantOutput, error) {
	fmt.Printf("Processing variant: %s:%d %s->%s\n", input.Chrom, input.Pos, input.Ref, input.Alt)

	lovd, err := a.FetchHgvs(input, build)
	if err != nil {
		return nil, fmt.Errorf("LOVD lookup failed for %s:%d: %w", input.Chrom, input.Pos, err)
	}

	output := &models.VariantOutput{
		PatientId:     input.PatientId,
		VariantNumber: input.VariantNumber,
	}
	output.Hgvs = utils.StringToNilable(lovd.GHgvs)
	output.GChange = utils.StringToNilable(lovd.GChange)
	output.CChange = utils.StringToNilable(lovd.CChange)
	output.PChange = utils.StringToNilable(lovd.PChange)
	output.Transcript = utils.StringToNilable(lovd.ManeSelectTranscript)

	if lovd.GHgvs != "" {
		clinvar, clinvarErr := a.FetchClinvarVariant(lovd.GHgvs)
		if clinvarErr != nil {
			return nil, fmt.Errorf("ClinVar lookup failed for %s: %w", lovd.GHgvs, clinvarErr)
		}

		if clinvar.Found {
			output.ClinvarId = utils.StringToNilable(clinvar.Accession)
			output.ClinicalSignificance = utils.StringToNilable(clinvar.ClinicalSignificance)
			output.ReviewStatus = utils.StringToNilable(clinvar.ReviewStatus)
			output.StarRating = MapReviewStatusToStars(clinvar.ReviewStatus)
			output.ConditionsAssoc = utils.StringToNilable(clinvar.ConditionsAssoc)
			output.RefSeqId = utils.StringToNilable(clinvar.RefSeqId)
			output.HgncId = utils.StringToNilable(clinvar.HgncId)
			output.OmimId = utils.StringToNilable(clinvar.OmimId)
			if output.Transcript == nil {
				output.Transcript = utils.StringToNilable(clinvar.Transcript)
			}
		} else {
			notFound := "Not found"
			output.ClinicalSignificance = &notFound
		}
	}

	// outputs may be recomputed as annotation logic improves;
	// replace any previous row for this key
	deleteErr := a.Repository.DeleteOutput(ctx, input.PatientId, input.VariantNumber)
	if deleteErr != nil && !errors.Is(deleteErr, sqliteRepo.ErrNotFound) {
		return nil, deleteErr
	}
	if createErr := a.Repository.CreateOutput(ctx, output); createErr != nil {
		return nil, createErr
	}

	return output, nil
}

// AnnotateAllPending annotates every input row that has no output row
// yet. Individual variant failures are counted, not fatal.
func (a *AnnotationService) AnnotateAllPending(ctx context.Context, build constants.GenomeBuild) (annotatedCount int, failedCount int, err error) {
	pending, err := a.Repository.ListUnannotated(ctx)
	if err != nil {
		return 0, 0, err
	}

	for index := range pending {
		input := pending[index]
		if _, annotateErr := a.AnnotateVariant(ctx, &input, build); annotateErr != nil {
			fmt.Printf("Error annotating variant (%d, %d): %v\n", input.PatientId, input.VariantNumber, annotateErr)
			failedCount++
			continue
		}
		annotatedCount++
	}

	return annotatedCount, failedCount, nil
}

// getJson performs a GET with exponential backoff on transient
// failures and returns the raw response body.
func (a *AnnotationService) getJson(url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		request, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		request.Header.Set("Accept", "application/json")

		response, err := a.Client.Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		if response.StatusCode == 429 || response.StatusCode >= 500 {
			return fmt.Errorf("transient status %d from %s", response.StatusCode, url)
		}
		if response.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("status %d from %s", response.StatusCode, url))
		}

		body, err = ioutil.ReadAll(response.Body)
		return err
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(operation, retryBackoff); err != nil {
		return nil, err
	}

	// rate limit safety
	time.Sleep(250 * time.Millisecond)

	return body, nil
}
