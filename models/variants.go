package models

import "time"

// VariantInput is a raw uploaded variant call for a given patient,
// keyed by (patient_id, variant_number). Rows are never updated in
// place; a re-upload implies deletion and re-insertion.
type VariantInput struct {
	PatientId     int       `json:"patient_id"`
	VariantNumber int       `json:"variant_number"`
	Chrom         string    `json:"chrom"`
	Pos           int       `json:"pos"`
	Id            string    `json:"id"` // external variant identifier ("." in VCFs); empty means none
	Ref           string    `json:"ref"`
	Alt           string    `json:"alt"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// VariantOutput is the derived clinical annotation for a VariantInput
// with the same composite key. It cannot exist without its parent input
// row and is destroyed along with it.
type VariantOutput struct {
	PatientId            int       `json:"patient_id"`
	VariantNumber        int       `json:"variant_number"`
	Hgvs                 *string   `json:"hgvs"`
	ClinvarId            *string   `json:"clinvar_id"`
	ClinicalSignificance *string   `json:"clinical_significance"`
	StarRating           *int      `json:"star_rating"`
	ReviewStatus         *string   `json:"review_status"`
	ConditionsAssoc      *string   `json:"conditions_assoc"`
	Transcript           *string   `json:"transcript"`
	RefSeqId             *string   `json:"ref_seq_id"`
	HgncId               *string   `json:"hgnc_id"`
	OmimId               *string   `json:"omim_id"`
	GChange              *string   `json:"g_change"`
	CChange              *string   `json:"c_change"`
	PChange              *string   `json:"p_change"`
	AnalysedAt           time.Time `json:"analysed_at"`
}

// JoinedVariant is the left-join projection of an input row and its
// annotation (all annotation fields nil when not yet analysed)
type JoinedVariant struct {
	PatientId     int    `json:"patient_id"`
	VariantNumber int    `json:"variant_number"`
	Chrom         string `json:"chrom"`
	Pos           int    `json:"pos"`
	Id            string `json:"id"`
	Ref           string `json:"ref"`
	Alt           string `json:"alt"`

	Hgvs                 *string `json:"hgvs"`
	ClinvarId            *string `json:"clinvar_id"`
	ClinicalSignificance *string `json:"clinical_significance"`
	StarRating           *int    `json:"star_rating"`
	ReviewStatus         *string `json:"review_status"`
	ConditionsAssoc      *string `json:"conditions_assoc"`
	Transcript           *string `json:"transcript"`
	RefSeqId             *string `json:"ref_seq_id"`
	HgncId               *string `json:"hgnc_id"`
	OmimId               *string `json:"omim_id"`
	GChange              *string `json:"g_change"`
	CChange              *string `json:"c_change"`
	PChange              *string `json:"p_change"`
}
