package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"pvv/api/models"
)

// CreateOutput inserts a derived annotation row for an existing input.
//
// Fails with a ForeignKey ConstraintError when no input row with the
// same (patient_id, variant_number) key exists, and with a UniqueKey
// ConstraintError on key collision.
func (s *Store) CreateOutput(ctx context.Context, output *models.VariantOutput) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outputs
		(patient_id, variant_number,
		 hgvs, clinvar_id, clinical_significance, star_rating,
		 review_status, conditions_assoc, transcript, ref_seq_id,
		 hgnc_id, omim_id, g_change, c_change, p_change)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		output.PatientId, output.VariantNumber,
		output.Hgvs, output.ClinvarId, output.ClinicalSignificance, output.StarRating,
		output.ReviewStatus, output.ConditionsAssoc, output.Transcript, output.RefSeqId,
		output.HgncId, output.OmimId, output.GChange, output.CChange, output.PChange)

	return wrapConstraint(err)
}

// GetOutput looks a single annotation row up by its composite key.
// Returns ErrNotFound when the key doesn't exist.
func (s *Store) GetOutput(ctx context.Context, patientId int, variantNumber int) (*models.VariantOutput, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT patient_id, variant_number,
		       hgvs, clinvar_id, clinical_significance, star_rating,
		       review_status, conditions_assoc, transcript, ref_seq_id,
		       hgnc_id, omim_id, g_change, c_change, p_change, analysed_at
		FROM outputs
		WHERE patient_id = ? AND variant_number = ?`,
		patientId, variantNumber)

	var (
		output     models.VariantOutput
		text       [12]sql.NullString
		starRating sql.NullInt64
	)
	err := row.Scan(
		&output.PatientId, &output.VariantNumber,
		&text[0], &text[1], &text[2], &starRating,
		&text[3], &text[4], &text[5], &text[6],
		&text[7], &text[8], &text[9], &text[10], &text[11],
		&output.AnalysedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	fields := []**string{
		&output.Hgvs, &output.ClinvarId, &output.ClinicalSignificance,
		&output.ReviewStatus, &output.ConditionsAssoc, &output.Transcript,
		&output.RefSeqId, &output.HgncId, &output.OmimId,
		&output.GChange, &output.CChange, &output.PChange,
	}
	for i, field := range fields {
		*field = nilableString(text[i])
	}
	output.StarRating = nilableInt(starRating)

	return &output, nil
}

// DeleteOutput removes a single annotation row, leaving its parent
// input untouched. Returns ErrNotFound when the key doesn't exist.
func (s *Store) DeleteOutput(ctx context.Context, patientId int, variantNumber int) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM outputs
		WHERE patient_id = ? AND variant_number = ?`,
		patientId, variantNumber)
	if err != nil {
		return wrapConstraint(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountOutputs returns the total number of annotation rows.
func (s *Store) CountOutputs(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM outputs").Scan(&count)
	return count, err
}

// ListJoined returns every input row joined with its annotation (if
// present), ordered by composite key; this backs the main listing view.
func (s *Store) ListJoined(ctx context.Context) ([]models.JoinedVariant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
		    i.patient_id,
		    i.variant_number,
		    i.chrom,
		    i.pos,
		    i.id,
		    i.ref,
		    i.alt,
		    o.hgvs,
		    o.clinvar_id,
		    o.clinical_significance,
		    o.star_rating,
		    o.review_status,
		    o.conditions_assoc,
		    o.transcript,
		    o.ref_seq_id,
		    o.hgnc_id,
		    o.omim_id,
		    o.g_change,
		    o.c_change,
		    o.p_change
		FROM inputs AS i
		LEFT JOIN outputs AS o
		ON i.patient_id = o.patient_id
		   AND i.variant_number = o.variant_number
		ORDER BY i.patient_id, i.variant_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	joined := []models.JoinedVariant{}
	for rows.Next() {
		var (
			row        models.JoinedVariant
			vid        sql.NullString
			text       [12]sql.NullString
			starRating sql.NullInt64
		)
		if err := rows.Scan(
			&row.PatientId, &row.VariantNumber,
			&row.Chrom, &row.Pos, &vid, &row.Ref, &row.Alt,
			&text[0], &text[1], &text[2], &starRating,
			&text[3], &text[4], &text[5], &text[6],
			&text[7], &text[8], &text[9], &text[10], &text[11]); err != nil {
			return nil, err
		}

		row.Id = vid.String
		fields := []**string{
			&row.Hgvs, &row.ClinvarId, &row.ClinicalSignificance,
			&row.ReviewStatus, &row.ConditionsAssoc, &row.Transcript,
			&row.RefSeqId, &row.HgncId, &row.OmimId,
			&row.GChange, &row.CChange, &row.PChange,
		}
		for i, field := range fields {
			*field = nilableString(text[i])
		}
		row.StarRating = nilableInt(starRating)

		joined = append(joined, row)
	}
	return joined, rows.Err()
}

func nilableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	value := ns.String
	return &value
}

func nilableInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	value := int(ni.Int64)
	return &value
}
