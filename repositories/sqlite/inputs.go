package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pvv/api/models"
	"pvv/api/utils"
)

const inputColumns = "patient_id, variant_number, chrom, pos, id, ref, alt, uploaded_at"

// CreateInput inserts a new raw variant row.
//
// Fails with a UniqueKey ConstraintError if the (patient_id,
// variant_number) key already exists, and with a NotNull
// ConstraintError when chrom/ref/alt are missing (empty strings are
// persisted as NULL so the engine enforces presence).
func (s *Store) CreateInput(ctx context.Context, input *models.VariantInput) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inputs
		(patient_id, variant_number, chrom, pos, id, ref, alt)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.PatientId, input.VariantNumber,
		utils.StringToNilable(input.Chrom), input.Pos,
		utils.StringToNilable(input.Id),
		utils.StringToNilable(input.Ref), utils.StringToNilable(input.Alt))

	return wrapConstraint(err)
}

// GetInput looks a single input row up by its composite key.
// Returns ErrNotFound when the key doesn't exist.
func (s *Store) GetInput(ctx context.Context, patientId int, variantNumber int) (*models.VariantInput, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM inputs
		WHERE patient_id = ? AND variant_number = ?`, inputColumns),
		patientId, variantNumber)

	input, err := scanInput(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return input, err
}

// ListInputs returns all input rows ordered by composite key.
func (s *Store) ListInputs(ctx context.Context) ([]models.VariantInput, error) {
	return s.listInputs(ctx, fmt.Sprintf(`
		SELECT %s FROM inputs
		ORDER BY patient_id, variant_number`, inputColumns))
}

// ListInputsByPatient returns all input rows for one patient.
// Served by the composite primary key's patient_id prefix.
func (s *Store) ListInputsByPatient(ctx context.Context, patientId int) ([]models.VariantInput, error) {
	return s.listInputs(ctx, fmt.Sprintf(`
		SELECT %s FROM inputs
		WHERE patient_id = ?
		ORDER BY variant_number`, inputColumns), patientId)
}

// ListUnannotated returns input rows that have no matching output row
// yet; this is the worklist for the annotation sweep.
func (s *Store) ListUnannotated(ctx context.Context) ([]models.VariantInput, error) {
	return s.listInputs(ctx, `
		SELECT i.patient_id, i.variant_number, i.chrom, i.pos, i.id, i.ref, i.alt, i.uploaded_at
		FROM inputs AS i
		LEFT JOIN outputs AS o
		ON i.patient_id = o.patient_id
		   AND i.variant_number = o.variant_number
		WHERE o.patient_id IS NULL
		ORDER BY i.patient_id, i.variant_number`)
}

// DeleteInput removes the input row with the given key. The engine
// cascade-deletes any dependent output row as part of the same
// statement, so no reader can observe the input gone with the output
// still present.
func (s *Store) DeleteInput(ctx context.Context, patientId int, variantNumber int) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM inputs
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

// CountInputs returns the total number of input rows.
func (s *Store) CountInputs(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inputs").Scan(&count)
	return count, err
}

func (s *Store) listInputs(ctx context.Context, query string, args ...interface{}) ([]models.VariantInput, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inputs := []models.VariantInput{}
	for rows.Next() {
		input, err := scanInput(rows)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, *input)
	}
	return inputs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInput(row rowScanner) (*models.VariantInput, error) {
	var (
		input models.VariantInput
		vid   sql.NullString
	)
	if err := row.Scan(
		&input.PatientId, &input.VariantNumber,
		&input.Chrom, &input.Pos, &vid,
		&input.Ref, &input.Alt, &input.UploadedAt); err != nil {
		return nil, err
	}
	input.Id = vid.String
	return &input, nil
}
