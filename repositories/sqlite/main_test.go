package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"pvv/api/models"

	"github.com/stretchr/testify/assert"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "pvv-test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func testInput(patientId int, variantNumber int) *models.VariantInput {
	return &models.VariantInput{
		PatientId:     patientId,
		VariantNumber: variantNumber,
		Chrom:         "17",
		Pos:           7571720,
		Id:            "rs121912651",
		Ref:           "C",
		Alt:           "T",
	}
}

func TestOpenEnforcesForeignKeys(t *testing.T) {
	store := openTestStore(t)

	// the cascade contract is meaningless unless the pragma is on
	// for the session before any mutation runs
	assert.NoError(t, store.verifyPragma("foreign_keys", "1"))
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvv-test.db")

	first, err := Open(path)
	assert.NoError(t, err)
	assert.NoError(t, first.CreateInput(context.Background(), testInput(1, 1)))
	assert.NoError(t, first.Close())

	// reopening must not disturb existing rows
	second, err := Open(path)
	assert.NoError(t, err)
	defer second.Close()

	count, err := second.CountInputs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestResetDropsAllData(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.CreateInput(ctx, testInput(1, 1)))
	assert.NoError(t, store.CreateOutput(ctx, &models.VariantOutput{PatientId: 1, VariantNumber: 1}))

	assert.NoError(t, store.Reset(ctx))

	inputsCount, err := store.CountInputs(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, inputsCount)

	outputsCount, err := store.CountOutputs(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, outputsCount)
}

func TestResetTwiceIsStructurallyIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Reset(ctx))
	assert.NoError(t, store.Reset(ctx))

	// both tables exist, empty, with constraints active
	inputsCount, err := store.CountInputs(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, inputsCount)

	outputsCount, err := store.CountOutputs(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, outputsCount)

	// constraints survive the recreate
	err = store.CreateOutput(ctx, &models.VariantOutput{PatientId: 9, VariantNumber: 9})
	assert.True(t, IsForeignKeyViolation(err))
}
