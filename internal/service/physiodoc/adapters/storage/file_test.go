package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

func TestFileStore_MissingFileMeansEmptyList(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "physiodoc.json"))

	patients, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, patients)
	assert.Empty(t, patients)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physiodoc.json")
	store := NewFileStore(path)
	ctx := context.Background()

	year := 1975
	p, err := model.NewPatient("Anna Muster", &year, &model.Diagnosis{Code: "M54.5", ShortLabel: "Kreuzschmerz"})
	require.NoError(t, err)
	p.Sessions[0].SetComplaints([]string{"pain", "stiffness"})
	p.Sessions[0].Pain = 7

	require.NoError(t, store.Save(ctx, []*model.Patient{p}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, p.ID, loaded[0].ID)
	assert.Equal(t, "Anna Muster", loaded[0].Name)
	require.NotNil(t, loaded[0].Diagnosis)
	assert.Equal(t, "M54.5", loaded[0].Diagnosis.Code)
	require.Len(t, loaded[0].Sessions, 1)
	assert.Equal(t, []string{"pain", "stiffness"}, loaded[0].Sessions[0].Complaints)
	assert.Equal(t, 7, loaded[0].Sessions[0].Pain)
}

func TestFileStore_NullScoreSurvivesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physiodoc.json")
	store := NewFileStore(path)
	ctx := context.Background()

	p, err := model.NewPatient("Anna Muster", nil, nil)
	require.NoError(t, err)
	scored := p.AddSession(model.SessionFollowUp)
	zero := 0
	scored.Score = &zero

	require.NoError(t, store.Save(ctx, []*model.Patient{p}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded[0].Sessions, 2)
	assert.Nil(t, loaded[0].Sessions[0].Score)
	require.NotNil(t, loaded[0].Sessions[1].Score)
	assert.Equal(t, 0, *loaded[0].Sessions[1].Score)
}

func TestFileStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "physiodoc.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), []*model.Patient{}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_EmptyDocumentNormalizesToEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physiodoc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"patients":null}`), 0o600))

	patients, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, patients)
	assert.Empty(t, patients)
}

func TestFileStore_CorruptFileFailsLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physiodoc.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}
