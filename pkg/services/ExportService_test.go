package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/kinetsulist/kinetsulist/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_WriteFavorites(t *testing.T) {
	buf := &bytes.Buffer{}
	savedAt := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	err := NewExportService().WriteFavorites(buf, []models.Favorite{
		{AnimeID: "20", Title: "Naruto", CreatedAt: savedAt},
		{AnimeID: "Monster", Title: "Monster", CreatedAt: savedAt},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Título", "Guardado"}, rows[0])
	assert.Equal(t, []string{"20", "Naruto", "2026-10-19 09:30"}, rows[1])
	assert.Equal(t, []string{"Monster", "Monster", "2026-10-19 09:30"}, rows[2])
}

func TestExportService_WriteFavoritesEmpty(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, NewExportService().WriteFavorites(buf, nil))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
