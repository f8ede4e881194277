package services

import (
	"fmt"
	"io"

	"github.com/kinetsulist/kinetsulist/pkg/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Mi Lista"

type ExportServicer interface {
	WriteFavorites(w io.Writer, favorites []models.Favorite) error
}

type ExportService struct{}

func NewExportService() ExportService {
	return ExportService{}
}

/*
WriteFavorites writes the saved list as an xlsx workbook with one row per
saved anime below a header row.
*/
func (s ExportService) WriteFavorites(w io.Writer, favorites []models.Favorite) error {
	var (
		err error
		sw  *excelize.StreamWriter
	)

	f := excelize.NewFile()
	defer f.Close()

	if err = f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("error naming export sheet: %w", err)
	}

	if sw, err = f.NewStreamWriter(exportSheet); err != nil {
		return fmt.Errorf("error creating export stream writer: %w", err)
	}

	header := []any{"ID", "Título", "Guardado"}

	if err = sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("error writing export header: %w", err)
	}

	for index, favorite := range favorites {
		row := []any{
			favorite.AnimeID,
			favorite.Title,
			favorite.CreatedAt.Format("2006-01-02 15:04"),
		}

		cellAddr, _ := excelize.CoordinatesToCellName(1, index+2)

		if err = sw.SetRow(cellAddr, row); err != nil {
			return fmt.Errorf("error writing export row %d: %w", index+2, err)
		}
	}

	if err = sw.Flush(); err != nil {
		return fmt.Errorf("error flushing export: %w", err)
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("error writing export workbook: %w", err)
	}

	return nil
}
