package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Results"

type reportService struct {
	results ResultService
	logger  *slog.Logger
}

func NewReportService(results ResultService, logger *slog.Logger) ReportService {
	return &reportService{
		results: results,
		logger:  logger,
	}
}

// ExportXLSX renders the filtered result listing as an XLSX workbook, one
// row per result in the same order the listing returns them.
func (s *reportService) ExportXLSX(ctx context.Context, filters ResultFilters) ([]byte, error) {
	views, err := s.results.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(resultsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []interface{}{"Student", "Quiz", "Score (%)", "Submitted At"}
	if err := f.SetSheetRow(resultsSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, view := range views {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []interface{}{
			view.StudentName,
			view.QuizTitle,
			view.Score,
			view.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.Info("Results exported", "rows", len(views))
	return buf.Bytes(), nil
}
