package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tripfolio/lodging-parser/internal/pipeline"
)

// Service produces XLSX bytes for batch parse results.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) with one row per parsed
// confirmation, in the order given.
func (s *Service) ExportXLSX(results []pipeline.Result) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Confirmations"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source File",
		"Hotel",
		"Guest",
		"Check-in",
		"Check-out",
		"Rooms",
		"Free Cancel By",
		"Breakfast",
		"Total",
		"Currency",
		"Paid",
		"Address",
		"Phone",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		l := r.Lodging
		write(1, r.Path)
		write(2, l.HotelName)
		write(3, l.GuestName)
		write(4, l.CheckInDate)
		write(5, l.CheckOutDate)
		write(6, l.Rooms)
		write(7, l.FreeCancelBy)
		write(8, yesNo(l.BreakfastIncluded))
		write(9, l.TotalCost)
		write(10, l.Currency)
		write(11, yesNo(l.Paid))
		write(12, l.Address)
		write(13, l.Phone)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40) // source path
	_ = f.SetColWidth(sheet, "B", "B", 32) // hotel
	_ = f.SetColWidth(sheet, "C", "C", 22) // guest
	_ = f.SetColWidth(sheet, "D", "E", 12) // stay dates
	_ = f.SetColWidth(sheet, "G", "G", 16) // cancel deadline
	_ = f.SetColWidth(sheet, "L", "L", 48) // address

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
