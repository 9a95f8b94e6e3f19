package service

import (
	"context"
	"fmt"
	"log"

	"dealerdesk/repository"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Submissions"

// ExportService writes the quotation submission register to an xlsx
// workbook for the back office.
type ExportService struct {
	quotations repository.QuotationRepositoryInterface
}

// NewExportService creates a new ExportService
func NewExportService(quotations repository.QuotationRepositoryInterface) *ExportService {
	return &ExportService{quotations: quotations}
}

// SubmissionsWorkbook builds the workbook and returns its bytes.
func (s *ExportService) SubmissionsWorkbook(ctx context.Context) ([]byte, error) {
	submissions, err := s.quotations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("⚠️  Warning: failed to close workbook: %v", err)
		}
	}()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Customer Name", "Mobile", "Address", "Model", "Variant", "Color", "Total Amount", "Submitted By"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheetName, cell, h)
	}

	for row, sub := range submissions {
		values := []interface{}{
			sub.CreatedAt.Format("02-Jan-2006"),
			sub.CustomerName,
			sub.CustomerMobile,
			sub.CustomerAddress,
			sub.Model,
			sub.Variant,
			sub.Color,
			sub.TotalAmount,
			sub.UserID,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(exportSheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	log.Printf("📦 Export: %d submissions written", len(submissions))
	return buf.Bytes(), nil
}
