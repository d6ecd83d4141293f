package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/pkg/prompts"
	"github.com/xuri/excelize/v2"
)

// FormatCSV and FormatXLSX are the supported export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Result holds a generated export file ready to stream to the client
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Service generates prompt library exports
type Service struct {
	prompts *prompts.Service
}

// NewService creates a new export service
func NewService(promptService *prompts.Service) *Service {
	return &Service{prompts: promptService}
}

// Export generates an export of the account's prompt library in the given format.
// Exports are small enough to build in memory, so no file storage is involved.
func (s *Service) Export(ctx context.Context, accountID int, format string) (*Result, error) {
	if format != FormatCSV && format != FormatXLSX {
		return nil, fmt.Errorf("invalid format: must be csv or xlsx")
	}

	items, err := s.prompts.List(ctx, accountID, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("prompts-%s.%s", timestamp, format)

	var data []byte
	var contentType string
	if format == FormatCSV {
		data, err = s.generateCSV(items)
		contentType = "text/csv"
	} else {
		data, err = s.generateExcel(items)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// generateCSV generates a CSV document from prompts
func (s *Service) generateCSV(items []*ent.Prompt) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Title", "Body", "Model", "Tags", "Created At"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range items {
		row := []string{
			strconv.Itoa(p.ID),
			p.Title,
			p.Body,
			p.ModelUsed,
			strings.Join(p.Tags, ", "),
			p.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// generateExcel generates an Excel workbook from prompts
func (s *Service) generateExcel(items []*ent.Prompt) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Prompts"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	headers := []string{"ID", "Title", "Body", "Model", "Tags", "Created At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, p := range items {
		row := rowIdx + 2 // Start from row 2 (after header)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Body)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.ModelUsed)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), strings.Join(p.Tags, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), p.CreatedAt.Format(time.RFC3339))
	}

	for i := 0; i < len(headers); i++ {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 20)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
