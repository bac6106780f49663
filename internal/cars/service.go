package cars

import (
	"context"
	"fmt"
	"strings"

	"kasko-gateway/internal/models"

	"github.com/tealeg/xlsx/v2"
	"gorm.io/gorm"
)

// Service maintains the vehicle reference table.
type Service struct {
	DB *gorm.DB
}

// Column order expected in the import spreadsheet.
// brand | model | modif | sk_brand | sk_model | type
const importColumns = 6

// ImportXLSX wipes and reloads the cars table from a spreadsheet. The first
// row is a header and is skipped; short or empty rows are ignored.
func (s *Service) ImportXLSX(ctx context.Context, data []byte) (int, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return 0, fmt.Errorf("cars: open xlsx: %w", err)
	}
	if len(f.Sheets) == 0 {
		return 0, fmt.Errorf("cars: workbook has no sheets")
	}
	sheet := f.Sheets[0]

	var rows []models.Car
	for i, row := range sheet.Rows {
		if i == 0 {
			continue
		}
		cells := make([]string, importColumns)
		for j := 0; j < importColumns && j < len(row.Cells); j++ {
			cells[j] = strings.TrimSpace(row.Cells[j].String())
		}
		if cells[0] == "" && cells[1] == "" {
			continue
		}
		rows = append(rows, models.Car{
			Brand:   cells[0],
			Model:   cells[1],
			Modif:   cells[2],
			SkBrand: cells[3],
			SkModel: cells[4],
			Type:    cells[5],
		})
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("cars: no data rows in sheet %q", sheet.Name)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Car{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(&rows, 500).Error
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// List returns reference cars, optionally filtered by brand and model
// (case-insensitive substring match).
func (s *Service) List(ctx context.Context, brand, model string) ([]models.Car, error) {
	q := s.DB.WithContext(ctx).Model(&models.Car{})
	if brand != "" {
		q = q.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(brand)+"%")
	}
	if model != "" {
		q = q.Where("LOWER(model) LIKE ?", "%"+strings.ToLower(model)+"%")
	}
	var cars []models.Car
	err := q.Order("brand, model, modif").Find(&cars).Error
	return cars, err
}
