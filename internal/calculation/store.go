package calculation

import (
	"context"
	"encoding/json"

	"kasko-gateway/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Store persists calculation runs and their per-company quotes.
type Store struct {
	DB *gorm.DB
}

// Exists reports whether a run with the given external correlation id is
// already recorded.
func (s *Store) Exists(ctx context.Context, calcResoID int64) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Insurance{}).
		Where("calc_reso_id = ?", calcResoID).
		Count(&count).Error
	return count > 0, err
}

// DeleteByCalcResoID removes a run and all its quotes. Quotes are deleted
// explicitly so the cascade holds on engines that do not enforce FK actions.
func (s *Store) DeleteByCalcResoID(ctx context.Context, calcResoID int64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var run models.Insurance
		if err := tx.Where("calc_reso_id = ?", calcResoID).First(&run).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		if err := tx.Where("insurance_id = ?", run.ID).Delete(&models.InsuranceElt{}).Error; err != nil {
			return err
		}
		return tx.Delete(&run).Error
	})
}

// ReplaceRun records a run, superseding any prior run with the same
// calc_reso_id (full delete-then-insert, not a field-wise upsert).
func (s *Store) ReplaceRun(ctx context.Context, run *models.Insurance) error {
	if run.CalcResoID != nil {
		exists, err := s.Exists(ctx, *run.CalcResoID)
		if err != nil {
			return err
		}
		if exists {
			if err := s.DeleteByCalcResoID(ctx, *run.CalcResoID); err != nil {
				return err
			}
		}
	}
	return s.DB.WithContext(ctx).Create(run).Error
}

// UpdateRun updates run columns by the provider calculation id.
func (s *Store) UpdateRun(ctx context.Context, calcID int64, values map[string]interface{}) error {
	return s.DB.WithContext(ctx).Model(&models.Insurance{}).
		Where("calc_id = ?", calcID).
		Updates(values).Error
}

// AddQuotes inserts one quote row per aggregate entry, all bound to the run.
// The insert is a single transaction so a crash mid-loop leaves no partial
// line items behind.
func (s *Store) AddQuotes(ctx context.Context, insuranceID, calcID int64, entries []Entry) error {
	rows := make([]models.InsuranceElt, 0, len(entries))
	for _, e := range entries {
		row := models.InsuranceElt{
			InsuranceID:   insuranceID,
			CalcID:        calcID,
			InsuranceName: e.Company,
		}
		if e.Data != nil {
			row.RequestID = e.Data.RequestID
			row.SKCalcID = e.Data.SKCalcID
			row.Message = nullable(e.Data.Message)
			row.Error = nullable(e.Data.Error)
			row.PremiumSum = e.Data.PremiumSum
			row.KASKOSum = e.Data.KASKOSum
			row.DOSum = e.Data.DOSum
			row.GOSum = e.Data.GOSum
			row.NSSum = e.Data.NSSum
			row.GAPSum = e.Data.GAPSum
			row.TotalFranchise = e.Data.TotalFranchise
			if e.Data.PaymentPeriods != nil {
				b, err := json.Marshal(e.Data.PaymentPeriods.PaymentPeriod)
				if err == nil {
					row.PaymentPeriods = datatypes.JSON(b)
				}
			}
		}
		rows = append(rows, row)
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// AcceptedQuotes returns the successful quotes of a run by provider calc id.
func (s *Store) AcceptedQuotes(ctx context.Context, calcID int64) ([]models.InsuranceElt, error) {
	var quotes []models.InsuranceElt
	err := s.DB.WithContext(ctx).
		Where("calc_id = ? AND error IS NULL", calcID).
		Find(&quotes).Error
	return quotes, err
}

// QuotesByCalcResoID returns all quotes of the run recorded under the given
// external correlation id.
func (s *Store) QuotesByCalcResoID(ctx context.Context, calcResoID int64) ([]models.InsuranceElt, error) {
	var run models.Insurance
	if err := s.DB.WithContext(ctx).Where("calc_reso_id = ?", calcResoID).First(&run).Error; err != nil {
		return nil, err
	}
	var quotes []models.InsuranceElt
	err := s.DB.WithContext(ctx).Where("insurance_id = ?", run.ID).Find(&quotes).Error
	return quotes, err
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
