package catalog

import (
	"context"
	"errors"

	"moneta-backend/internal/models"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// ListInstruments returns the catalog, optionally filtered by category.
// rawCategory == "" means all categories.
func (s *Service) ListInstruments(ctx context.Context, rawCategory string) ([]models.Instrument, error) {
	q := s.DB.WithContext(ctx).Order("category, symbol")
	if rawCategory != "" {
		category, err := ParseCategory(rawCategory)
		if err != nil {
			return nil, err
		}
		q = q.Where("category = ?", string(category))
	}

	var instruments []models.Instrument
	if err := q.Find(&instruments).Error; err != nil {
		return nil, err
	}
	return instruments, nil
}

// GetInstrument returns one instrument by symbol.
func (s *Service) GetInstrument(ctx context.Context, symbol string) (*models.Instrument, error) {
	var inst models.Instrument
	err := s.DB.WithContext(ctx).Where("symbol = ?", symbol).First(&inst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInstrumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}
