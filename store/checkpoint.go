package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/guardhq/patrol-api/schema"
)

var (
	ErrCheckpointNotFound = fmt.Errorf("checkpoint not found")
	ErrCheckpointExists   = fmt.Errorf("checkpoint code already registered")
)

// GetCheckpointByCode resolves a scanned QR code to its checkpoint with the
// owning site and client eager-loaded, so callers never lazy-load relations.
func (s *PatrolStore) GetCheckpointByCode(code string) (*schema.Checkpoint, error) {
	var checkpoint schema.Checkpoint

	if err := s.ormDB.
		Preload("Site").
		Preload("Site.Client").
		Where("code = ?", code).
		First(&checkpoint).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCheckpointNotFound
		}
		return nil, err
	}

	return &checkpoint, nil
}

// CreateCheckpoint registers a new QR-coded checkpoint for a site.
func (s *PatrolStore) CreateCheckpoint(code string, siteID uint, latitude, longitude, toleranceRadius float64, address string) (*schema.Checkpoint, error) {
	checkpoint := schema.Checkpoint{
		Code:            code,
		SiteID:          siteID,
		Latitude:        latitude,
		Longitude:       longitude,
		ToleranceRadius: toleranceRadius,
		Address:         address,
	}

	if err := s.ormDB.Create(&checkpoint).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrCheckpointExists
		}
		return nil, err
	}

	return &checkpoint, nil
}
