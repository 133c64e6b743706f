package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/guardhq/patrol-api/schema"
)

var (
	ErrScanNotFound = fmt.Errorf("checkpoint scan not found")
)

// CreateScan persists one scan event. The location_verified flag is decided
// by the caller at ingestion time and never recomputed afterwards.
func (s *PatrolStore) CreateScan(checkpointID, guardID uint, latitude, longitude *float64, notes, deviceInfo string, locationVerified bool) (*schema.CheckpointScan, error) {
	scan := schema.CheckpointScan{
		CheckpointID:     checkpointID,
		GuardID:          guardID,
		Latitude:         latitude,
		Longitude:        longitude,
		Notes:            notes,
		DeviceInfo:       deviceInfo,
		LocationVerified: locationVerified,
		ScannedAt:        time.Now().UTC(),
	}

	if err := s.ormDB.Create(&scan).Error; err != nil {
		return nil, err
	}

	return &scan, nil
}

// GetScanWithContext loads a scan together with its checkpoint, site and
// client in one query chain. The tagger only reads fields off the returned
// object, so everything it needs has to be populated here.
func (s *PatrolStore) GetScanWithContext(scanID int64) (*schema.CheckpointScan, error) {
	var scan schema.CheckpointScan

	if err := s.ormDB.
		Preload("Checkpoint").
		Preload("Checkpoint.Site").
		Preload("Checkpoint.Site.Client").
		Where("id = ?", scanID).
		First(&scan).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrScanNotFound
		}
		return nil, err
	}

	return &scan, nil
}

// CreateScanTag inserts an enrichment record for a scan. There is no
// uniqueness constraint on the scan id; a retried tagging task may leave a
// duplicate row, which the live feed de-duplicates by scan id.
func (s *PatrolStore) CreateScanTag(scanID int64, tags schema.TagPayload) (*schema.ScanTag, error) {
	tag := schema.ScanTag{
		CheckpointScanID: scanID,
		Tags:             tags,
	}

	if err := s.ormDB.Create(&tag).Error; err != nil {
		return nil, err
	}

	return &tag, nil
}
