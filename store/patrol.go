package store

import (
	"github.com/jinzhu/gorm"

	"github.com/guardhq/patrol-api/schema"
)

// patrol main datastore
type PatrolCore interface {
	Ping() error

	// Guard
	GetGuard(id uint) (*schema.Guard, error)
	GetGuardByUsername(username string) (*schema.Guard, error)

	// Checkpoint
	GetCheckpointByCode(code string) (*schema.Checkpoint, error)
	CreateCheckpoint(code string, siteID uint, latitude, longitude, toleranceRadius float64, address string) (*schema.Checkpoint, error)

	// Scan
	CreateScan(checkpointID, guardID uint, latitude, longitude *float64, notes, deviceInfo string, locationVerified bool) (*schema.CheckpointScan, error)
	GetScanWithContext(scanID int64) (*schema.CheckpointScan, error)
	CreateScanTag(scanID int64, tags schema.TagPayload) (*schema.ScanTag, error)
}

// PatrolStore is an implementation of PatrolCore
type PatrolStore struct {
	ormDB *gorm.DB
}

func NewPatrolStore(ormDB *gorm.DB) *PatrolStore {
	return &PatrolStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *PatrolStore) Ping() error {
	return s.ormDB.DB().Ping()
}
