package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Location quality classes recorded in scan tags.
const (
	LocationQualityHigh   = "high"
	LocationQualityMedium = "medium"
	LocationQualityLow    = "low"
)

// CheckpointScan is one scan event captured from a guard's device. The
// coordinates are pointers since a device without a GPS fix reports none.
type CheckpointScan struct {
	ID               int64       `json:"id" gorm:"primary_key"`
	CheckpointID     uint        `json:"checkpoint_id"`
	Checkpoint       *Checkpoint `json:"checkpoint,omitempty" gorm:"foreignkey:CheckpointID"`
	GuardID          uint        `json:"guard_id"`
	Latitude         *float64    `json:"latitude"`
	Longitude        *float64    `json:"longitude"`
	Notes            string      `json:"notes"`
	DeviceInfo       string      `json:"device_info"`
	LocationVerified bool        `json:"location_verified"`
	ScannedAt        time.Time   `json:"scanned_at"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type TagPayload map[string]interface{}

func (p TagPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *TagPayload) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}

	return json.Unmarshal(source, &p)
}

// ScanTag is the denormalized enrichment record written by the tagging
// worker, one row per successful tagging run.
type ScanTag struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	CheckpointScanID int64      `json:"checkpoint_scan_id"`
	Tags             TagPayload `json:"tags" gorm:"type:jsonb;not null;default '{}'"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
