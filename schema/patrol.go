package schema

import (
	"time"
)

// Guard roles
const (
	RoleGuard      = "guard"
	RoleSupervisor = "supervisor"
)

// Zone is the patrol territory a guard is assigned to. A guard may only
// interact with checkpoints whose site belongs to their zone.
type Zone struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Client struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientSite is a guarded property of a client. Its tolerance radius is the
// site-wide geofence fallback for checkpoints that declare none of their own.
type ClientSite struct {
	ID              uint      `json:"id" gorm:"primary_key"`
	Name            string    `json:"name"`
	ClientID        uint      `json:"client_id"`
	Client          *Client   `json:"client,omitempty" gorm:"foreignkey:ClientID"`
	ZoneID          uint      `json:"zone_id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	ToleranceRadius float64   `json:"tolerance_radius"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Checkpoint is a QR-coded scan point placed at a site. The code printed on
// the physical tag is globally unique.
type Checkpoint struct {
	ID              uint        `json:"id" gorm:"primary_key"`
	Code            string      `json:"code" gorm:"unique_index;not null"`
	SiteID          uint        `json:"site_id"`
	Site            *ClientSite `json:"site,omitempty" gorm:"foreignkey:SiteID"`
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
	ToleranceRadius float64     `json:"tolerance_radius"`
	Address         string      `json:"address"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// EffectiveTolerance resolves the geofence radius for this checkpoint: its
// own radius wins, then the site-wide one. Zero means neither is set and the
// caller falls back to the system default.
func (cp *Checkpoint) EffectiveTolerance() float64 {
	if cp.ToleranceRadius > 0 {
		return cp.ToleranceRadius
	}
	if cp.Site != nil && cp.Site.ToleranceRadius > 0 {
		return cp.Site.ToleranceRadius
	}
	return 0
}

// Guard is a field worker account. PasswordDigest holds a bcrypt hash and is
// never serialized.
type Guard struct {
	ID             uint      `json:"id" gorm:"primary_key"`
	Username       string    `json:"username" gorm:"unique_index;not null"`
	PasswordDigest string    `json:"-"`
	Name           string    `json:"name"`
	ZoneID         uint      `json:"zone_id"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
