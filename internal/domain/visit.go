package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Device classes recognised by the analytics tracker.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
)

type Visit struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	IP        string         `json:"-" gorm:"index"`
	Device    string         `json:"device" gorm:"not null"`
	Country   string         `json:"country" gorm:"not null"`
	Meta      datatypes.JSON `json:"meta" gorm:"type:jsonb;default:'{}'"` // user agent, referrer
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
}

type DeviceStats struct {
	Desktop int64 `json:"desktop"`
	Mobile  int64 `json:"mobile"`
	Tablet  int64 `json:"tablet"`
}

type CountryStat struct {
	Country  string `json:"country"`
	Visitors int64  `json:"visitors"`
}

type VisitStats struct {
	TotalVisitors int64         `json:"totalVisitors"`
	DeviceStats   DeviceStats   `json:"deviceStats"`
	CountryStats  []CountryStat `json:"countryStats"`
}
