package service

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
	"github.com/lightone/tce-backend/internal/ws"
	"gorm.io/datatypes"
)

// A repeat hit from the same IP inside this window is not counted again.
const visitDedupWindow = 30 * time.Minute

var (
	tabletPattern = regexp.MustCompile(`(?i)tablet|ipad`)
	mobilePattern = regexp.MustCompile(`(?i)mobile`)
)

type AnalyticsService struct {
	visitRepo repository.VisitRepository
	hub       *ws.Hub
}

func NewAnalyticsService(visitRepo repository.VisitRepository, hub *ws.Hub) *AnalyticsService {
	return &AnalyticsService{
		visitRepo: visitRepo,
		hub:       hub,
	}
}

type TrackInput struct {
	IP        string
	UserAgent string
	Country   string
	Referrer  string
}

// VisitEvent is what connected admin dashboards receive for each new visit.
type VisitEvent struct {
	Type    string `json:"type"`
	Device  string `json:"device"`
	Country string `json:"country"`
}

// Track records a visit unless the same IP was already counted in the last
// half hour. Returns whether a new visit was stored.
func (s *AnalyticsService) Track(ctx context.Context, input TrackInput) (bool, error) {
	exists, err := s.visitRepo.ExistsSince(ctx, input.IP, time.Now().Add(-visitDedupWindow))
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	country := input.Country
	if country == "" {
		country = "Unknown"
	}

	meta, _ := json.Marshal(map[string]string{
		"userAgent": input.UserAgent,
		"referrer":  input.Referrer,
	})

	visit := &domain.Visit{
		ID:        uuid.New(),
		IP:        input.IP,
		Device:    detectDevice(input.UserAgent),
		Country:   country,
		Meta:      datatypes.JSON(meta),
		CreatedAt: time.Now(),
	}

	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return false, err
	}

	if s.hub != nil {
		s.hub.Broadcast(VisitEvent{
			Type:    "visit",
			Device:  visit.Device,
			Country: visit.Country,
		})
	}

	return true, nil
}

func (s *AnalyticsService) Stats(ctx context.Context) (*domain.VisitStats, error) {
	total, err := s.visitRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	byDevice, err := s.visitRepo.CountByDevice(ctx)
	if err != nil {
		return nil, err
	}

	countries, err := s.visitRepo.TopCountries(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &domain.VisitStats{
		TotalVisitors: total,
		DeviceStats: domain.DeviceStats{
			Desktop: byDevice[domain.DeviceDesktop],
			Mobile:  byDevice[domain.DeviceMobile],
			Tablet:  byDevice[domain.DeviceTablet],
		},
		CountryStats: countries,
	}, nil
}

// detectDevice classifies a User-Agent; tablets match before mobiles because
// tablet UAs usually contain "Mobile" too.
func detectDevice(userAgent string) string {
	switch {
	case tabletPattern.MatchString(userAgent):
		return domain.DeviceTablet
	case mobilePattern.MatchString(userAgent):
		return domain.DeviceMobile
	default:
		return domain.DeviceDesktop
	}
}
