package practice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/mdsai/analytics-api/infrastructure/repository"
	"github.com/mdsai/analytics-api/internal/domain"
)

// Manager serves practice-level settings and the location directory. Config
// updates live in memory only and reset to the defaults on restart.
type Manager interface {
	GetConfig(ctx context.Context) (*domain.PracticeConfig, error)
	UpdateConfig(ctx context.Context, patch map[string]interface{}) (*domain.PracticeConfig, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

type Service struct {
	mu           sync.RWMutex
	current      domain.PracticeConfig
	locationRepo repository.LocationRepository
}

func NewService(locationRepo repository.LocationRepository) Manager {
	return &Service{
		current:      DefaultConfig(),
		locationRepo: locationRepo,
	}
}

// DefaultConfig is the branding and target set the dashboard ships with.
func DefaultConfig() domain.PracticeConfig {
	return domain.PracticeConfig{
		PracticeName: "MDS Family Medicine",
		Tagline:      "Care that counts, numbers that prove it",
		LogoURL:      "/assets/logo.svg",
		PrimaryColor: "#0F4C81",
		AccentColor:  "#64B6AC",
		Providers: []domain.Provider{
			{Name: "Dr. Alana Reyes", Specialty: "Family Medicine", SharePercent: 34},
			{Name: "Dr. Marcus Webb", Specialty: "Internal Medicine", SharePercent: 28},
			{Name: "Dr. Priya Natarajan", Specialty: "Pediatrics", SharePercent: 22},
			{Name: "Jordan Fisk, PA-C", Specialty: "Urgent Care", SharePercent: 16},
		},
		MetricTargets: map[string]float64{
			"collection_rate":    95,
			"denial_rate":        6,
			"days_in_ar":         32,
			"new_patients_month": 140,
		},
		LocationNames: map[string]string{
			"north":   "North Phoenix Clinic",
			"central": "Central Phoenix Clinic",
			"mesa":    "Mesa Clinic",
		},
	}
}

func (s *Service) GetConfig(ctx context.Context) (*domain.PracticeConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return configCopy(&s.current), nil
}

// UpdateConfig merges the patch over the current config one top-level field
// at a time. A field present in the patch replaces the stored value
// wholesale, including maps and slices; fields absent from the patch keep
// their current value.
func (s *Service) UpdateConfig(ctx context.Context, patch map[string]interface{}) (*domain.PracticeConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.current

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &updated,
		ZeroFields:       true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building config decoder: %w", err)
	}

	if err := decoder.Decode(patch); err != nil {
		return nil, fmt.Errorf("merging practice config: %w", err)
	}

	updated.UpdatedAt = time.Now().UTC()
	s.current = updated

	return configCopy(&updated), nil
}

func (s *Service) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.locationRepo.ListLocations(ctx)
}

func configCopy(c *domain.PracticeConfig) *domain.PracticeConfig {
	out := *c

	out.Providers = append([]domain.Provider(nil), c.Providers...)

	if c.MetricTargets != nil {
		out.MetricTargets = make(map[string]float64, len(c.MetricTargets))
		for k, v := range c.MetricTargets {
			out.MetricTargets[k] = v
		}
	}

	if c.LocationNames != nil {
		out.LocationNames = make(map[string]string, len(c.LocationNames))
		for k, v := range c.LocationNames {
			out.LocationNames[k] = v
		}
	}

	return &out
}
