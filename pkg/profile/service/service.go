package service

import (
	"log/slog"
	"time"

	"profilekit/pkg/profile/metrics"
	"profilekit/pkg/profile/models"
)

// ProfileRegistry is the port the service uses for identity-keyed lookups.
type ProfileRegistry interface {
	Register(p *models.Profile)
	Lookup(token uint64) (*models.Profile, bool)
}

// Service orchestrates profile construction, registration and lookup, adding
// structured logging and metrics around the entity and registry operations.
type Service struct {
	registry ProfileRegistry
	logger   *slog.Logger
	metrics  *metrics.Metrics
	clock    func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the wall clock behind parameterless last-login
// updates. Tests pin it to a fixed time.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// New constructs a Service. Without options it runs silent and unmetered on
// the system clock.
func New(registry ProfileRegistry, opts ...Option) *Service {
	s := &Service{registry: registry, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateProfile constructs an empty profile and assigns its identity token.
func (s *Service) CreateProfile() *models.Profile {
	p := models.New()
	s.log("profile created", "profile_id", p.ID())
	if s.metrics != nil {
		s.metrics.ProfilesCreated.Inc()
	}
	return p
}

// Register adds p to the registry under its identity token.
func (s *Service) Register(p *models.Profile) {
	s.registry.Register(p)
	s.log("profile registered", "profile_id", p.ID())
	if s.metrics != nil {
		s.metrics.Registrations.Inc()
	}
}

// Lookup returns the live profile registered under token, or (nil, false)
// for a missing or collected entry.
func (s *Service) Lookup(token uint64) (*models.Profile, bool) {
	p, ok := s.registry.Lookup(token)
	if !ok {
		s.log("profile lookup miss", "profile_id", token)
		if s.metrics != nil {
			s.metrics.LookupMisses.Inc()
		}
		return nil, false
	}
	s.log("profile lookup hit", "profile_id", token)
	if s.metrics != nil {
		s.metrics.LookupHits.Inc()
	}
	return p, true
}

// Touch records a login on p: the given time as-is when non-nil, otherwise
// the service clock's current time. Validation failures pass through
// unchanged.
func (s *Service) Touch(p *models.Profile, t *time.Time) error {
	if t == nil {
		now := s.clock()
		t = &now
	}
	if err := p.UpdateLastLogin(t); err != nil {
		return err
	}
	s.log("last login updated", "profile_id", p.ID(), "last_login", *t)
	return nil
}

func (s *Service) log(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
