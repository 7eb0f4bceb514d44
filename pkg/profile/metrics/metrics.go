package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the profile module: creation and
// registration volume plus registry hit rate.
type Metrics struct {
	ProfilesCreated prometheus.Counter
	Registrations   prometheus.Counter
	LookupHits      prometheus.Counter
	LookupMisses    prometheus.Counter
}

// New creates a Metrics instance with all profile module metrics registered
// on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the profile module metrics on reg. Tests use a private
// registerer so suites do not collide on the default one.
func NewWith(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ProfilesCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "profilekit_profiles_created_total",
			Help: "Total number of profiles constructed",
		}),
		Registrations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "profilekit_registrations_total",
			Help: "Total number of registry registrations",
		}),
		LookupHits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "profilekit_lookup_hits_total",
			Help: "Registry lookups that found a live profile",
		}),
		LookupMisses: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "profilekit_lookup_misses_total",
			Help: "Registry lookups for missing or collected entries",
		}),
	}
}
