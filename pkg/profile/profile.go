// Package profile ties the module together so callers import one package:
// validated profile entities, the weak identity registry, and the
// orchestrating service.
package profile

import (
	"profilekit/pkg/profile/models"
	"profilekit/pkg/profile/registry"
	"profilekit/pkg/profile/service"
)

// Profile is the validated user-profile entity.
type Profile = models.Profile

// Registry is the identity-keyed weak registry.
type Registry = registry.Registry

// Service wraps construction, registration and lookup with logging and
// metrics.
type Service = service.Service

// DefaultLastLogin is the sentinel for profiles that have never logged in.
var DefaultLastLogin = models.DefaultLastLogin

// NewProfile constructs a profile with all fields absent.
func NewProfile() *Profile { return models.New() }

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry { return registry.New() }

// NewService constructs the profile service over reg.
func NewService(reg service.ProfileRegistry, opts ...service.Option) *Service {
	return service.New(reg, opts...)
}
