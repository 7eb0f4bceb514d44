package registry

import (
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"profilekit/pkg/profile/models"
)

type RegistrySuite struct {
	suite.Suite
	reg *Registry
}

func (s *RegistrySuite) SetupTest() {
	s.reg = New()
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) newProfile() *models.Profile {
	p := models.New()
	s.Require().NoError(p.SetUsername(uuid.NewString()))
	return p
}

// TestRegisterAndLookup verifies live profiles are retrievable by token.
func (s *RegistrySuite) TestRegisterAndLookup() {
	s.Run("returns the registered instance", func() {
		p := s.newProfile()
		s.reg.Register(p)

		found, ok := s.reg.Lookup(p.ID())
		s.Require().True(ok)
		s.Same(p, found)
	})

	s.Run("misses for unknown token", func() {
		_, ok := s.reg.Lookup(uint64(1 << 62))
		s.False(ok)
	})

	s.Run("re-registering the same profile overwrites its entry", func() {
		p := s.newProfile()
		s.reg.Register(p)
		s.reg.Register(p)

		s.Equal(1, s.reg.Len())
		found, ok := s.reg.Lookup(p.ID())
		s.Require().True(ok)
		s.Same(p, found)
	})

	s.Run("distinct profiles do not collide", func() {
		a := s.newProfile()
		b := s.newProfile()
		s.reg.Register(a)
		s.reg.Register(b)

		foundA, ok := s.reg.Lookup(a.ID())
		s.Require().True(ok)
		foundB, ok := s.reg.Lookup(b.ID())
		s.Require().True(ok)
		s.Same(a, foundA)
		s.Same(b, foundB)
	})
}

// TestWeakLifetime verifies registration does not keep profiles alive and
// that collected entries read as misses.
func (s *RegistrySuite) TestWeakLifetime() {
	s.Run("collected profile is not found", func() {
		token := func() uint64 {
			p := s.newProfile()
			s.reg.Register(p)
			return p.ID()
		}()

		// One full GC cycle is enough for the runtime to clear weak
		// pointers to unreachable objects; a second lets the cleanup
		// handler run as well.
		runtime.GC()
		runtime.GC()

		_, ok := s.reg.Lookup(token)
		s.False(ok, "registry must not keep the profile alive")
	})

	s.Run("strongly referenced profile survives GC", func() {
		p := s.newProfile()
		s.reg.Register(p)

		runtime.GC()

		found, ok := s.reg.Lookup(p.ID())
		s.Require().True(ok)
		s.Same(p, found)
		runtime.KeepAlive(p)
	})
}

// TestConcurrentAccess hammers register and lookup from multiple goroutines;
// the mutex must serialize map mutation and weak-pointer reads.
func (s *RegistrySuite) TestConcurrentAccess() {
	const perWorker = 100

	profiles := make([][]*models.Profile, 8)
	var g errgroup.Group
	for w := range profiles {
		g.Go(func() error {
			kept := make([]*models.Profile, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				p := models.New()
				s.reg.Register(p)
				kept = append(kept, p)

				if _, ok := s.reg.Lookup(p.ID()); !ok {
					s.Failf("lookup miss", "token %d vanished while strongly referenced", p.ID())
				}
			}
			profiles[w] = kept
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	for _, kept := range profiles {
		for _, p := range kept {
			found, ok := s.reg.Lookup(p.ID())
			s.Require().True(ok)
			s.Same(p, found)
		}
	}
}
