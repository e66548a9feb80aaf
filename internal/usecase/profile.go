package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/github-repo-search/internal/domain"
	"github.com/naka-gawa/github-repo-search/internal/gateway"
)

// ProfileSlot holds the best-effort greeting profile. It is loaded at most
// once; a failed load leaves the slot empty for good.
type ProfileSlot struct {
	fetcher gateway.ProfileFetcher
	logger  *logrus.Logger

	once    sync.Once
	mu      sync.Mutex
	profile *domain.UserProfile
}

// NewProfileSlot creates an empty ProfileSlot.
func NewProfileSlot(fetcher gateway.ProfileFetcher, logger *logrus.Logger) *ProfileSlot {
	return &ProfileSlot{fetcher: fetcher, logger: logger}
}

// Load fetches the profile on the first call and does nothing afterwards.
func (s *ProfileSlot) Load(ctx context.Context) {
	s.once.Do(func() {
		profile, err := s.fetcher.FetchUser(ctx)
		if err != nil {
			s.Fail(err)
			return
		}
		s.Resolve(profile)
	})
}

// Fetch calls the profile gateway without touching the slot.
func (s *ProfileSlot) Fetch(ctx context.Context) (domain.UserProfile, error) {
	return s.fetcher.FetchUser(ctx)
}

// Resolve fills the slot.
func (s *ProfileSlot) Resolve(p domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &p
}

// Fail records a failed load. The slot stays on its placeholder.
func (s *ProfileSlot) Fail(err error) {
	if errors.Is(err, gateway.ErrProfileDisabled) {
		s.logger.Debug("Profile endpoint not configured; skipping greeting.")
		return
	}
	s.logger.WithError(err).Warn("Failed to fetch user profile.")
}

// Profile returns the loaded profile, or nil while the slot is unresolved.
func (s *ProfileSlot) Profile() *domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}
