package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/streax/internal/domain"
)

type profileService struct {
	store    *Store
	observer UseCaseObserver
}

func NewProfileService(store *Store, observers ...UseCaseObserver) ProfileService {
	return &profileService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func normalizeProfile(p *domain.UserProfile) {
	p.Name = strings.TrimSpace(p.Name)
	p.Role = strings.TrimSpace(p.Role)
	p.LongTermGoal = strings.TrimSpace(p.LongTermGoal)
	if p.Theme == "" {
		p.Theme = domain.ThemeDark
	}
}

func (s *profileService) Onboard(ctx context.Context, p domain.UserProfile) (_ *domain.UserProfile, err error) {
	defer observe(ctx, s.observer, "onboard", map[string]any{
		"commitment_min": p.DailyCommitmentMinutes,
	})(&err)

	normalizeProfile(&p)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.store.now().UTC()
	}
	if err = validateStruct(p, ErrInvalidInput); err != nil {
		return nil, err
	}

	err = s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		existing, err := t.data.Load(ctx)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyOnboarded
		}
		return t.data.Save(ctx, domain.NewAppData(p, s.store.now()))
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		data, err := s.store.load(ctx, t)
		if err != nil {
			return err
		}
		p = data.Profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *profileService) Update(ctx context.Context, p domain.UserProfile) (_ *domain.UserProfile, err error) {
	defer observe(ctx, s.observer, "update-profile", nil)(&err)

	normalizeProfile(&p)
	err = s.store.mutate(ctx, func(_ *txScope, data *domain.AppData) error {
		p.CreatedAt = data.Profile.CreatedAt
		if err := validateStruct(p, ErrInvalidInput); err != nil {
			return err
		}
		data.Profile = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
