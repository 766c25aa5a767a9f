package repositories

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Dosada05/legacy-golf/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// TournamentRepository - доступ только на чтение к каталогу турниров.
type TournamentRepository interface {
	GetAll(ctx context.Context) ([]models.Tournament, error)
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
}

type catalogTournamentRepository struct {
	tournaments  []models.Tournament
	byID         map[string]int
	testimonials []models.Testimonial
}

// NewCatalogTournamentRepository строит репозиторий поверх уже проверенного каталога.
func NewCatalogTournamentRepository(c *Catalog) (TournamentRepository, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: catalog is nil", ErrCatalogInvalid)
	}

	r := &catalogTournamentRepository{
		tournaments:  slices.Clone(c.Tournaments),
		byID:         make(map[string]int, len(c.Tournaments)),
		testimonials: slices.Clone(c.Testimonials),
	}
	for i, t := range r.tournaments {
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tournament id %q", ErrCatalogInvalid, t.ID)
		}
		r.byID[t.ID] = i
	}

	return r, nil
}

// GetAll возвращает все турниры в порядке каталога. Срез - копия, его можно менять.
func (r *catalogTournamentRepository) GetAll(ctx context.Context) ([]models.Tournament, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.tournaments), nil
}

func (r *catalogTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i, ok := r.byID[id]
	if !ok {
		return nil, ErrTournamentNotFound
	}

	t := r.tournaments[i]
	return &t, nil
}

func (r *catalogTournamentRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.testimonials), nil
}
