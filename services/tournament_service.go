package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/legacy-golf/models"
	"github.com/Dosada05/legacy-golf/repositories"
	"github.com/Dosada05/legacy-golf/storage"
	"github.com/dustin/go-humanize"
)

const upcomingOnHomePage = 3

// TournamentCard - облегчённая проекция турнира для списков и карточек.
// Всегда строится из канонической записи каталога.
type TournamentCard struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Subtitle       string                  `json:"subtitle,omitempty"`
	Date           string                  `json:"date"`
	Location       string                  `json:"location"`
	City           string                  `json:"city"`
	Image          string                  `json:"image"`
	Price          int                     `json:"price"`
	PriceLabel     string                  `json:"price_label"`
	PrizePool      int                     `json:"prize_pool"`
	PrizePoolLabel string                  `json:"prize_pool_label"`
	Featured       bool                    `json:"featured"`
	Status         models.TournamentStatus `json:"status"`
	StatusLabel    string                  `json:"status_label"`
	SpotsRemaining int                     `json:"spots_remaining"`
	TotalSpots     int                     `json:"total_spots"`
	Progress       int                     `json:"registration_progress"`
	Format         string                  `json:"format"`
	Difficulty     string                  `json:"difficulty"`
}

type ListTournamentsInput struct {
	Filter models.ListingFilter
	Sort   models.SortKey
}

type TournamentListing struct {
	Filter      models.ListingFilter `json:"filter"`
	Sort        models.SortKey       `json:"sort"`
	Tournaments []TournamentCard     `json:"tournaments"`
}

// Empty - фильтр не оставил ни одного турнира, страница показывает сообщение-заглушку.
func (l *TournamentListing) Empty() bool {
	return len(l.Tournaments) == 0
}

type TournamentDetail struct {
	Tournament models.Tournament `json:"tournament"`
	Card       TournamentCard    `json:"card"`
	Tab        models.DetailTab  `json:"tab"`
	Content    TabContent        `json:"content"`
	Related    []TournamentCard  `json:"related"`
}

type HomePage struct {
	Featured     *TournamentCard      `json:"featured,omitempty"`
	Upcoming     []TournamentCard     `json:"upcoming"`
	Testimonials []models.Testimonial `json:"testimonials"`
}

type TournamentService interface {
	ListTournaments(ctx context.Context, input ListTournamentsInput) (*TournamentListing, error)
	GetTournamentDetail(ctx context.Context, id string, tab models.DetailTab) (*TournamentDetail, error)
	GetHomePage(ctx context.Context) (*HomePage, error)
}

type tournamentService struct {
	repo   repositories.TournamentRepository
	assets storage.URLResolver
	logger *slog.Logger
}

func NewTournamentService(repo repositories.TournamentRepository, assets storage.URLResolver, logger *slog.Logger) TournamentService {
	if assets == nil {
		assets = storage.NewLocalURLResolver()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		repo:   repo,
		assets: assets,
		logger: logger,
	}
}

func (s *tournamentService) ListTournaments(ctx context.Context, input ListTournamentsInput) (*TournamentListing, error) {
	if input.Filter == "" {
		input.Filter = models.FilterAll
	}
	if input.Sort == "" {
		input.Sort = models.SortByDate
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	selected := SortTournaments(FilterTournaments(all, input.Filter), input.Sort)

	cards, err := s.toCards(selected)
	if err != nil {
		return nil, err
	}

	return &TournamentListing{
		Filter:      input.Filter,
		Sort:        input.Sort,
		Tournaments: cards,
	}, nil
}

func (s *tournamentService) GetTournamentDetail(ctx context.Context, id string, tab models.DetailTab) (*TournamentDetail, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %q: %w", id, err)
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	card, err := s.toCard(*t)
	if err != nil {
		return nil, err
	}
	related, err := s.toCards(RelatedTournaments(*t, all, DefaultRelatedLimit))
	if err != nil {
		return nil, err
	}

	tournament := *t
	tournament.Image = card.Image
	content := SelectTab(tournament, tab)

	return &TournamentDetail{
		Tournament: tournament,
		Card:       card,
		Tab:        content.Tab,
		Content:    content,
		Related:    related,
	}, nil
}

func (s *tournamentService) GetHomePage(ctx context.Context) (*HomePage, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	testimonials, err := s.repo.ListTestimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	page := &HomePage{Testimonials: testimonials}

	if featured := FilterTournaments(all, models.FilterFeatured); len(featured) > 0 {
		card, err := s.toCard(featured[0])
		if err != nil {
			return nil, err
		}
		page.Featured = &card
	} else {
		s.logger.Warn("catalog has no featured tournament")
	}

	upcoming := SortTournaments(all, models.SortByDate)
	if len(upcoming) > upcomingOnHomePage {
		upcoming = upcoming[:upcomingOnHomePage]
	}
	if page.Upcoming, err = s.toCards(upcoming); err != nil {
		return nil, err
	}

	return page, nil
}

func (s *tournamentService) toCards(records []models.Tournament) ([]TournamentCard, error) {
	cards := make([]TournamentCard, 0, len(records))
	for _, t := range records {
		card, err := s.toCard(t)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (s *tournamentService) toCard(t models.Tournament) (TournamentCard, error) {
	progress, err := RegistrationProgress(t)
	if err != nil {
		return TournamentCard{}, err
	}

	return TournamentCard{
		ID:             t.ID,
		Title:          t.Title,
		Subtitle:       t.Subtitle,
		Date:           t.Date,
		Location:       t.Location,
		City:           t.City,
		Image:          s.assets.ResolveURL(t.Image),
		Price:          t.Price,
		PriceLabel:     FormatDollars(t.Price),
		PrizePool:      t.PrizePool,
		PrizePoolLabel: FormatDollars(t.PrizePool),
		Featured:       t.Featured,
		Status:         t.Status,
		StatusLabel:    StatusLabel(t.Status),
		SpotsRemaining: t.SpotsRemaining,
		TotalSpots:     t.TotalSpots,
		Progress:       progress,
		Format:         t.Format,
		Difficulty:     t.Difficulty,
	}, nil
}

// FormatDollars форматирует целую сумму в долларах: 5000 -> "$5,000".
func FormatDollars(amount int) string {
	return "$" + humanize.Comma(int64(amount))
}

func StatusLabel(status models.TournamentStatus) string {
	if status == models.StatusOpen {
		return "Open Registration"
	}
	return "Registration Full"
}
