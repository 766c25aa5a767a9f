package services

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Dosada05/legacy-golf/models"
)

// ParseListingFilter разбирает значение фильтра из запроса. Пустая строка - FilterAll.
func ParseListingFilter(s string) (models.ListingFilter, error) {
	if s == "" {
		return models.FilterAll, nil
	}
	f := models.ListingFilter(strings.ToLower(s))
	if !slices.Contains(models.ListingFilters, f) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
	return f, nil
}

// ParseSortKey разбирает ключ сортировки из запроса. Пустая строка - SortByDate.
func ParseSortKey(s string) (models.SortKey, error) {
	if s == "" {
		return models.SortByDate, nil
	}
	k := models.SortKey(strings.ToLower(s))
	if !slices.Contains(models.SortKeys, k) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return k, nil
}

// FilterTournaments возвращает новый срез с подходящими турнирами, сохраняя исходный порядок.
func FilterTournaments(records []models.Tournament, filter models.ListingFilter) []models.Tournament {
	out := make([]models.Tournament, 0, len(records))
	for _, t := range records {
		switch filter {
		case models.FilterOpen:
			if t.Status != models.StatusOpen {
				continue
			}
		case models.FilterFeatured:
			if !t.Featured {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// SortTournaments возвращает отсортированную копию. Сортировка стабильная:
// при равенстве ключей сохраняется порядок каталога.
func SortTournaments(records []models.Tournament, key models.SortKey) []models.Tournament {
	out := slices.Clone(records)

	var compare func(a, b models.Tournament) int
	switch key {
	case models.SortByPrice:
		compare = func(a, b models.Tournament) int { return cmp.Compare(a.Price, b.Price) }
	case models.SortByLocation:
		compare = func(a, b models.Tournament) int {
			return strings.Compare(strings.ToLower(a.Location), strings.ToLower(b.Location))
		}
	default:
		compare = func(a, b models.Tournament) int { return a.StartDate.Compare(b.StartDate) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

// RegistrationProgress - процент занятых мест, округлённый и ограниченный [0, 100].
func RegistrationProgress(t models.Tournament) (int, error) {
	if t.TotalSpots <= 0 {
		return 0, fmt.Errorf("%w: tournament %q has total spots %d", ErrTournamentInvalidCapacity, t.ID, t.TotalSpots)
	}

	taken := float64(t.TotalSpots-t.SpotsRemaining) / float64(t.TotalSpots) * 100
	p := int(math.Round(taken))

	return min(max(p, 0), 100), nil
}
