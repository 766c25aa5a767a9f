package repositories

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/Dosada05/legacy-golf/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

var (
	ErrCatalogInvalid = errors.New("invalid tournament catalog")
	ErrInvalidDate    = errors.New("unrecognized tournament date")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// "May 15-16, 2025", "May 30 - June 1, 2025", "October 12, 2025"
var displayDatePattern = regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2})(?:\s*[-–]\s*(?:[A-Za-z]+\.?\s+)?\d{1,2})?,\s*(\d{4})$`)

// Catalog - содержимое файла каталога.
type Catalog struct {
	Tournaments  []models.Tournament  `yaml:"tournaments"`
	Testimonials []models.Testimonial `yaml:"testimonials"`
}

// LoadDefaultCatalog загружает каталог, встроенный в бинарник.
func LoadDefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalog))
}

// LoadCatalogFile загружает каталог из файла. Пустой путь означает встроенный каталог.
func LoadCatalogFile(path string) (*Catalog, error) {
	if path == "" {
		return LoadDefaultCatalog()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// LoadCatalog разбирает YAML каталога и проверяет инварианты всех записей.
// Любое нарушение - ошибка загрузки, каталог с некорректными данными не используется.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: catalog is empty", ErrCatalogInvalid)
		}
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrCatalogInvalid, err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.Tournaments))

	for i := range c.Tournaments {
		t := &c.Tournaments[i]

		if err := validateTournament(t); err != nil {
			return fmt.Errorf("%w: tournament #%d (%q): %v", ErrCatalogInvalid, i, t.ID, err)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate tournament id %q", ErrCatalogInvalid, t.ID)
		}
		seen[t.ID] = struct{}{}

		start, err := ParseDisplayDate(t.Date)
		if err != nil {
			return fmt.Errorf("%w: tournament %q: %v", ErrCatalogInvalid, t.ID, err)
		}
		t.StartDate = start
	}

	return nil
}

func validateTournament(t *models.Tournament) error {
	switch {
	case !slugPattern.MatchString(t.ID):
		return fmt.Errorf("id must be a non-empty URL-safe slug")
	case strings.TrimSpace(t.Title) == "":
		return fmt.Errorf("title is required")
	case t.TotalSpots <= 0:
		return fmt.Errorf("total_spots must be positive, got %d", t.TotalSpots)
	case t.SpotsRemaining < 0:
		return fmt.Errorf("spots_remaining must not be negative, got %d", t.SpotsRemaining)
	case t.SpotsRemaining > t.TotalSpots:
		return fmt.Errorf("spots_remaining (%d) exceeds total_spots (%d)", t.SpotsRemaining, t.TotalSpots)
	case !t.Status.Valid():
		return fmt.Errorf("unknown status %q", t.Status)
	case t.Price < 0:
		return fmt.Errorf("price must not be negative, got %d", t.Price)
	case t.PrizePool < 0:
		return fmt.Errorf("prize_pool must not be negative, got %d", t.PrizePool)
	}
	return nil
}

// ParseDisplayDate возвращает первый день турнира по отображаемой дате ("May 15-16, 2025").
func ParseDisplayDate(s string) (time.Time, error) {
	m := displayDatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	value := m[1] + " " + m[2] + " " + m[3]
	for _, layout := range []string{"January 2 2006", "Jan 2 2006"} {
		if d, err := time.Parse(layout, value); err == nil {
			return d, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
