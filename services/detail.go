package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Dosada05/legacy-golf/models"
)

// DefaultRelatedLimit - сколько "других турниров" показывается на странице турнира.
const DefaultRelatedLimit = 2

// TabContent - подмножество полей турнира, которое отображается на выбранной вкладке.
// Поля, не относящиеся к вкладке, остаются пустыми.
type TabContent struct {
	Tab models.DetailTab `json:"tab"`

	// overview
	Description  string   `json:"description,omitempty"`
	Included     []string `json:"included,omitempty"`
	Requirements []string `json:"requirements,omitempty"`

	// schedule
	Schedule []models.ScheduleDay `json:"schedule,omitempty"`

	// course
	CourseInfo *models.CourseInfo `json:"course_info,omitempty"`

	// prizes
	PrizePool int            `json:"prize_pool,omitempty"`
	Prizes    []models.Prize `json:"prizes,omitempty"`
}

// Empty сообщает, что на вкладке нечего показывать (например, у турнира нет расписания).
func (c TabContent) Empty() bool {
	switch c.Tab {
	case models.TabSchedule:
		return len(c.Schedule) == 0
	case models.TabCourse:
		return c.CourseInfo == nil
	case models.TabPrizes:
		return c.PrizePool == 0 && len(c.Prizes) == 0
	default:
		return c.Description == "" && len(c.Included) == 0 && len(c.Requirements) == 0
	}
}

// ParseDetailTab разбирает вкладку из запроса. Пустая строка - TabOverview.
func ParseDetailTab(s string) (models.DetailTab, error) {
	if s == "" {
		return models.TabOverview, nil
	}
	tab := models.DetailTab(strings.ToLower(s))
	if !slices.Contains(models.DetailTabs, tab) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTab, s)
	}
	return tab, nil
}

// SelectTab выбирает поля турнира для вкладки. Данные не перечитываются из каталога.
func SelectTab(t models.Tournament, tab models.DetailTab) TabContent {
	c := TabContent{Tab: tab}

	switch tab {
	case models.TabSchedule:
		c.Schedule = t.Schedule
	case models.TabCourse:
		c.CourseInfo = t.CourseInfo
	case models.TabPrizes:
		c.PrizePool = t.PrizePool
		c.Prizes = t.Prizes
	default:
		c.Tab = models.TabOverview
		c.Description = t.Description
		c.Included = t.Included
		c.Requirements = t.Requirements
	}

	return c
}

// RelatedTournaments возвращает до limit турниров каталога, кроме текущего, в порядке каталога.
func RelatedTournaments(current models.Tournament, all []models.Tournament, limit int) []models.Tournament {
	if limit <= 0 {
		return nil
	}

	related := make([]models.Tournament, 0, limit)
	for _, t := range all {
		if t.ID == current.ID {
			continue
		}
		related = append(related, t)
		if len(related) == limit {
			break
		}
	}
	return related
}
