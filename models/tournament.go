package models

import "time"

// TournamentStatus представляет статус регистрации на турнир.
type TournamentStatus string

const (
	StatusOpen   TournamentStatus = "open"
	StatusClosed TournamentStatus = "closed"
)

// Valid сообщает, является ли статус одним из известных значений.
func (s TournamentStatus) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

// Tournament представляет турнир из каталога. Записи неизменяемы после загрузки каталога.
type Tournament struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle"`
	Date     string `json:"date" yaml:"date"`
	Location string `json:"location" yaml:"location"`
	City     string `json:"city" yaml:"city"`
	Image    string `json:"image" yaml:"image"`

	Price     int `json:"price" yaml:"price"`
	PrizePool int `json:"prize_pool" yaml:"prize_pool"`

	TotalSpots     int `json:"total_spots" yaml:"total_spots"`
	SpotsRemaining int `json:"spots_remaining" yaml:"spots_remaining"`

	Featured   bool             `json:"featured" yaml:"featured"`
	Status     TournamentStatus `json:"status" yaml:"status"`
	Format     string           `json:"format" yaml:"format"`
	Difficulty string           `json:"difficulty" yaml:"difficulty"`

	Description string `json:"description" yaml:"description"`

	// Детальные данные (опционально, есть только у полных записей)
	Schedule     []ScheduleDay `json:"schedule,omitempty" yaml:"schedule"`
	CourseInfo   *CourseInfo   `json:"course_info,omitempty" yaml:"course_info"`
	Prizes       []Prize       `json:"prizes,omitempty" yaml:"prizes"`
	Included     []string      `json:"included,omitempty" yaml:"included"`
	Requirements []string      `json:"requirements,omitempty" yaml:"requirements"`

	// StartDate вычисляется из Date при загрузке каталога и используется для сортировки.
	StartDate time.Time `json:"start_date" yaml:"-"`
}

type ScheduleDay struct {
	Day    string          `json:"day" yaml:"day"`
	Events []ScheduleEvent `json:"events" yaml:"events"`
}

type ScheduleEvent struct {
	Time  string `json:"time" yaml:"time"`
	Event string `json:"event" yaml:"event"`
}

type CourseInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Established string   `json:"established" yaml:"established"`
	Designer    string   `json:"designer" yaml:"designer"`
	Par         int      `json:"par" yaml:"par"`
	Yards       int      `json:"yards" yaml:"yards"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Slope       int      `json:"slope" yaml:"slope"`
	Features    []string `json:"features,omitempty" yaml:"features"`
}

type Prize struct {
	Place string `json:"place" yaml:"place"`
	Prize string `json:"prize" yaml:"prize"`
}

// Testimonial - отзыв участника для главной страницы.
type Testimonial struct {
	Quote  string `json:"quote" yaml:"quote"`
	Author string `json:"author" yaml:"author"`
	Role   string `json:"role" yaml:"role"`
}
