package models

// ListingFilter - критерий фильтрации на странице списка турниров.
type ListingFilter string

const (
	FilterAll      ListingFilter = "all"
	FilterOpen     ListingFilter = "open"
	FilterFeatured ListingFilter = "featured"
)

// SortKey - ключ сортировки на странице списка турниров.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByPrice    SortKey = "price"
	SortByLocation SortKey = "location"
)

// DetailTab - вкладка на странице турнира.
type DetailTab string

const (
	TabOverview DetailTab = "overview"
	TabSchedule DetailTab = "schedule"
	TabCourse   DetailTab = "course"
	TabPrizes   DetailTab = "prizes"
)

// ListingFilters и остальные срезы задают порядок отображения переключателей в UI.
var (
	ListingFilters = []ListingFilter{FilterAll, FilterOpen, FilterFeatured}
	SortKeys       = []SortKey{SortByDate, SortByPrice, SortByLocation}
	DetailTabs     = []DetailTab{TabOverview, TabSchedule, TabCourse, TabPrizes}
)

func (f ListingFilter) Label() string {
	switch f {
	case FilterOpen:
		return "Open Registration"
	case FilterFeatured:
		return "Featured"
	default:
		return "All Tournaments"
	}
}

func (k SortKey) Label() string {
	switch k {
	case SortByPrice:
		return "Price"
	case SortByLocation:
		return "Location"
	default:
		return "Date"
	}
}

func (t DetailTab) Label() string {
	switch t {
	case TabSchedule:
		return "Schedule"
	case TabCourse:
		return "Course Info"
	case TabPrizes:
		return "Prizes"
	default:
		return "Overview"
	}
}
