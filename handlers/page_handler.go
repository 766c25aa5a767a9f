package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Dosada05/legacy-golf/middleware"
	"github.com/Dosada05/legacy-golf/models"
	"github.com/Dosada05/legacy-golf/services"
	"github.com/Dosada05/legacy-golf/web"
	"github.com/go-chi/chi/v5"
)

// Option - переключатель в UI (фильтр, сортировка, вкладка) со ссылкой на своё состояние.
type Option struct {
	Value  string
	Label  string
	URL    string
	Active bool
}

type listingView struct {
	Listing *services.TournamentListing
	Filters []Option
	Sorts   []Option
}

type detailView struct {
	Detail *services.TournamentDetail
	Tabs   []Option
}

// PageHandler рендерит HTML-страницы сайта. Состояние UI (фильтр, сортировка, вкладка)
// приходит в query-параметрах и живёт только в рамках одного запроса.
type PageHandler struct {
	tournamentService services.TournamentService
	renderer          *web.Renderer
}

func NewPageHandler(ts services.TournamentService, renderer *web.Renderer) *PageHandler {
	return &PageHandler{
		tournamentService: ts,
		renderer:          renderer,
	}
}

// Home обрабатывает GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.tournamentService.GetHomePage(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, web.PageHome, web.PageData{
		Description: "Premium golf tournaments at the finest courses across the country.",
		ActiveNav:   "home",
		Data:        page,
	})
}

// ListTournaments обрабатывает GET /tournaments?filter=&sort=
// Неизвестные значения фильтра и сортировки заменяются значениями по умолчанию.
func (h *PageHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter, err := services.ParseListingFilter(query.Get("filter"))
	if err != nil {
		filter = models.FilterAll
	}
	sortKey, err := services.ParseSortKey(query.Get("sort"))
	if err != nil {
		sortKey = models.SortByDate
	}

	listing, err := h.tournamentService.ListTournaments(r.Context(), services.ListTournamentsInput{
		Filter: filter,
		Sort:   sortKey,
	})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	view := listingView{Listing: listing}
	for _, f := range models.ListingFilters {
		view.Filters = append(view.Filters, Option{
			Value:  string(f),
			Label:  f.Label(),
			URL:    listingURL(f, sortKey),
			Active: f == filter,
		})
	}
	for _, k := range models.SortKeys {
		view.Sorts = append(view.Sorts, Option{
			Value:  string(k),
			Label:  k.Label(),
			URL:    listingURL(filter, k),
			Active: k == sortKey,
		})
	}

	h.render(w, r, http.StatusOK, web.PageTournaments, web.PageData{
		Title:       "Tournaments",
		Description: "Browse upcoming Legacy Golf Association tournaments.",
		ActiveNav:   "tournaments",
		Data:        view,
	})
}

// TournamentDetail обрабатывает GET /tournaments/{id}?tab=
func (h *PageHandler) TournamentDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tab, err := services.ParseDetailTab(r.URL.Query().Get("tab"))
	if err != nil {
		tab = models.TabOverview
	}

	detail, err := h.tournamentService.GetTournamentDetail(r.Context(), id, tab)
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	view := detailView{Detail: detail}
	for _, t := range models.DetailTabs {
		view.Tabs = append(view.Tabs, Option{
			Value:  string(t),
			Label:  t.Label(),
			URL:    detailURL(detail.Tournament.ID, t),
			Active: t == detail.Tab,
		})
	}

	h.render(w, r, http.StatusOK, web.PageTournament, web.PageData{
		Title:       detail.Tournament.Title,
		Description: detail.Tournament.Description,
		ActiveNav:   "tournaments",
		Data:        view,
	})
}

// NotFound рендерит страницу 404. Используется и как NotFound-обработчик роутера.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, web.PageNotFound, web.PageData{Title: "Page Not Found"})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data web.PageData) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("failed to write page",
			slog.String("page", page), slog.Any("error", err))
	}
}

func (h *PageHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	middleware.LoggerFromContext(r.Context()).Error("internal server error",
		slog.String("path", r.URL.Path), slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func listingURL(filter models.ListingFilter, sortKey models.SortKey) string {
	q := url.Values{}
	q.Set("filter", string(filter))
	q.Set("sort", string(sortKey))
	return "/tournaments?" + q.Encode()
}

func detailURL(id string, tab models.DetailTab) string {
	u := "/tournaments/" + url.PathEscape(id)
	if tab == models.TabOverview {
		return u
	}
	return u + "?tab=" + url.QueryEscape(string(tab))
}
