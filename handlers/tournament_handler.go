package handlers

import (
	"net/http"

	"github.com/Dosada05/legacy-golf/services"
	"github.com/go-chi/chi/v5"
)

// TournamentHandler - JSON API каталога турниров.
type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
	}
}

// ListHandler обрабатывает GET /api/tournaments?filter=&sort=
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter, err := services.ParseListingFilter(query.Get("filter"))
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	sortKey, err := services.ParseSortKey(query.Get("sort"))
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	listing, err := h.tournamentService.ListTournaments(r.Context(), services.ListTournamentsInput{
		Filter: filter,
		Sort:   sortKey,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	// Пустой список - это не ошибка
	if err := writeJSON(w, http.StatusOK, listing, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler обрабатывает GET /api/tournaments/{id}?tab=
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tab, err := services.ParseDetailTab(r.URL.Query().Get("tab"))
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	detail, err := h.tournamentService.GetTournamentDetail(r.Context(), id, tab)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, detail, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// NotFound и MethodNotAllowed для маршрутов /api отвечают JSON, а не HTML-страницей.
func (h *TournamentHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	notFoundResponse(w, r)
}

func (h *TournamentHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	methodNotAllowedResponse(w, r)
}
