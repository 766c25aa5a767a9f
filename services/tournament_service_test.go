package services

import (
	"context"
	"testing"

	"github.com/Dosada05/legacy-golf/models"
	"github.com/Dosada05/legacy-golf/repositories"
	"github.com/Dosada05/legacy-golf/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, resolver storage.URLResolver) TournamentService {
	t.Helper()

	catalog, err := repositories.LoadDefaultCatalog()
	require.NoError(t, err)
	repo, err := repositories.NewCatalogTournamentRepository(catalog)
	require.NoError(t, err)

	return NewTournamentService(repo, resolver, nil)
}

func cardIDs(cards []TournamentCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestTournamentService_ListTournaments(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	listing, err := svc.ListTournaments(ctx, ListTournamentsInput{})
	require.NoError(t, err)
	assert.Equal(t, models.FilterAll, listing.Filter)
	assert.Equal(t, models.SortByDate, listing.Sort)
	assert.Equal(t, []string{"spring-championship", "summer-classic", "fall-invitational"}, cardIDs(listing.Tournaments))
	assert.False(t, listing.Empty())

	spring := listing.Tournaments[0]
	assert.Equal(t, "$200", spring.PriceLabel)
	assert.Equal(t, "$5,000", spring.PrizePoolLabel)
	assert.Equal(t, 76, spring.Progress)
	assert.Equal(t, "Open Registration", spring.StatusLabel)
	assert.Equal(t, "/images/spring-championship.png", spring.Image)

	featured, err := svc.ListTournaments(ctx, ListTournamentsInput{Filter: models.FilterFeatured})
	require.NoError(t, err)
	assert.Equal(t, []string{"spring-championship"}, cardIDs(featured.Tournaments))

	byPrice, err := svc.ListTournaments(ctx, ListTournamentsInput{Sort: models.SortByPrice})
	require.NoError(t, err)
	assert.Equal(t, []string{"fall-invitational", "summer-classic", "spring-championship"}, cardIDs(byPrice.Tournaments))

	byLocation, err := svc.ListTournaments(ctx, ListTournamentsInput{Sort: models.SortByLocation})
	require.NoError(t, err)
	assert.Equal(t, []string{"spring-championship", "fall-invitational", "summer-classic"}, cardIDs(byLocation.Tournaments))
}

func TestTournamentService_GetTournamentDetail(t *testing.T) {
	svc := newTestService(t, storage.NewPublicURLResolver("https://assets.legacygolf.com"))
	ctx := context.Background()

	detail, err := svc.GetTournamentDetail(ctx, "spring-championship", models.TabPrizes)
	require.NoError(t, err)

	assert.Equal(t, "Spring Championship", detail.Tournament.Title)
	assert.Equal(t, models.TabPrizes, detail.Tab)
	assert.Equal(t, 5000, detail.Content.PrizePool)
	require.Len(t, detail.Content.Prizes, 6)
	assert.Equal(t, "$1,500", detail.Content.Prizes[0].Prize)
	assert.Nil(t, detail.Content.Schedule)
	assert.Nil(t, detail.Content.CourseInfo)

	assert.Equal(t, 76, detail.Card.Progress)
	assert.Equal(t, "https://assets.legacygolf.com/images/spring-championship.png", detail.Card.Image)
	assert.Equal(t, detail.Card.Image, detail.Tournament.Image)
	assert.Equal(t, []string{"summer-classic", "fall-invitational"}, cardIDs(detail.Related))
}

func TestTournamentService_GetTournamentDetail_NotFound(t *testing.T) {
	svc := newTestService(t, nil)

	detail, err := svc.GetTournamentDetail(context.Background(), "nonexistent-id", models.TabOverview)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestTournamentService_GetHomePage(t *testing.T) {
	svc := newTestService(t, nil)

	page, err := svc.GetHomePage(context.Background())
	require.NoError(t, err)

	require.NotNil(t, page.Featured)
	assert.Equal(t, "spring-championship", page.Featured.ID)
	assert.Equal(t, []string{"spring-championship", "summer-classic", "fall-invitational"}, cardIDs(page.Upcoming))
	assert.Len(t, page.Testimonials, 3)
}
