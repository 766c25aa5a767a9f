package services

import (
	"testing"

	"github.com/Dosada05/legacy-golf/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetailTab(t *testing.T) {
	tab, err := ParseDetailTab("")
	require.NoError(t, err)
	assert.Equal(t, models.TabOverview, tab)

	for _, want := range models.DetailTabs {
		got, err := ParseDetailTab(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = ParseDetailTab("photos")
	assert.ErrorIs(t, err, ErrInvalidTab)
}

func TestSelectTab(t *testing.T) {
	spring := exampleCatalog()[0]

	tests := []struct {
		tab  models.DetailTab
		want TabContent
	}{
		{models.TabOverview, TabContent{
			Tab:          models.TabOverview,
			Description:  spring.Description,
			Included:     spring.Included,
			Requirements: spring.Requirements,
		}},
		{models.TabSchedule, TabContent{Tab: models.TabSchedule, Schedule: spring.Schedule}},
		{models.TabCourse, TabContent{Tab: models.TabCourse, CourseInfo: spring.CourseInfo}},
		{models.TabPrizes, TabContent{Tab: models.TabPrizes, PrizePool: 5000, Prizes: spring.Prizes}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			got := SelectTab(spring, tt.tab)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SelectTab(%s) mismatch (-want +got):\n%s", tt.tab, diff)
			}
			assert.False(t, got.Empty())
		})
	}
}

func TestSelectTab_PrizesExcludeOtherFields(t *testing.T) {
	got := SelectTab(exampleCatalog()[0], models.TabPrizes)

	assert.Equal(t, 5000, got.PrizePool)
	require.NotEmpty(t, got.Prizes)
	assert.Equal(t, models.Prize{Place: "1st Place", Prize: "$1,500"}, got.Prizes[0])
	assert.Nil(t, got.Schedule)
	assert.Nil(t, got.CourseInfo)
	assert.Empty(t, got.Description)
}

func TestSelectTab_MissingSectionsRenderNothing(t *testing.T) {
	summer := exampleCatalog()[1] // без расписания и информации о поле

	schedule := SelectTab(summer, models.TabSchedule)
	assert.Nil(t, schedule.Schedule)
	assert.True(t, schedule.Empty())

	course := SelectTab(summer, models.TabCourse)
	assert.Nil(t, course.CourseInfo)
	assert.True(t, course.Empty())
}

func TestSelectTab_UnknownFallsBackToOverview(t *testing.T) {
	got := SelectTab(exampleCatalog()[0], models.DetailTab("bogus"))
	assert.Equal(t, models.TabOverview, got.Tab)
	assert.Equal(t, "Flagship", got.Description)
}

func TestRelatedTournaments(t *testing.T) {
	all := exampleCatalog()

	related := RelatedTournaments(all[0], all, DefaultRelatedLimit)
	assert.Equal(t, []string{"summer-classic", "fall-invitational"}, ids(related))

	related = RelatedTournaments(all[1], all, DefaultRelatedLimit)
	assert.Equal(t, []string{"spring-championship", "fall-invitational"}, ids(related))

	for _, current := range all {
		for limit := 0; limit <= 4; limit++ {
			got := RelatedTournaments(current, all, limit)
			assert.LessOrEqual(t, len(got), limit)
			assert.NotContains(t, ids(got), current.ID)
			assert.True(t, isSubsequence(ids(got), ids(all)))
		}
	}

	assert.Empty(t, RelatedTournaments(all[0], all[:1], DefaultRelatedLimit))
	assert.Len(t, RelatedTournaments(all[0], all, 10), 2)
}
