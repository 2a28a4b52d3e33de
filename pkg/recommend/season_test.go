package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_ThreeSeasons(t *testing.T) {
	want := map[time.Month]Season{
		time.January: Rabi, time.February: Rabi, time.March: Rabi,
		time.April: Zaid, time.May: Zaid,
		time.June: Kharif, time.July: Kharif, time.August: Kharif, time.September: Kharif, time.October: Kharif,
		time.November: Rabi, time.December: Rabi,
	}
	for m, s := range want {
		assert.Equal(t, s, ThreeSeasons.SeasonFor(m), m.String())
	}
}

func TestCalendar_TwoSeasonsFoldsSummerIntoWinter(t *testing.T) {
	assert.Equal(t, Rabi, TwoSeasons.SeasonFor(time.April))
	assert.Equal(t, Rabi, TwoSeasons.SeasonFor(time.May))
	assert.Equal(t, Kharif, TwoSeasons.SeasonFor(time.June))
	assert.Equal(t, Rabi, TwoSeasons.SeasonFor(time.December))
	assert.Equal(t, []Season{Kharif, Rabi}, TwoSeasons.Seasons())
}

func TestParseCalendar(t *testing.T) {
	c, err := ParseCalendar("")
	require.NoError(t, err)
	assert.Equal(t, ThreeSeasons, c)

	c, err = ParseCalendar(" Two ")
	require.NoError(t, err)
	assert.Equal(t, TwoSeasons, c)

	_, err = ParseCalendar("four")
	assert.Error(t, err)
}

func TestParseSeason(t *testing.T) {
	tests := map[string]Season{
		"Kharif":         Kharif,
		"monsoon":        Kharif,
		"Monsoon season": Kharif,
		" RABI ":         Rabi,
		"Winter season":  Rabi,
		"Zaid":           Zaid,
		"summer":         Zaid,
	}
	for in, want := range tests {
		got, err := ParseSeason(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSeason("autumn")
	assert.ErrorIs(t, err, ErrUnknownSeason)
}

func TestParseSeasonList(t *testing.T) {
	got, err := ParseSeasonList("Kharif, Rabi,")
	require.NoError(t, err)
	assert.Equal(t, []Season{Kharif, Rabi}, got)

	got, err = ParseSeasonList("Kharif,Spring")
	assert.ErrorIs(t, err, ErrUnknownSeason)
	assert.Equal(t, []Season{Kharif}, got)
}

func TestRecommender_CurrentSeasonUsesClock(t *testing.T) {
	may := func() time.Time { return time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, Zaid, NewRecommender(ThreeSeasons, may).CurrentSeason())
	assert.Equal(t, Rabi, NewRecommender(TwoSeasons, may).CurrentSeason())
	assert.Equal(t, ThreeSeasons, NewRecommender("", may).Calendar())
}

func TestSeasonLabels(t *testing.T) {
	assert.Equal(t, "Monsoon season", Kharif.DisplayName())
	assert.Equal(t, "Winter season", Rabi.DisplayName())
	assert.Equal(t, "Summer season", Zaid.DisplayName())
	assert.Equal(t, "Zaid", Zaid.Title())
}
