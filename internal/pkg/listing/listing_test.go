package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doctor struct {
	Name      string
	Specialty string
}

func doctorText(d doctor) string {
	return d.Name + " " + d.Specialty
}

var fetchedDoctors = []doctor{
	{Name: "Dr. Amra Hadžić", Specialty: "Kardiologija"},
	{Name: "Dr. Emir Čaušević", Specialty: "Neurologija"},
	{Name: "Dr. Lejla Đulović", Specialty: "Pedijatrija"},
}

func TestParse(t *testing.T) {
	t.Run("Valid Values", func(t *testing.T) {
		values := url.Values{
			"pretraga":     {"  amra   hadzic "},
			"grad":         {"Sarajevo"},
			"specijalnost": {"kardiologija"},
			"sortiranje":   {"ocjena"},
			"stranica":     {"3"},
		}

		query := Parse(values)

		assert.Equal(t, Query{
			Search:    "amra hadzic",
			City:      "sarajevo",
			Specialty: "kardiologija",
			Sort:      "ocjena",
			Page:      3,
		}, query)
	})

	t.Run("Invalid Values Are Dropped", func(t *testing.T) {
		values := url.Values{
			"grad":       {"../etc"},
			"sortiranje": {"cijena"},
			"stranica":   {"-2"},
		}

		query := Parse(values)

		assert.True(t, query.IsEmpty())
		assert.Equal(t, 1, query.PageNumber())
	})

	t.Run("Page One Is Omitted", func(t *testing.T) {
		query := Parse(url.Values{"stranica": {"1"}})
		assert.Equal(t, "", query.Encode())
	})
}

func TestQuery_EncodeIsDeterministic(t *testing.T) {
	query := Query{Page: 2, Sort: "naziv", Specialty: "kardiologija", City: "mostar", Search: "dr amra"}

	assert.Equal(t, "pretraga=dr+amra&grad=mostar&specijalnost=kardiologija&sortiranje=naziv&stranica=2", query.Encode())

	reparsed, err := url.ParseQuery(query.Encode())
	require.NoError(t, err)
	assert.Equal(t, query, Parse(reparsed))
}

func TestQuery_URL(t *testing.T) {
	assert.Equal(t, "/doktori", Query{}.URL("/doktori"))
	assert.Equal(t, "/doktori?grad=tuzla", Query{City: "tuzla"}.URL("/doktori"))

	route := Route{BasePath: "/domovi-njega", CityInPath: true}
	assert.Equal(t, "/domovi-njega/zenica?sortiranje=ocjena", route.URL(Query{City: "zenica", Sort: "ocjena"}))
	assert.Equal(t, "/domovi-njega", route.URL(Query{}))
}

func TestQuery_BackendParamsNeverCarryFreeText(t *testing.T) {
	query := Query{Search: "hadzic", City: "sarajevo", Sort: "ocjena", Page: 2}

	params := query.BackendParams()

	assert.Equal(t, "sarajevo", params.Get("city"))
	assert.Equal(t, "-rating", params.Get("sort"))
	assert.Equal(t, "2", params.Get("page"))
	for key, values := range params {
		for _, value := range values {
			assert.NotContains(t, value, "hadzic", "free text leaked into backend param %s", key)
		}
	}
}

func TestApply_IgnoresCaseAndDiacritics(t *testing.T) {
	filtered := Apply(fetchedDoctors, Query{Search: "causevic"}, doctorText)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Dr. Emir Čaušević", filtered[0].Name)

	filtered = Apply(fetchedDoctors, Query{Search: "DJULOVIC"}, doctorText)
	require.Len(t, filtered, 1)

	filtered = Apply(fetchedDoctors, Query{Search: "Kardiologija"}, doctorText)
	require.Len(t, filtered, 1)
}

func TestCompose(t *testing.T) {
	route := Route{BasePath: "/doktori"}

	t.Run("Search Narrows Count But Not Total", func(t *testing.T) {
		result := Compose(route, Query{Search: "hadzic", City: "sarajevo"}, fetchedDoctors, doctorText)

		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 1, result.Count)
		assert.Nil(t, result.EmptyState)
		assert.Equal(t, "/doktori", result.ClearURL)
		require.Len(t, result.ActiveFilters, 2)
		assert.Equal(t, "pretraga", result.ActiveFilters[0].Key)
		assert.Equal(t, "/doktori?grad=sarajevo", result.ActiveFilters[0].RemoveURL)
		assert.Equal(t, "grad", result.ActiveFilters[1].Key)
		assert.Equal(t, "/doktori?pretraga=hadzic", result.ActiveFilters[1].RemoveURL)
	})

	t.Run("Zero Results Always Render Empty State", func(t *testing.T) {
		result := Compose(route, Query{Search: "ortopedija"}, fetchedDoctors, doctorText)

		assert.Equal(t, 0, result.Count)
		require.NotNil(t, result.EmptyState)
		assert.True(t, result.EmptyState.FiltersActive)
		assert.Equal(t, "/doktori", result.EmptyState.ClearURL)
		assert.NotNil(t, result.Items)
	})

	t.Run("Empty Backend Page Renders Empty State", func(t *testing.T) {
		result := Compose[doctor](route, Query{}, nil, doctorText)

		require.NotNil(t, result.EmptyState)
		assert.False(t, result.EmptyState.FiltersActive)
		assert.Equal(t, EmptyStateBareMessage, result.EmptyState.Message)
	})

	t.Run("Clearing Filters Restores Unfiltered Total", func(t *testing.T) {
		filtered := Compose(route, Query{Search: "neuro"}, fetchedDoctors, doctorText)
		require.Equal(t, 1, filtered.Count)

		cleared, err := url.Parse(filtered.ClearURL)
		require.NoError(t, err)
		result := Compose(route, Parse(cleared.Query()), fetchedDoctors, doctorText)

		assert.Equal(t, result.Total, result.Count)
		assert.Empty(t, result.ActiveFilters)
		assert.Equal(t, "/doktori", result.CanonicalURL)
	})
}

func TestResult_WithPagination(t *testing.T) {
	route := Route{BasePath: "/klinike"}
	result := Compose(route, Query{City: "mostar", Page: 2}, fetchedDoctors, doctorText).
		WithPagination(route, 24, 60, 0)

	require.NotNil(t, result.Pagination)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Equal(t, "/klinike?grad=mostar", result.Pagination.PrevURL)
	assert.Equal(t, "/klinike?grad=mostar&stranica=3", result.Pagination.NextURL)
}
