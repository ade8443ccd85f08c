package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const speciesListJSON = `{
	"data": [
		{
			"id": 425,
			"common_name": "Swiss cheese plant",
			"scientific_name": ["Monstera deliciosa"],
			"other_name": ["Split-leaf philodendron"],
			"default_image": {"medium_url": "https://img.example/monstera.jpg"},
			"care_level": "Medium"
		},
		{
			"id": 426,
			"common_name": "Pothos",
			"scientific_name": [],
			"other_name": []
		}
	]
}`

func newPerenualTestService(srv *httptest.Server) *PerenualService {
	return &PerenualService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSearchPlants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/species-list", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "monstera", r.URL.Query().Get("q"))
		w.Write([]byte(speciesListJSON))
	}))
	defer srv.Close()

	results, err := newPerenualTestService(srv).SearchPlants("monstera")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "425", results[0].ID)
	assert.Equal(t, "Swiss cheese plant", results[0].Name)
	assert.Equal(t, "Monstera deliciosa", results[0].ScientificName)
	assert.Equal(t, []string{"Split-leaf philodendron"}, results[0].CommonNames)
	assert.Equal(t, "https://img.example/monstera.jpg", results[0].ImageURL)
	assert.Equal(t, "Medium", results[0].CareLevel)

	assert.Equal(t, "426", results[1].ID)
	assert.Empty(t, results[1].ScientificName)
	assert.Empty(t, results[1].ImageURL)
}

func TestSearchPlantsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newPerenualTestService(srv).SearchPlants("monstera")
	assert.Error(t, err)
}

func TestGetCareInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/species/details/425", r.URL.Path)
		w.Write([]byte(`{
			"common_name": "Swiss cheese plant",
			"scientific_name": ["Monstera deliciosa"],
			"watering": "Average",
			"sunlight": ["part shade"],
			"hardiness": {"min": "10", "max": "12"},
			"problem": ["root rot"],
			"care_guides": ["Water when topsoil is dry"]
		}`))
	}))
	defer srv.Close()

	info, err := newPerenualTestService(srv).GetCareInfo("425")
	require.NoError(t, err)

	assert.Equal(t, "425", info.PlantID)
	assert.Equal(t, "Swiss cheese plant", info.Name)
	assert.Equal(t, "Monstera deliciosa", info.ScientificName)
	assert.Equal(t, "Average", info.Watering)
	assert.Equal(t, "part shade", info.Sunlight)
	assert.Equal(t, "10 - 12°C", info.Temperature)
	assert.Equal(t, []string{"root rot"}, info.CommonProblems)
	assert.Equal(t, []string{"Water when topsoil is dry"}, info.CareTips)
}

func TestGetCareInfoNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newPerenualTestService(srv).GetCareInfo("999999")
	assert.ErrorIs(t, err, ErrPlantNotFound)
}
