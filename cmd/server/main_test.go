package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamecollector/backend/internal/config"
)

const seedYAML = `gamesystems:
  - id: gs-nes
    name: Nintendo NES
    description: 8-bit
videogames:
  - name: Super Mario Bros
    developer: Nintendo
    gamesystem: Nintendo NES
    year: 1985
`

func TestBuildRouterAppliesSeed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	seed := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(seed, []byte(seedYAML), 0o600))
	logger, hook := test.NewNullLogger()

	router, err := buildRouter(config.Settings{SeedFile: seed}, logger)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videogames?fields=name,gamesystem", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Super Mario Bros","gamesystem":"Nintendo NES"}]`, w.Body.String())

	var applied bool
	for _, e := range hook.AllEntries() {
		if e.Message == "seed applied" {
			applied = true
			assert.Equal(t, 1, e.Data["gamesystems"])
		}
	}
	assert.True(t, applied)
}

func TestBuildRouterMissingSeed(t *testing.T) {
	logger, _ := test.NewNullLogger()

	_, err := buildRouter(config.Settings{SeedFile: filepath.Join(t.TempDir(), "nope.yml")}, logger)

	assert.Error(t, err)
}

func TestBuildRouterEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()

	router, err := buildRouter(config.Settings{}, logger)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/gamesystems", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
