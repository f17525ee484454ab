package main

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cours-de-espanol/gdc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	e, err := gdc.New(filepath.Join("..", "..", "data"), gdc.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	conf := &Conf{CORSOrigins: []string{"http://localhost:5173"}}
	require.NoError(t, conf.validate())
	return newRouter(e, conf)
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc), rec.Body.String())
	return rec, doc
}

func TestFragmentEndpoint(t *testing.T) {
	h := newTestRouter(t)
	rec, doc := do(t, h, http.MethodGet, "/api/fragment", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, doc["fragment"])
	assert.NotEmpty(t, doc["tokens"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t)
	rec, doc := do(t, h, http.MethodPost, "/api/fragment", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET required", doc["error"])
}

func TestTokenizeEndpoint(t *testing.T) {
	h := newTestRouter(t)
	rec, doc := do(t, h, http.MethodPost, "/api/tokenize", `{"text":"El gato come. ¿Duerme?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	sentences := doc["sentences"].([]any)
	require.Len(t, sentences, 2)
	first := sentences[0].(map[string]any)
	assert.Equal(t, "El gato come", first["sentence"])
	assert.Equal(t, []any{"El", "gato", "come"}, first["tokens"])
}

func TestWordEndpoint(t *testing.T) {
	h := newTestRouter(t)
	rec, doc := do(t, h, http.MethodGet, "/api/word?token=gatos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Noun", doc["category"])
	assert.Equal(t, "gato", doc["lemma"])
	assert.Equal(t, true, doc["plural"])

	rec, _ = do(t, h, http.MethodGet, "/api/word", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateEndpoint(t *testing.T) {
	h := newTestRouter(t)

	_, doc := do(t, h, http.MethodPost, "/api/validate", `{"sentence":"El gato comen"}`)
	grammar := doc["grammar"].(map[string]any)
	assert.Equal(t, false, grammar["valid"])
	errs := grammar["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, gdc.RuleSubjectVerb, errs[0].(map[string]any)["rule"])

	_, doc = do(t, h, http.MethodPost, "/api/validate", `{"sentence":"El gato xyz"}`)
	assert.Nil(t, doc["grammar"])
	vocab := doc["vocabulary"].(map[string]any)
	assert.Equal(t, false, vocab["valid"])

	rec, _ := do(t, h, http.MethodPost, "/api/validate", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckEndpoint(t *testing.T) {
	h := newTestRouter(t)
	_, doc := do(t, h, http.MethodPost, "/api/check", `{"text":"El perro duerme. La luz brilla."}`)
	assert.Equal(t, true, doc["valid"])
	assert.Equal(t, float64(2), doc["score"])
}

func TestBodyTooLarge(t *testing.T) {
	h := newTestRouter(t)
	body := `{"text":"` + strings.Repeat("el gato come. ", maxBodyBytes/10) + `"}`
	rec, doc := do(t, h, http.MethodPost, "/api/check", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request body too large", doc["error"])
}

func TestAttemptEndpoint(t *testing.T) {
	h := newTestRouter(t)
	_, doc := do(t, h, http.MethodPost, "/api/attempt",
		`{"fragment":"el gato come","text":"el gato come el pan","bank":["pan"]}`)
	assert.Equal(t, true, doc["valid"])
	assert.Equal(t, float64(6), doc["score"])

	rec, _ := do(t, h, http.MethodPost, "/api/attempt", `{"text":"el gato come"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTreeEndpoint(t *testing.T) {
	h := newTestRouter(t)
	_, doc := do(t, h, http.MethodPost, "/api/tree", `{"sentence":"el gato duerme"}`)
	tree := doc["tree"].(map[string]any)
	assert.Equal(t, "S", tree["symbol"])
	assert.Len(t, tree["children"], 2)
}

func TestWordBankEndpoint(t *testing.T) {
	h := newTestRouter(t)
	_, doc := do(t, h, http.MethodGet, "/api/wordbank", "")
	assert.Len(t, doc["words"], dfltWordBankSize)

	_, doc = do(t, h, http.MethodGet, "/api/wordbank?n=3", "")
	assert.Len(t, doc["words"], 3)

	rec, _ := do(t, h, http.MethodGet, "/api/wordbank?n=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/fragment", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestConf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"listenAddr":":9000","logLevel":"debug","wordBankSize":5}`), 0644))

	conf, err := loadConfig(path)
	require.NoError(t, err)
	conf.overrideWithCmd(CmdOptions{DataDir: "lexdata"})
	require.NoError(t, conf.validate())
	assert.Equal(t, ":9000", conf.ListenAddr)
	assert.Equal(t, "lexdata", conf.DataDir)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, 5, conf.WordBankSize)
	assert.Equal(t, dfltReadTimeoutSecs, conf.ReadTimeoutSecs)
	assert.Equal(t, []string{"*"}, conf.CORSOrigins)

	conf, err = loadConfig("")
	require.NoError(t, err)
	conf.overrideWithCmd(CmdOptions{LogLevel: "verbose"})
	assert.Error(t, conf.validate())

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidateLogsToConfiguredFile(t *testing.T) {
	logger, level := log.Logger, zerolog.GlobalLevel()
	defer func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	}()

	path := filepath.Join(t.TempDir(), "server.log")
	conf := &Conf{LogPath: path}
	require.NoError(t, setupLog(conf.LogPath, conf.LogLevel))
	require.NoError(t, conf.validate())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "corsOrigins not specified")

	assert.Error(t, setupLog("", "verbose"))
}
