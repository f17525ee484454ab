package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cours-de-espanol/gdc"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ---- JSON response types ------------------------------------------------

type fragmentResponse struct {
	Fragment string   `json:"fragment"`
	Tokens   []string `json:"tokens"`
}

type sentenceJSON struct {
	Sentence string   `json:"sentence"`
	Tokens   []string `json:"tokens"`
}

type tokenizeResponse struct {
	Sentences []sentenceJSON `json:"sentences"`
}

type validateResponse struct {
	Tokens     []string             `json:"tokens"`
	Vocabulary gdc.VocabularyReport `json:"vocabulary"`
	// Grammar is omitted when the vocabulary check fails.
	Grammar *gdc.ValidationReport `json:"grammar,omitempty"`
}

type treeResponse struct {
	Tokens []string       `json:"tokens"`
	Tree   gdc.SyntaxNode `json:"tree"`
}

type wordBankResponse struct {
	Words []string `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// maxBodyBytes caps the size of a request body.
const maxBodyBytes = 1 << 20

// decodeBody decodes a JSON request body into v. It reports a 413 for a
// body over maxBodyBytes and a 400 for any other failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "body must be valid JSON")
		return false
	}
	return true
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		writeError(w, http.StatusMethodNotAllowed, method+" required")
		return false
	}
	return true
}

// ---- handlers -----------------------------------------------------------

func handleFragment(e *gdc.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		f := e.GenerateFragment()
		writeJSON(w, http.StatusOK, fragmentResponse{Fragment: f, Tokens: gdc.Tokenize(f)})
	}
}

func handleTokenize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		out := []sentenceJSON{}
		for _, s := range gdc.SplitIntoSentences(body.Text) {
			out = append(out, sentenceJSON{Sentence: s, Tokens: gdc.Tokenize(s)})
		}
		writeJSON(w, http.StatusOK, tokenizeResponse{Sentences: out})
	}
}

func handleWord(e *gdc.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		token := r.URL.Query().Get("token")
		if token == "" {
			writeError(w, http.StatusBadRequest, "missing 'token' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, e.WordInfo(token))
	}
}

func handleValidate(e *gdc.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var body struct {
			Sentence string `json:"sentence"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		tokens := gdc.Tokenize(body.Sentence)
		resp := validateResponse{Tokens: tokens, Vocabulary: e.ValidateVocabulary(tokens)}
		if resp.Vocabulary.Valid {
			report := e.ValidateTokens(tokens)
			resp.Grammar = &report
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleCheck(e *gdc.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		writeJSON(w, http.StatusOK, e.CheckText(body.Text))
	}
}

func handleAttempt(e *gdc.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var body struct {
			Fragment string   `json:"fragment"`
			Text     string   `json:"text"`
			Bank     []string `json:"bank"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Fragment == "" {
			writeError(w, http.StatusBadRequest, "missing 'fragment' field")
			return
		}
		writeJSON(w, http.StatusOK, e.CheckAttempt(body.Fragment, body.Text, body.Bank))
	}
}

func handleTree(e *gdc.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var body struct {
			Sentence string `json:"sentence"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		tokens := gdc.Tokenize(body.Sentence)
		writeJSON(w, http.StatusOK, treeResponse{Tokens: tokens, Tree: e.BuildSyntaxTree(tokens)})
	}
}

func handleWordBank(e *gdc.Engine, dfltSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		n := dfltSize
		if v := r.URL.Query().Get("n"); v != "" {
			var err error
			n, err = strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "'n' must be a non-negative integer")
				return
			}
		}
		writeJSON(w, http.StatusOK, wordBankResponse{Words: e.WordBank(n)})
	}
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog tags every request with an id and logs its outcome.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		t0 := time.Now()
		next.ServeHTTP(rec, r)
		log.Info().
			Str("requestId", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(t0)).
			Msg("request")
	})
}

func newRouter(e *gdc.Engine, conf *Conf) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/fragment", handleFragment(e))
	mux.HandleFunc("/api/tokenize", handleTokenize())
	mux.HandleFunc("/api/word", handleWord(e))
	mux.HandleFunc("/api/validate", handleValidate(e))
	mux.HandleFunc("/api/check", handleCheck(e))
	mux.HandleFunc("/api/attempt", handleAttempt(e))
	mux.HandleFunc("/api/tree", handleTree(e))
	mux.HandleFunc("/api/wordbank", handleWordBank(e, conf.WordBankSize))
	return withRequestLog(newCORS(conf).Handler(mux))
}
