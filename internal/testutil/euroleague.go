package testutil

import (
	"embed"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/gzhttp"
)

//go:embed testdata
var fixtureFS embed.FS

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// FakeEuroleague serves canned Euroleague API responses: the legacy XML API
// under /v1/ and the JSON API under /v2/. List routes honour offset and limit.
type FakeEuroleague struct {
	Server *httptest.Server

	handler  http.Handler
	fixtures map[string]any

	mu       sync.Mutex
	requests []*http.Request
}

// NewFakeEuroleague starts a fake API that is closed when the test ends.
func NewFakeEuroleague(t *testing.T) *FakeEuroleague {
	t.Helper()
	f := &FakeEuroleague{fixtures: map[string]any{}}
	for _, name := range []string{
		"referees.json", "venues.json", "people.json", "bios.json", "clubs.json", "videos.json",
		"competitions.json", "seasons.json", "games.json", "stats.json", "records.json", "roster.json",
	} {
		f.fixtures[name] = mustFixture(t, name)
	}
	f.handler = gzhttp.GzipHandler(f.routes())
	f.Server = httptest.NewServer(f.handler)
	t.Cleanup(f.Server.Close)
	return f
}

// V1URL is the base URL of the legacy API.
func (f *FakeEuroleague) V1URL() string { return f.Server.URL + "/v1/" }

// V2URL is the base URL of the JSON API.
func (f *FakeEuroleague) V2URL() string { return f.Server.URL + "/v2/" }

// Handler exposes the router for in-process tests.
func (f *FakeEuroleague) Handler() http.Handler { return f.handler }

// Requests returns the requests received so far, oldest first.
func (f *FakeEuroleague) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

// LastRequest returns the most recent request, or nil.
func (f *FakeEuroleague) LastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

func (f *FakeEuroleague) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(f.track)

	r.Get("/v1/referees", f.serveRaw("referees.xml", "application/xml; charset=utf-8"))

	r.Route("/v2", func(r chi.Router) {
		r.Get("/referees", f.serveList("referees.json", nil))
		r.Get("/referees/{code}", f.serveItem("referees.json", "code", "code"))
		r.Get("/venues", f.serveList("venues.json", nil))
		r.Get("/venues/{code}", f.serveItem("venues.json", "code", "code"))
		r.Get("/people", f.serveEnvelope("people.json"))
		r.Get("/people/{code}", f.serveItem("people.json", "code", "code"))
		r.Get("/people/{code}/bio", f.serveKeyed("bios.json", "code"))
		r.Get("/clubs", f.serveList("clubs.json", nil))
		r.Get("/clubs/{code}", f.serveItem("clubs.json", "code", "code"))
		r.Get("/clubs/{code}/videos", f.serveList("videos.json", matchParam("clubCode", "code")))
		r.Get("/status/{status}", serveStatus)

		r.Route("/competitions/{competition}", func(r chi.Router) {
			r.Get("/", f.serveItem("competitions.json", "code", "competition"))
			r.Get("/seasons", f.serveList("seasons.json", matchParam("competitionCode", "competition")))

			r.Route("/seasons/{season}", func(r chi.Router) {
				r.Get("/games", f.serveList("games.json", matchParam("season.code", "season")))
				r.Get("/games/{game}", f.serveGame)
				r.Get("/games/{game}/stats", f.serveStats)
				r.Get("/records", f.serveRecords("season"))
				r.Get("/records/games", f.serveRecords("games"))
				r.Get("/records/playerhighs", f.serveRecords("playerhighs"))
				r.Get("/clubs/{club}/people", f.serveList("roster.json", func(r *http.Request, item map[string]any) bool {
					return lookup(item, "club.code") == chi.URLParam(r, "club") &&
						lookup(item, "season.code") == chi.URLParam(r, "season")
				}))
			})
		})
	})
	return r
}

func (f *FakeEuroleague) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

type matcher func(r *http.Request, item map[string]any) bool

func matchParam(path, param string) matcher {
	return func(r *http.Request, item map[string]any) bool {
		return lookup(item, path) == chi.URLParam(r, param)
	}
}

func (f *FakeEuroleague) serveRaw(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fixtureFS.ReadFile("testdata/" + name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
	}
}

func (f *FakeEuroleague) serveList(name string, keep matcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := filter(r, asList(f.fixtures[name]), keep)
		if len(items) == 0 && keep != nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, paginate(r, items))
	}
}

func (f *FakeEuroleague) serveEnvelope(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := asList(f.fixtures[name])
		writeJSON(w, http.StatusOK, map[string]any{
			"data":  paginate(r, items),
			"total": len(items),
		})
	}
}

func (f *FakeEuroleague) serveItem(name, field, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		want := chi.URLParam(r, param)
		for _, item := range asList(f.fixtures[name]) {
			if lookup(item, field) == want {
				writeJSON(w, http.StatusOK, item)
				return
			}
		}
		notFound(w, want)
	}
}

func (f *FakeEuroleague) serveKeyed(name, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		byKey, _ := f.fixtures[name].(map[string]any)
		v, ok := byKey[chi.URLParam(r, param)]
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func (f *FakeEuroleague) serveGame(w http.ResponseWriter, r *http.Request) {
	season, game := chi.URLParam(r, "season"), chi.URLParam(r, "game")
	for _, item := range asList(f.fixtures["games.json"]) {
		if lookup(item, "season.code") == season && lookup(item, "gameCode") == game {
			writeJSON(w, http.StatusOK, item)
			return
		}
	}
	notFound(w, season+"/"+game)
}

func (f *FakeEuroleague) serveStats(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "season") + "_" + chi.URLParam(r, "game")
	byGame, _ := f.fixtures["stats.json"].(map[string]any)
	v, ok := byGame[key]
	if !ok {
		notFound(w, key)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (f *FakeEuroleague) serveRecords(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bySeason, _ := f.fixtures["records.json"].(map[string]any)
		season, ok := bySeason[chi.URLParam(r, "season")].(map[string]any)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": season[kind]})
	}
}

func serveStatus(w http.ResponseWriter, r *http.Request) {
	status, err := strconv.Atoi(chi.URLParam(r, "status"))
	if err != nil || status < 100 || status > 599 {
		status = http.StatusBadRequest
	}
	w.WriteHeader(status)
	if status != http.StatusNoContent {
		fmt.Fprintf(w, "status %d", status)
	}
}

func notFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, map[string]any{"message": fmt.Sprintf("%s not found", what)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := jsonAPI.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func filter(r *http.Request, items []map[string]any, keep matcher) []map[string]any {
	if keep == nil {
		return items
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if keep(r, item) {
			out = append(out, item)
		}
	}
	return out
}

func paginate(r *http.Request, items []map[string]any) []map[string]any {
	q := r.URL.Query()
	offset, _ := strconv.Atoi(q.Get("offset"))
	limit, err := strconv.Atoi(q.Get("limit"))
	if offset < 0 || offset > len(items) {
		offset = len(items)
	}
	end := len(items)
	if err == nil && limit >= 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// asList accepts a bare array or a {"data": [...]} envelope.
func asList(v any) []map[string]any {
	if env, ok := v.(map[string]any); ok {
		v = env["data"]
	}
	raw, _ := v.([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// lookup follows a dotted path and formats the leaf with fmt.Sprint.
func lookup(item map[string]any, path string) string {
	var cur any = item
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[part]
	}
	if cur == nil {
		return ""
	}
	return fmt.Sprint(cur)
}

func mustFixture(t *testing.T, name string) any {
	t.Helper()
	data, err := fixtureFS.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	var v any
	if err := jsonAPI.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
	return v
}

// Fixture returns the raw bytes of an embedded fixture file.
func Fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := fixtureFS.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}
