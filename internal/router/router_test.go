package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
	"github.com/actuallystonmai/stylesense-service/internal/handler"
	"github.com/actuallystonmai/stylesense-service/internal/metrics"
	"github.com/actuallystonmai/stylesense-service/internal/service"
	"github.com/actuallystonmai/stylesense-service/internal/store"
)

type fakeCompleter struct {
	mu    sync.Mutex
	reply string
	err   error
	users []string
}

func (f *fakeCompleter) Complete(_ context.Context, _, user string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, user)
	return f.reply, f.err
}

func (f *fakeCompleter) lastUser() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.users) == 0 {
		return ""
	}
	return f.users[len(f.users)-1]
}

type testServer struct {
	http.Handler
	llm *fakeCompleter
	reg *metrics.Registry
}

func newTestServer(t *testing.T, llm *fakeCompleter) *testServer {
	t.Helper()
	reg := metrics.NewRegistry()
	svc := service.NewService(llm, time.Second, reg)
	h := handler.NewHandler(svc, store.New(store.NewMemory()))
	return &testServer{Handler: Setup(h, reg, 5*time.Second), llm: llm, reg: reg}
}

func (s *testServer) do(t *testing.T, method, path, clientID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set(handler.ClientIDHeader, clientID)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeCompleter{})
	rec := srv.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRecommendationEndpoint(t *testing.T) {
	llm := &fakeCompleter{reply: "Wear white sneakers."}
	srv := newTestServer(t, llm)

	rec := srv.do(t, http.MethodPost, "/api/ai", "", `{"imageDescription":"blue denim jacket"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Wear white sneakers.", decode[handler.RecommendationResponse](t, rec).Recommendation)
	assert.Equal(t, `Based on this outfit/clothing description: "blue denim jacket". Please provide style recommendations and suggestions.`, llm.lastUser())

	rec = srv.do(t, http.MethodPost, "/api/ai", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please provide a prompt or image description", decode[handler.ErrorResponse](t, rec).Error)

	rec = srv.do(t, http.MethodPost, "/api/ai", "", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/ai", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRecommendationUpstreamFailure(t *testing.T) {
	srv := newTestServer(t, &fakeCompleter{err: &domain.UpstreamError{StatusCode: 401, Message: "bad key"}})

	rec := srv.do(t, http.MethodPost, "/api/ai", "", `{"prompt":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Failed to get style recommendations", decode[handler.ErrorResponse](t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "bad key")
}

func TestEvaluateUsesSessionGender(t *testing.T) {
	llm := &fakeCompleter{reply: "SCORE: 9\nSTRENGTHS:\n- Sharp\nEDUCATIONAL INSIGHT: Fit matters."}
	srv := newTestServer(t, llm)

	rec := srv.do(t, http.MethodPost, "/api/auth/signup", "c1",
		`{"name":"Meera","email":"meera@example.com","password":"pw","gender":"female"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/api/evaluate", "c1", `{"description":"silk saree","occasion":"Wedding"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[domain.EvaluationResult](t, rec)
	assert.Equal(t, 9.0, got.Score)
	assert.Equal(t, []string{"Sharp"}, got.Strengths)
	assert.Equal(t, "Fit matters.", got.Educational)
	assert.Contains(t, llm.lastUser(), "for women")

	rec = srv.do(t, http.MethodPost, "/api/evaluate", "", `{"description":"silk saree","gender":"male"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, llm.lastUser(), "for men")
}

func TestOutfitEndpoints(t *testing.T) {
	llm := &fakeCompleter{reply: "look"}
	srv := newTestServer(t, llm)

	rec := srv.do(t, http.MethodPost, "/api/outfits/generate", "", `{"occasion":"Office","style":"Formal","color":"Pastels"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "look", decode[handler.RecommendationResponse](t, rec).Recommendation)

	rec = srv.do(t, http.MethodPost, "/api/outfits/generate", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/outfits/ideas", "", `{"occasion":"Brunch","season":"Spring"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/cultural/regions", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[handler.RegionsResponse](t, rec).Regions, len(domain.Regions))

	rec = srv.do(t, http.MethodPost, "/api/cultural", "", `{"region":"south","gender":"male"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, llm.lastUser(), "South India")

	rec = srv.do(t, http.MethodPost, "/api/cultural", "", `{"region":"mars"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuizEndpoints(t *testing.T) {
	srv := newTestServer(t, &fakeCompleter{reply: "Buy a linen shirt."})

	rec := srv.do(t, http.MethodGet, "/api/quiz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[handler.QuizResponse](t, rec).Questions, 5)

	rec = srv.do(t, http.MethodPost, "/api/quiz/result", "c1", `{"answers":["minimalist","casual","minimalist"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[domain.QuizResult](t, rec)
	assert.Equal(t, "minimalist", result.Style)
	assert.Equal(t, "Buy a linen shirt.", result.Advice)

	rec = srv.do(t, http.MethodGet, "/api/quiz/result", "c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, result, decode[domain.QuizResult](t, rec))

	rec = srv.do(t, http.MethodGet, "/api/quiz/result", "c2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/quiz/result", "", `{"answers":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t, &fakeCompleter{})
	signup := `{"name":"Arjun","email":"arjun@example.com","password":"pw","gender":"male"}`

	rec := srv.do(t, http.MethodPost, "/api/auth/signup", "", signup)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "client id is required")

	rec = srv.do(t, http.MethodPost, "/api/auth/signup", "c1", signup)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = srv.do(t, http.MethodPost, "/api/auth/signup", "c1", signup)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/auth/logout", "c1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/auth/me", "c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":null}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/api/auth/login", "c1", `{"email":"arjun@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/auth/login", "c1", `{"email":"arjun@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/auth/me", "c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[handler.UserResponse](t, rec)
	require.NotNil(t, me.User)
	assert.Equal(t, "Arjun", me.User.Name)
}

func TestWardrobeFlow(t *testing.T) {
	llm := &fakeCompleter{reply: "Style Distribution: Mostly casual\nGap Detected: Formal shoes"}
	srv := newTestServer(t, llm)

	rec := srv.do(t, http.MethodPost, "/api/wardrobe/analysis", "c1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty wardrobe")

	rec = srv.do(t, http.MethodPost, "/api/wardrobe", "c1", `{"name":"Kurta","color":"Ivory","category":"Tops"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	kurta := decode[domain.WardrobeItem](t, rec)

	rec = srv.do(t, http.MethodPost, "/api/wardrobe", "c1", `{"name":"Jeans","color":"Blue","category":"Bottoms"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/wardrobe", "c1", `{"name":"Scarf"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/wardrobe?category=Tops", "c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []domain.WardrobeItem{kurta}, decode[handler.WardrobeResponse](t, rec).Items)

	rec = srv.do(t, http.MethodPost, "/api/wardrobe/analysis", "c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	analysis := decode[domain.WardrobeAnalysis](t, rec)
	assert.Equal(t, "Mostly casual", analysis.StyleDistribution)
	assert.Equal(t, "Formal shoes", analysis.Gap)
	assert.Equal(t, "Good variety of colors", analysis.ColorAnalysis)

	rec = srv.do(t, http.MethodDelete, "/api/wardrobe/"+kurta.ID, "c1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = srv.do(t, http.MethodDelete, "/api/wardrobe/"+kurta.ID, "c1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/wardrobe", "c2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[handler.WardrobeResponse](t, rec).Items, "namespaces are isolated")
}

func TestSavedOutfitsAndReset(t *testing.T) {
	srv := newTestServer(t, &fakeCompleter{})

	rec := srv.do(t, http.MethodGet, "/api/saved", "c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[handler.SavedOutfitsResponse](t, rec)
	assert.Equal(t, domain.AllOutfits, listed.Collection)
	assert.Len(t, listed.Outfits, 3)

	rec = srv.do(t, http.MethodPost, "/api/saved", "c1", `{"title":"Sangeet look","description":"Mirror-work lehenga","occasion":"Wedding Guest"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/saved?collection=Wedding+Guest", "c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	wedding := decode[handler.SavedOutfitsResponse](t, rec).Outfits
	require.Len(t, wedding, 1)
	assert.Equal(t, "Sangeet look", wedding[0].Title)

	rec = srv.do(t, http.MethodDelete, "/api/saved/1", "c1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/saved/analysis?gender=male", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StyleProfileFor(domain.GenderMale), decode[domain.StyleProfile](t, rec))

	rec = srv.do(t, http.MethodDelete, "/api/storage", "c1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/saved", "c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[handler.SavedOutfitsResponse](t, rec).Outfits, 3, "demo outfits return after a reset")

	rec = srv.do(t, http.MethodDelete, "/api/storage", "bad id!", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeCompleter{reply: "ok"})
	srv.do(t, http.MethodPost, "/api/ai", "", `{"prompt":"hi"}`)

	rec := srv.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "upstream_requests_total{outcome=success} 1")
	assert.Contains(t, rec.Body.String(), "http_requests_total{method=POST,path=/api/ai,status=2xx} 1")
}
