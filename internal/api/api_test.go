package api

import (
	"alcyxob/workout-tracker/internal/catalog"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/realtime"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/repository/memory"
	"alcyxob/workout-tracker/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	set    *repository.Set
	hub    *realtime.Hub
	token  string
}

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := logging.NewNop()
	set := memory.NewSet()
	hub := realtime.NewHub(time.Minute, logger)
	t.Cleanup(hub.Close)

	svc := Services{
		Auth:     service.NewAuthService(set.Users, "test-secret", time.Hour),
		Workouts: service.NewWorkoutService(set.Workouts, hub, nil, logger),
		Progress: service.NewProgressService(set.Weights, logger),
		Meals:    service.NewMealService(set.Meals),
		Catalog:  catalog.NewSessions(time.Minute),
		Hub:      hub,
	}
	router := gin.New()
	router.Use(Recovery(logger), RequestLogger(logger))
	SetupRoutes(router, svc, logger)

	ts := &testServer{router: router, set: set, hub: hub}
	var auth AuthResponse
	w := ts.do(t, http.MethodPost, "/api/v1/auth/signup", gin.H{"email": "ana@example.com", "password": "secret1", "fullName": "Ana"}, &auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ts.token = auth.Token
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	if out != nil && w.Code < 300 && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w
}

func legDayBody() gin.H {
	return gin.H{
		"name": "Leg Day",
		"day":  "Monday",
		"exercises": []gin.H{
			{"name": "Squats", "weights": []float64{50, 55, 60}},
		},
	}
}

func TestPing(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)
	ts.token = ""
	w := ts.do(t, http.MethodGet, "/api/v1/workouts", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.token = "not-a-jwt"
	w = ts.do(t, http.MethodGet, "/api/v1/workouts", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignInAndMe(t *testing.T) {
	ts := newTestServer(t)

	var me UserResponse
	w := ts.do(t, http.MethodGet, "/api/v1/me", nil, &me)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana@example.com", me.Email)
	assert.Equal(t, "Ana", me.FullName)

	ts.token = ""
	w = ts.do(t, http.MethodPost, "/api/v1/auth/signin", gin.H{"email": "ana@example.com", "password": "wrong-one"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var auth AuthResponse
	w = ts.do(t, http.MethodPost, "/api/v1/auth/signin", gin.H{"email": "ana@example.com", "password": "secret1"}, &auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, auth.Token)

	w = ts.do(t, http.MethodPost, "/api/v1/auth/signup", gin.H{"email": "ana@example.com", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

type unavailableUsers struct {
	repository.UserRepository
}

func (unavailableUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, errors.New("connection refused")
}

func TestSignInFailuresLookAlike(t *testing.T) {
	signIn := func(users repository.UserRepository, email, password string) *httptest.ResponseRecorder {
		h := NewAuthHandler(service.NewAuthService(users, "test-secret", time.Hour), logging.NewNop())
		router := gin.New()
		router.POST("/signin", h.SignIn)
		body, _ := json.Marshal(gin.H{"email": email, "password": password})
		req := httptest.NewRequest(http.MethodPost, "/signin", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	ts := newTestServer(t)
	wrongPassword := signIn(ts.set.Users, "ana@example.com", "wrong-one")
	unknownUser := signIn(ts.set.Users, "nobody@example.com", "secret1")
	storeDown := signIn(unavailableUsers{}, "ana@example.com", "secret1")

	for _, w := range []*httptest.ResponseRecorder{wrongPassword, unknownUser, storeDown} {
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
	}
}

func TestCreateWorkoutAndFetch(t *testing.T) {
	ts := newTestServer(t)

	var created WorkoutResponse
	w := ts.do(t, http.MethodPost, "/api/v1/workouts", legDayBody(), &created)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, domain.Monday, created.Day)
	assert.Equal(t, 3, created.Reps)
	assert.Equal(t, catalog.ImageFor("Squats"), created.Image)

	var got WorkoutResponse
	w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/v1/workouts/%d", created.ID), nil, &got)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Leg Day", got.Name)
	assert.Equal(t, []float64{50, 55, 60}, got.Exercises[0].Weights)

	w = ts.do(t, http.MethodGet, "/api/v1/workouts/123", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = ts.do(t, http.MethodGet, "/api/v1/workouts/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWorkoutValidation(t *testing.T) {
	ts := newTestServer(t)

	for name, mutate := range map[string]func(b gin.H){
		"bad day":      func(b gin.H) { b["day"] = "Someday" },
		"missing day":  func(b gin.H) { delete(b, "day") },
		"blank name":   func(b gin.H) { b["name"] = "  " },
		"no exercises": func(b gin.H) { b["exercises"] = []gin.H{} },
		"zero weight":  func(b gin.H) { b["exercises"] = []gin.H{{"name": "Squats", "weights": []float64{50, 0}}} },
	} {
		t.Run(name, func(t *testing.T) {
			body := legDayBody()
			mutate(body)
			w := ts.do(t, http.MethodPost, "/api/v1/workouts", body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	all, err := ts.set.Workouts.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSetEdits(t *testing.T) {
	ts := newTestServer(t)
	body := gin.H{"name": "Chest", "day": "tuesday", "exercises": []gin.H{{"name": "Bench Press", "weights": []float64{40, 40}}}}
	var created WorkoutResponse
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/v1/workouts", body, &created).Code)
	base := fmt.Sprintf("/api/v1/workouts/%d/exercises", created.ID)

	var edited WorkoutResponse
	w := ts.do(t, http.MethodDelete, base+"/0/sets/1", nil, &edited)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []float64{40}, edited.Exercises[0].Weights)

	w = ts.do(t, http.MethodPost, base+"/0/sets", gin.H{"weight": 0}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, base+"/0/sets", gin.H{"weight": 45}, &edited)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []float64{40, 45}, edited.Exercises[0].Weights)

	w = ts.do(t, http.MethodPut, base+"/0/sets/0", gin.H{"weight": 42.5}, &edited)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []float64{42.5, 45}, edited.Exercises[0].Weights)

	w = ts.do(t, http.MethodPut, base+"/0/sets/9", gin.H{"weight": 42.5}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, base, gin.H{"name": "Push-ups", "weights": []float64{1}}, &edited)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, edited.Exercises, 2)

	w = ts.do(t, http.MethodDelete, base+"/0", nil, &edited)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, edited.Exercises, 1)
	assert.Equal(t, "Push-ups", edited.Exercises[0].Name)

	// Removing the last exercise would leave an invalid workout.
	w = ts.do(t, http.MethodDelete, base+"/0", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteWorkout(t *testing.T) {
	ts := newTestServer(t)
	var created WorkoutResponse
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/v1/workouts", legDayBody(), &created).Code)
	path := fmt.Sprintf("/api/v1/workouts/%d", created.ID)

	body := legDayBody()
	body["day"] = "Friday"
	var updated WorkoutResponse
	w := ts.do(t, http.MethodPut, path, body, &updated)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.Friday, updated.Day)

	var groups []DayGroupResponse
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/workouts/by-day", nil, &groups).Code)
	require.Len(t, groups, 7)
	assert.Equal(t, domain.Sunday, groups[0].Day)
	assert.Empty(t, groups[domain.Monday.Index()].Workouts)
	assert.Len(t, groups[domain.Friday.Index()].Workouts, 1)

	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, path, nil, nil).Code)
	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, path, nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, path, nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPut, path, body, nil).Code)
}

func TestTemplatesAndHistory(t *testing.T) {
	ts := newTestServer(t)
	_, err := repository.Seed(context.Background(), ts.set.Workouts)
	require.NoError(t, err)

	var templates []WorkoutResponse
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/workouts?template=true", nil, &templates).Code)
	require.Len(t, templates, 2)

	var instance WorkoutResponse
	w := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/templates/%d/instantiate", templates[1].ID), gin.H{"day": "Saturday"}, &instance)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, domain.Saturday, instance.Day)
	assert.False(t, instance.IsTemplate)

	var recent []WorkoutResponse
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/workouts/recent?count=1", nil, &recent).Code)
	require.Len(t, recent, 1)
	assert.Equal(t, instance.ID, recent[0].ID)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/v1/workouts?template=maybe", nil, nil).Code)

	var stats service.WeeklyStats
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/workouts/stats/weekly", nil, &stats).Code)
	assert.Equal(t, 1, stats.Workouts)
}

func TestImageUploadDisabled(t *testing.T) {
	ts := newTestServer(t)
	var created WorkoutResponse
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/v1/workouts", legDayBody(), &created).Code)

	w := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/workouts/%d/image/upload-url", created.ID), gin.H{"contentType": "image/png"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCatalogPicker(t *testing.T) {
	ts := newTestServer(t)

	var cat CatalogResponse
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/catalog", nil, &cat).Code)
	assert.Equal(t, catalog.Categories(), cat.Categories)

	var opened struct {
		SessionID string                `json:"sessionId"`
		Exercises []domain.ExerciseInfo `json:"exercises"`
	}
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/v1/catalog/pickers", nil, &opened).Code)
	base := "/api/v1/catalog/pickers/" + opened.SessionID

	var chest []domain.ExerciseInfo
	w := ts.do(t, http.MethodPost, base+"/custom", gin.H{"category": "chest", "name": "Cable Fly"}, &chest)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, chest, 3)
	assert.True(t, chest[2].Custom)

	assert.Equal(t, http.StatusConflict, ts.do(t, http.MethodPost, base+"/custom", gin.H{"category": "Chest", "name": "bench press"}, nil).Code)

	w = ts.do(t, http.MethodPost, base+"/hidden", gin.H{"category": "Chest", "name": "Push-ups"}, &chest)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, chest, 2)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, base+"?category=Chest", nil, &chest).Code)
	assert.Equal(t, "Bench Press", chest[0].Name)
	assert.Equal(t, "Cable Fly", chest[1].Name)

	w = ts.do(t, http.MethodDelete, base+"/hidden", gin.H{"category": "Chest", "name": "Push-ups"}, &chest)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, chest, 3)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, base+"?category=Toes", nil, nil).Code)

	var found []domain.ExerciseInfo
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, base+"?q=fly", nil, &found).Code)
	require.Len(t, found, 1)

	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, base, nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, base, nil, nil).Code)
}

func TestProgressAndMeals(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/v1/progress/weights", gin.H{"value": 75.5, "date": "2025-01-01T08:00:00Z"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = ts.do(t, http.MethodPost, "/api/v1/progress/weights", gin.H{"value": 74.5}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/progress/weights", gin.H{"value": -1}, nil).Code)

	var entries []domain.WeightEntry
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/progress/weights?limit=1", nil, &entries).Code)
	require.Len(t, entries, 1)
	assert.Equal(t, 74.5, entries[0].Value)

	var trend domain.WeightTrend
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/progress/weights/trend", nil, &trend).Code)
	assert.Equal(t, 74.5, trend.Current)
	assert.Equal(t, -1.0, trend.Change)
	assert.Equal(t, 75.0, trend.Average)

	var meal domain.Meal
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/v1/meals", gin.H{"name": "Oatmeal", "calories": 350, "time": "8:00 AM"}, &meal).Code)
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/v1/meals", gin.H{"name": "Salad", "calories": 450, "time": "12:30 PM"}, nil).Code)

	var log service.MealLog
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/meals", nil, &log).Code)
	assert.Equal(t, 800, log.TotalCalories)

	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, "/api/v1/meals/"+meal.ID, nil, nil).Code)
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/meals", nil, &log).Code)
	assert.Equal(t, 450, log.TotalCalories)
}

func TestDiscoverListings(t *testing.T) {
	ts := newTestServer(t)

	var supplements []domain.Supplement
	w := ts.do(t, http.MethodGet, "/api/v1/discover/supplements?q=whey", nil, &supplements)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, supplements, 1)
	assert.Equal(t, "Whey Protein", supplements[0].Name)

	w = ts.do(t, http.MethodGet, "/api/v1/discover/supplements?category=creatine", nil, &supplements)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, supplements, 1)
	assert.Equal(t, "Muscle Shop", supplements[0].Shop)

	var coaches []domain.Coach
	w = ts.do(t, http.MethodGet, "/api/v1/discover/coaches?q=MIKE", nil, &coaches)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, coaches, 1)
	assert.Equal(t, "Chicago, IL", coaches[0].Location)

	w = ts.do(t, http.MethodGet, "/api/v1/discover/coaches?q=nobody", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	ts.token = ""
	w = ts.do(t, http.MethodGet, "/api/v1/discover/coaches", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
