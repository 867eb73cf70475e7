package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/content-mock-backend/database"
	"github.com/rpupo63/content-mock-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	f, err := database.DefaultFixtures()
	require.NoError(t, err)
	return newRouter(database.New(f), withLogOutput(io.Discard))
}

func doRequest(t *testing.T, h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestListEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("posts", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/posts", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		posts := decodeBody[[]models.BlogPost](t, rec)
		require.Len(t, posts, 2)
		assert.Equal(t, "getting-started-with-nextjs-14", posts[0].Slug)
		assert.Equal(t, "mastering-tailwind-css-techniques", posts[1].Slug)
	})

	t.Run("courses", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/courses", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		courses := decodeBody[[]models.Course](t, rec)
		require.Len(t, courses, 1)
		assert.Equal(t, "1", courses[0].ID)
	})

	t.Run("projects", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/projects", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		projects := decodeBody[[]models.Project](t, rec)
		require.Len(t, projects, 1)
		assert.Equal(t, "Rust E-commerce API", projects[0].Title)
	})

	t.Run("leaderboard", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/leaderboard", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		entries := decodeBody[[]models.LeaderboardEntry](t, rec)
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 12000, entries[0].Points)
		assert.Equal(t, []string{"Ferris Follower", "Concurrency King"}, entries[0].Achievements)
	})
}

func TestGetPost(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/posts/getting-started-with-nextjs-14", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	post := decodeBody[models.BlogPost](t, rec)
	assert.Equal(t, "Getting Started with Next.js 14 (from Rust)", post.Title)
	assert.Equal(t, "Rust Admin", post.Author.Name)
	require.NotNil(t, post.Content)
	assert.Equal(t, "<p>This is the full content served from the Rust backend.</p>", *post.Content)

	raw := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "2024-07-21T12:00:00Z", raw["publishedAt"])
	assert.Equal(t, "https://picsum.photos/seed/blog1rust/600/400", raw["imageUrl"])
}

func TestGetPost_ContentIsHTMLEscapedJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/posts/getting-started-with-nextjs-14", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Body.String(), `\u003cp\u003eThis is the full content`)
	assert.NotContains(t, rec.Body.String(), "<p>")
}

func TestGetCourse(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/courses/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	course := decodeBody[models.Course](t, rec)
	assert.Equal(t, models.LevelAdvanced, course.Level)
	require.Len(t, course.Lessons, 1)
	assert.Equal(t, "Intro to Actix", course.Lessons[0].Title)
	require.NotNil(t, course.Instructor)
	assert.Equal(t, "Lead Rust Engineer", course.Instructor.Bio)

	raw := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Advanced", raw["level"])
	assert.Equal(t, 4.9, raw["rating"])
	assert.Equal(t, float64(1500), raw["studentCount"])
}

func TestGetProject(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/projects/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	raw := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "2024-06-01T00:00:00Z", raw["date"])
	assert.Equal(t, "#", raw["repoLink"])
	assert.Equal(t, []any{"Rust", "Actix-web", "API"}, raw["tags"])
}

func TestNotFound(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		target string
		body   string
	}{
		{"/api/posts/does-not-exist", "Post not found"},
		{"/api/posts/1", "Post not found"},
		{"/api/courses/2", "Course not found"},
		{"/api/courses/getting-started-with-nextjs-14", "Course not found"},
		{"/api/projects/999", "Project not found"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.target, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		})
	}
}

func TestOptionalFieldsAreOmitted(t *testing.T) {
	f := database.Fixtures{
		Posts:       []models.BlogPost{{ID: "1", Slug: "bare", Tags: []string{}}},
		Courses:     []models.Course{{ID: "1", Level: models.LevelBeginner}},
		Projects:    []models.Project{{ID: "1", Tags: []string{}}},
		Leaderboard: []models.LeaderboardEntry{{ID: "1", Achievements: []string{}}},
	}
	router := newRouter(database.New(f), withLogOutput(io.Discard))

	tests := []struct {
		target  string
		absent  []string
		present []string
	}{
		{"/api/posts/bare", []string{"publishedAt", "content"}, []string{"tags", "author", "summary"}},
		{"/api/courses/1", []string{"instructor", "rating", "studentCount", "duration", "lessons"}, []string{"price", "level"}},
		{"/api/projects/1", []string{"longDescription", "technologies", "liveLink", "repoLink", "date"}, []string{"tags", "imageUrl"}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			raw := decodeBody[map[string]any](t, rec)
			for _, key := range tt.absent {
				assert.NotContains(t, raw, key)
			}
			for _, key := range tt.present {
				assert.Contains(t, raw, key)
			}
		})
	}

	rec := doRequest(t, router, http.MethodGet, "/api/leaderboard", nil)
	assert.JSONEq(t, `[{"id":"1","rank":0,"name":"","avatarUrl":"","points":0,"achievements":[]}]`, rec.Body.String())
}

func TestResponsesAreIdempotent(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/api/posts", "/api/posts/mastering-tailwind-css-techniques", "/api/courses", "/api/courses/1", "/api/projects", "/api/projects/1", "/api/leaderboard", "/api/posts/nope"} {
		first := doRequest(t, router, http.MethodGet, target, nil)
		second := doRequest(t, router, http.MethodGet, target, nil)
		assert.Equal(t, first.Code, second.Code, target)
		assert.Equal(t, first.Body.Bytes(), second.Body.Bytes(), target)
	}
}

func TestConcurrentRequests(t *testing.T) {
	router := newTestRouter(t)
	want := doRequest(t, router, http.MethodGet, "/api/posts", nil).Body.String()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := doRequest(t, router, http.MethodGet, "/api/posts", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, want, rec.Body.String())
		}()
	}
	wg.Wait()
}

func TestUnsupportedMethodsAndRoutes(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, http.StatusMethodNotAllowed, doRequest(t, router, http.MethodPost, "/api/posts", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, doRequest(t, router, http.MethodDelete, "/api/courses/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/api/unknown", nil).Code)
}

func TestHealth(t *testing.T) {
	f, err := database.DefaultFixtures()
	require.NoError(t, err)
	router := newRouter(database.New(f), withLogOutput(io.Discard), withInstanceID("test-instance"))

	rec := doRequest(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	health := decodeBody[HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test-instance", health.InstanceID)
	assert.Equal(t, map[string]int{"posts": 2, "courses": 1, "projects": 1, "leaderboard": 1}, health.Collections)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/leaderboard", map[string]string{"X-Request-Id": "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	rec = doRequest(t, router, http.MethodGet, "/api/leaderboard", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
