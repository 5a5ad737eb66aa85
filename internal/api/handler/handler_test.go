package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/config"
	"github.com/6394981696/Lecture-Scheduling/internal/api/middleware"
	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
	"github.com/6394981696/Lecture-Scheduling/internal/service"
	"github.com/6394981696/Lecture-Scheduling/internal/session"
	"github.com/6394981696/Lecture-Scheduling/pkg/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock API clients
// ═══════════════════════════════════════════════════════════

type mockAuthAPI struct {
	loginResult    *session.Principal
	loginErr       error
	loginCalls     int
	registerResult *session.Principal
	registerErr    error
	registerCalls  int
}

func (m *mockAuthAPI) Login(_ context.Context, _, _ string) (*session.Principal, error) {
	m.loginCalls++
	return m.loginResult, m.loginErr
}

func (m *mockAuthAPI) Register(_ context.Context, _, _, _ string, _ bool) (*session.Principal, error) {
	m.registerCalls++
	return m.registerResult, m.registerErr
}

type mockCourseAPI struct {
	courses   []apiclient.Course
	listErr   error
	listCalls int
	added     []apiclient.NewCourse
	addErr    error
}

func (m *mockCourseAPI) ListCourses(_ context.Context) ([]apiclient.Course, error) {
	m.listCalls++
	return m.courses, m.listErr
}

func (m *mockCourseAPI) AddCourse(_ context.Context, course apiclient.NewCourse) (*apiclient.Course, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	m.added = append(m.added, course)
	return &apiclient.Course{ID: "new", Name: course.Name}, nil
}

type mockInstructorAPI struct {
	instructors []apiclient.Instructor
	listErr     error
	added       []apiclient.NewInstructor
	addErr      error
}

func (m *mockInstructorAPI) ListInstructors(_ context.Context) ([]apiclient.Instructor, error) {
	return m.instructors, m.listErr
}

func (m *mockInstructorAPI) AddInstructor(_ context.Context, ins apiclient.NewInstructor) (*apiclient.Instructor, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	m.added = append(m.added, ins)
	return &apiclient.Instructor{ID: "new", Name: ins.Name}, nil
}

type mockScheduleAPI struct {
	items  []apiclient.ScheduleItem
	getErr error
	added  []apiclient.NewScheduleEntry
	addErr error
}

func (m *mockScheduleAPI) GetUserSchedule(_ context.Context, _ string) ([]apiclient.ScheduleItem, error) {
	return m.items, m.getErr
}

func (m *mockScheduleAPI) AddScheduleEntry(_ context.Context, entry apiclient.NewScheduleEntry) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, entry)
	return nil
}

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ScheduleWorkbook(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

func (m *mockExportService) ScheduleCalendar(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

var _ service.ExportService = (*mockExportService)(nil)

// ═══════════════════════════════════════════════════════════
// Test helpers
// ═══════════════════════════════════════════════════════════

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	tmpl, err := LoadTemplates()
	if err != nil {
		t.Fatalf("loading templates failed: %v", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	return r
}

func testSessionCfg() *config.SessionConfig {
	return &config.SessionConfig{
		Secret: "test-secret-at-least-16-chars",
		TTL:    time.Hour,
	}
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// injectPrincipal stands in for the session middleware.
func injectPrincipal(p *session.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal", p)
		c.Set("session_id", "sid-test")
	}
}

func flashFrom(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge >= 0 && c.Value != "" {
			v, _ := url.QueryUnescape(c.Value)
			return v
		}
	}
	return ""
}

// ═══════════════════════════════════════════════════════════
// AuthHandler
// ═══════════════════════════════════════════════════════════

func TestLogin_Success_AdminRedirect(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	tokens := token.NewManager(testSessionCfg())
	mock := &mockAuthAPI{loginResult: &session.Principal{Username: "alice", Email: "a@b.com", IsAdmin: true}}
	h := NewAuthHandler(mock, store, tokens, testSessionCfg(), zap.NewNop())

	r := newEngine(t)
	r.POST("/login", h.Login)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/login", url.Values{"username": {"alice"}, "password": {"secret123"}}))

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/admin" {
		t.Fatalf("expected redirect to /admin, got %d %s", w.Code, w.Header().Get("Location"))
	}

	// the session cookie must resolve back to the principal
	var sessionCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	sid, err := tokens.Parse(sessionCookie.Value)
	if err != nil {
		t.Fatalf("session cookie does not parse: %v", err)
	}
	p, err := store.Get(context.Background(), sid)
	if err != nil {
		t.Fatalf("session record missing: %v", err)
	}
	if p.Username != "alice" || p.Email != "a@b.com" || !p.IsAdmin {
		t.Errorf("unexpected stored principal: %+v", p)
	}
}

func TestLogin_Success_InstructorRedirect(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	mock := &mockAuthAPI{loginResult: &session.Principal{Username: "bob"}}
	h := NewAuthHandler(mock, store, token.NewManager(testSessionCfg()), testSessionCfg(), zap.NewNop())

	r := newEngine(t)
	r.POST("/login", h.Login)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/login", url.Values{"username": {"bob"}, "password": {"secret123"}}))

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/instructor" {
		t.Errorf("expected redirect to /instructor, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestLogin_EmptyPassword_NoAPICall(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	mock := &mockAuthAPI{}
	h := NewAuthHandler(mock, store, token.NewManager(testSessionCfg()), testSessionCfg(), zap.NewNop())

	r := newEngine(t)
	r.POST("/login", h.Login)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/login", url.Values{"username": {"alice"}, "password": {""}}))

	if mock.loginCalls != 0 {
		t.Errorf("expected no API call, got %d", mock.loginCalls)
	}
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Username and Password are required.") {
		t.Errorf("expected validation message in re-rendered form, got %d", w.Code)
	}
}

func TestLogin_InvalidCredentials_ShowsServerMessage(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	mock := &mockAuthAPI{loginErr: &apiclient.APIError{Message: "Incorrect username or password."}}
	h := NewAuthHandler(mock, store, token.NewManager(testSessionCfg()), testSessionCfg(), zap.NewNop())

	r := newEngine(t)
	r.POST("/login", h.Login)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/login", url.Values{"username": {"alice"}, "password": {"wrong-pass"}}))

	if !strings.Contains(w.Body.String(), "Incorrect username or password.") {
		t.Error("expected upstream message in response")
	}
}

func TestLogin_TransportFailure_GenericMessage(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	mock := &mockAuthAPI{loginErr: errors.New("connection refused")}
	h := NewAuthHandler(mock, store, token.NewManager(testSessionCfg()), testSessionCfg(), zap.NewNop())

	r := newEngine(t)
	r.POST("/login", h.Login)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/login", url.Values{"username": {"alice"}, "password": {"secret123"}}))

	if !strings.Contains(w.Body.String(), "Login failed. Please try again.") {
		t.Error("expected generic fallback message")
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Error("internal error details must not leak into the page")
	}
}

func TestRegister_PasswordMismatch_NoAPICall(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	mock := &mockAuthAPI{}
	h := NewAuthHandler(mock, store, token.NewManager(testSessionCfg()), testSessionCfg(), zap.NewNop())

	r := newEngine(t)
	r.POST("/register", h.Register)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/register", url.Values{
		"username":        {"bob"},
		"email":           {"a@b.com"},
		"password":        {"abc123"},
		"confirmPassword": {"abc124"},
	}))

	if mock.registerCalls != 0 {
		t.Errorf("expected no API call, got %d", mock.registerCalls)
	}
	if !strings.Contains(w.Body.String(), "Passwords do not match.") {
		t.Error("expected mismatch message")
	}
}

func TestRegister_ShortUsername_NoAPICall(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	mock := &mockAuthAPI{}
	h := NewAuthHandler(mock, store, token.NewManager(testSessionCfg()), testSessionCfg(), zap.NewNop())

	r := newEngine(t)
	r.POST("/register", h.Register)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/register", url.Values{
		"username":        {"bo"},
		"email":           {"a@b.com"},
		"password":        {"abc123de"},
		"confirmPassword": {"abc123de"},
	}))

	if mock.registerCalls != 0 {
		t.Errorf("expected no API call, got %d", mock.registerCalls)
	}
	if !strings.Contains(w.Body.String(), "Username must be at least 3 characters.") {
		t.Error("expected short-username message")
	}
}

func TestRegister_Success(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	mock := &mockAuthAPI{registerResult: &session.Principal{Username: "bob", Email: "b@c.com"}}
	h := NewAuthHandler(mock, store, token.NewManager(testSessionCfg()), testSessionCfg(), zap.NewNop())

	r := newEngine(t)
	r.POST("/register", h.Register)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/register", url.Values{
		"username":        {"bob"},
		"email":           {"b@c.com"},
		"password":        {"abc123de"},
		"confirmPassword": {"abc123de"},
	}))

	if mock.registerCalls != 1 {
		t.Errorf("expected 1 API call, got %d", mock.registerCalls)
	}
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/instructor" {
		t.Errorf("expected redirect to /instructor, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()
	if err := store.Set(ctx, "sid-test", &session.Principal{Username: "alice", IsAdmin: true}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	h := NewAuthHandler(&mockAuthAPI{}, store, token.NewManager(testSessionCfg()), testSessionCfg(), zap.NewNop())

	r := newEngine(t)
	r.POST("/logout", injectPrincipal(&session.Principal{Username: "alice", IsAdmin: true}), h.Logout)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/logout", url.Values{}))

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Errorf("expected redirect to /, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if _, err := store.Get(ctx, "sid-test"); err != session.ErrNotFound {
		t.Errorf("expected session cleared, got %v", err)
	}

	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected session cookie to be expired")
	}
}

// ═══════════════════════════════════════════════════════════
// AdminHandler
// ═══════════════════════════════════════════════════════════

func adminPrincipal() *session.Principal {
	return &session.Principal{Username: "alice", Email: "a@b.com", IsAdmin: true}
}

func TestAdminDashboard_RendersLists(t *testing.T) {
	courses := &mockCourseAPI{courses: []apiclient.Course{
		{ID: "c1", Name: "Go Basics", Level: "Beginner", Description: "intro"},
		{ID: "c2", Name: "Advanced Rust", Level: "Advanced", Description: "deep"},
	}}
	instructors := &mockInstructorAPI{instructors: []apiclient.Instructor{{ID: "i1", Name: "bob", Email: "b@c.com"}}}
	h := NewAdminHandler(courses, instructors, zap.NewNop())

	r := newEngine(t)
	r.GET("/admin", injectPrincipal(adminPrincipal()), h.Dashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	body := w.Body.String()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, want := range []string{"Go Basics", "Advanced Rust", "bob"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in dashboard", want)
		}
	}
	if courses.listCalls != 1 {
		t.Errorf("expected 1 list fetch, got %d", courses.listCalls)
	}
}

func TestAdminDashboard_EmptyStates(t *testing.T) {
	h := NewAdminHandler(&mockCourseAPI{}, &mockInstructorAPI{}, zap.NewNop())

	r := newEngine(t)
	r.GET("/admin", injectPrincipal(adminPrincipal()), h.Dashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	body := w.Body.String()
	if !strings.Contains(body, "No courses available.") {
		t.Error("expected course empty state")
	}
	if !strings.Contains(body, "No instructors available.") {
		t.Error("expected instructor empty state")
	}
}

func TestAdminDashboard_FetchFailure(t *testing.T) {
	h := NewAdminHandler(&mockCourseAPI{listErr: errors.New("down")}, &mockInstructorAPI{}, zap.NewNop())

	r := newEngine(t)
	r.GET("/admin", injectPrincipal(adminPrincipal()), h.Dashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 (page stays usable), got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to fetch courses. Please check your connection.") {
		t.Error("expected fetch failure notification")
	}
}

func TestAddCourse_Success_ExactPayloadAndRedirect(t *testing.T) {
	courses := &mockCourseAPI{}
	h := NewAdminHandler(courses, &mockInstructorAPI{}, zap.NewNop())

	r := newEngine(t)
	r.POST("/admin/courses", injectPrincipal(adminPrincipal()), h.AddCourse)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/admin/courses", url.Values{
		"name":        {"Go Basics"},
		"level":       {"Beginner"},
		"description": {"An introduction"},
		"image":       {"http://img.example/go.png"},
	}))

	if len(courses.added) != 1 {
		t.Fatalf("expected 1 AddCourse call, got %d", len(courses.added))
	}
	want := apiclient.NewCourse{Name: "Go Basics", Level: "Beginner", Description: "An introduction", Image: "http://img.example/go.png"}
	if courses.added[0] != want {
		t.Errorf("payload mismatch: %+v", courses.added[0])
	}
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/admin" {
		t.Errorf("expected redirect to /admin, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestAddCourse_ValidationFailure_NoAPICall(t *testing.T) {
	courses := &mockCourseAPI{}
	h := NewAdminHandler(courses, &mockInstructorAPI{}, zap.NewNop())

	r := newEngine(t)
	r.POST("/admin/courses", injectPrincipal(adminPrincipal()), h.AddCourse)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/admin/courses", url.Values{
		"name":        {""},
		"level":       {"Beginner"},
		"description": {"x"},
	}))

	if len(courses.added) != 0 {
		t.Errorf("expected no AddCourse call, got %d", len(courses.added))
	}
	if !strings.Contains(w.Body.String(), "Course name is required.") {
		t.Error("expected validation message")
	}
}

func TestAddInstructor_Success(t *testing.T) {
	instructors := &mockInstructorAPI{}
	h := NewAdminHandler(&mockCourseAPI{}, instructors, zap.NewNop())

	r := newEngine(t)
	r.POST("/admin/instructors", injectPrincipal(adminPrincipal()), h.AddInstructor)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/admin/instructors", url.Values{
		"name":  {"bob"},
		"email": {"b@c.com"},
	}))

	if len(instructors.added) != 1 || instructors.added[0].Name != "bob" {
		t.Fatalf("expected AddInstructor call, got %+v", instructors.added)
	}
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/admin" {
		t.Errorf("expected redirect to /admin, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// CourseHandler
// ═══════════════════════════════════════════════════════════

func courseFixtures() (*mockCourseAPI, *mockInstructorAPI, *mockScheduleAPI) {
	return &mockCourseAPI{courses: []apiclient.Course{{ID: "c1", Name: "Go Basics", Level: "Beginner", Description: "intro"}}},
		&mockInstructorAPI{instructors: []apiclient.Instructor{{ID: "i1", Name: "bob", Email: "b@c.com"}}},
		&mockScheduleAPI{}
}

func TestCourseShow_RendersFormWithInstructors(t *testing.T) {
	courses, instructors, schedules := courseFixtures()
	h := NewCourseHandler(courses, instructors, schedules, zap.NewNop())

	r := newEngine(t)
	r.GET("/individual-course/:courseId", injectPrincipal(adminPrincipal()), h.Show)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/individual-course/c1", nil))

	body := w.Body.String()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(body, "Go Basics") || !strings.Contains(body, "bob") {
		t.Error("expected course name and instructor option")
	}
}

func TestCourseShow_UnknownCourse(t *testing.T) {
	courses, instructors, schedules := courseFixtures()
	h := NewCourseHandler(courses, instructors, schedules, zap.NewNop())

	r := newEngine(t)
	r.GET("/individual-course/:courseId", injectPrincipal(adminPrincipal()), h.Show)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/individual-course/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestCourseSchedule_Success(t *testing.T) {
	courses, instructors, schedules := courseFixtures()
	h := NewCourseHandler(courses, instructors, schedules, zap.NewNop())

	r := newEngine(t)
	r.POST("/individual-course/:courseId/schedule", injectPrincipal(adminPrincipal()), h.Schedule)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/individual-course/c1/schedule", url.Values{
		"instructor": {"bob"},
		"date":       {"2026-09-10"},
		"lecture":    {"Channels"},
		"location":   {"Room 4"},
	}))

	if len(schedules.added) != 1 {
		t.Fatalf("expected 1 AddScheduleEntry call, got %d", len(schedules.added))
	}
	want := apiclient.NewScheduleEntry{Instructor: "bob", Date: "2026-09-10", Lecture: "Channels", Location: "Room 4"}
	if schedules.added[0] != want {
		t.Errorf("payload mismatch: %+v", schedules.added[0])
	}
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/individual-course/c1" {
		t.Errorf("expected redirect back to course, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if flashFrom(w) != "Lecture scheduled." {
		t.Errorf("expected success flash, got %q", flashFrom(w))
	}
}

func TestCourseSchedule_UnknownInstructor_NoAPICall(t *testing.T) {
	courses, instructors, schedules := courseFixtures()
	h := NewCourseHandler(courses, instructors, schedules, zap.NewNop())

	r := newEngine(t)
	r.POST("/individual-course/:courseId/schedule", injectPrincipal(adminPrincipal()), h.Schedule)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/individual-course/c1/schedule", url.Values{
		"instructor": {"mallory"},
		"date":       {"2026-09-10"},
		"lecture":    {"Channels"},
		"location":   {"Room 4"},
	}))

	if len(schedules.added) != 0 {
		t.Errorf("expected no AddScheduleEntry call, got %d", len(schedules.added))
	}
	if !strings.Contains(w.Body.String(), "Select an instructor.") {
		t.Error("expected instructor validation message")
	}
}

// ═══════════════════════════════════════════════════════════
// InstructorHandler
// ═══════════════════════════════════════════════════════════

func instructorPrincipal() *session.Principal {
	return &session.Principal{Username: "bob", Email: "b@c.com"}
}

func TestInstructorDashboard_RendersCardsInOrder(t *testing.T) {
	schedules := &mockScheduleAPI{items: []apiclient.ScheduleItem{
		{Course: "Go", Lecture: "Channels", Date: "2026-09-10", Location: "Room 4"},
		{Course: "Rust", Lecture: "Borrowing", Date: "2026-09-08", Location: "Room 7"},
	}}
	h := NewInstructorHandler(&mockInstructorAPI{}, schedules, zap.NewNop())

	r := newEngine(t)
	r.GET("/instructor", injectPrincipal(instructorPrincipal()), h.Dashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructor", nil))

	body := w.Body.String()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// cards render in the order received, even when dates are unordered
	first := strings.Index(body, "Channels")
	second := strings.Index(body, "Borrowing")
	if first == -1 || second == -1 || first > second {
		t.Errorf("expected cards in received order, positions %d %d", first, second)
	}

	// dates are reformatted for display
	if !strings.Contains(body, "Sep 10, 2026") {
		t.Error("expected locale-style short date")
	}
}

func TestInstructorDashboard_EmptyState(t *testing.T) {
	h := NewInstructorHandler(&mockInstructorAPI{}, &mockScheduleAPI{}, zap.NewNop())

	r := newEngine(t)
	r.GET("/instructor", injectPrincipal(instructorPrincipal()), h.Dashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructor", nil))

	if !strings.Contains(w.Body.String(), "No upcoming lectures found.") {
		t.Error("expected empty-state message")
	}
}

func TestInstructorShow_ByUsername(t *testing.T) {
	instructors := &mockInstructorAPI{instructors: []apiclient.Instructor{{ID: "i1", Name: "bob", Email: "b@c.com"}}}
	schedules := &mockScheduleAPI{items: []apiclient.ScheduleItem{
		{Course: "Go", Lecture: "Channels", Date: "2026-09-10", Location: "Room 4"},
	}}
	h := NewInstructorHandler(instructors, schedules, zap.NewNop())

	r := newEngine(t)
	r.GET("/individual-instructor/:username", injectPrincipal(adminPrincipal()), h.Show)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/individual-instructor/bob", nil))

	body := w.Body.String()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(body, "b@c.com") || !strings.Contains(body, "Channels") {
		t.Error("expected instructor details and schedule")
	}
}

func TestInstructorShow_Unknown(t *testing.T) {
	h := NewInstructorHandler(&mockInstructorAPI{}, &mockScheduleAPI{}, zap.NewNop())

	r := newEngine(t)
	r.GET("/individual-instructor/:username", injectPrincipal(adminPrincipal()), h.Show)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/individual-instructor/ghost", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler
// ═══════════════════════════════════════════════════════════

func TestExportWorkbook_Success(t *testing.T) {
	mock := &mockExportService{buf: bytes.NewBufferString("PK fake xlsx"), filename: "schedule-bob.xlsx"}
	h := NewExportHandler(mock, zap.NewNop())

	r := newEngine(t)
	r.GET("/instructor/export/xlsx", injectPrincipal(instructorPrincipal()), h.Workbook)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructor/export/xlsx", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "schedule-bob.xlsx") {
		t.Errorf("unexpected content disposition: %s", cd)
	}
}

func TestExportCalendar_NoLectures_RedirectsWithFlash(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoLectures}
	h := NewExportHandler(mock, zap.NewNop())

	r := newEngine(t)
	r.GET("/instructor/export/ics", injectPrincipal(instructorPrincipal()), h.Calendar)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructor/export/ics", nil))

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/instructor" {
		t.Errorf("expected redirect to /instructor, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if flashFrom(w) != "No upcoming lectures found." {
		t.Errorf("expected empty flash, got %q", flashFrom(w))
	}
}

// ═══════════════════════════════════════════════════════════
// Pages
// ═══════════════════════════════════════════════════════════

func TestNotFoundPage(t *testing.T) {
	r := newEngine(t)
	r.NoRoute(NotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/no-such-page", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "does not exist") {
		t.Error("expected error page copy")
	}
}

func TestHomePage_FlashShownOnce(t *testing.T) {
	r := newEngine(t)
	r.GET("/", Home)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: url.QueryEscape("Lecture scheduled.")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "Lecture scheduled.") {
		t.Error("expected flash to render")
	}

	// and the cookie is consumed
	consumed := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == flashCookie && ck.MaxAge < 0 {
			consumed = true
		}
	}
	if !consumed {
		t.Error("expected flash cookie to be cleared")
	}
}
