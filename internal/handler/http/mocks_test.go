// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/service"
	"github.com/MKhiriev/billable-hours/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	signupFn         func(ctx context.Context, c models.Credentials) (models.User, error)
	loginFn          func(ctx context.Context, c models.Credentials) (models.User, error)
	changePasswordFn func(ctx context.Context, change models.PasswordChange) error
	parseFn          func(ctx context.Context, token string) (models.Session, error)
}

func (m *mockAuthService) Signup(ctx context.Context, c models.Credentials) (models.User, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, c)
	}
	return models.User{ID: 1, Username: c.Username}, nil
}

func (m *mockAuthService) Login(ctx context.Context, c models.Credentials) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, c)
	}
	return models.User{ID: 1, Username: c.Username}, nil
}

func (m *mockAuthService) CreateAdmin(_ context.Context, c models.Credentials) (models.User, error) {
	return models.User{ID: 1, Username: c.Username, IsAdmin: true}, nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, change)
	}
	return nil
}

func (m *mockAuthService) CreateSessionToken(_ context.Context, user models.User) (models.SessionToken, error) {
	return models.SessionToken{SignedString: "token-" + user.Username, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (m *mockAuthService) ParseSessionToken(ctx context.Context, token string) (models.Session, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, token)
	}
	switch token {
	case userToken:
		return testUser, nil
	case adminToken:
		return testAdmin, nil
	}
	return models.Session{}, service.ErrSessionIsExpiredOrInvalid
}

type mockUserService struct {
	listFn   func(ctx context.Context) ([]models.User, error)
	resetFn  func(ctx context.Context, userID int64, password string) error
	toggleFn func(ctx context.Context, actor models.Session, userID int64) (models.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserService) ResetPassword(ctx context.Context, userID int64, password string) error {
	if m.resetFn != nil {
		return m.resetFn(ctx, userID, password)
	}
	return nil
}

func (m *mockUserService) ResetPasswordByUsername(context.Context, string, string) error {
	return nil
}

func (m *mockUserService) SetAdminByUsername(_ context.Context, username string, isAdmin bool) (models.User, error) {
	return models.User{Username: username, IsAdmin: isAdmin}, nil
}

func (m *mockUserService) ToggleAdmin(ctx context.Context, actor models.Session, userID int64) (models.User, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, actor, userID)
	}
	return models.User{ID: userID}, nil
}

type mockProjectService struct {
	listFn   func(ctx context.Context, s models.Session, f models.ProjectFilter) ([]models.Project, error)
	getFn    func(ctx context.Context, s models.Session, id int64) (models.Project, error)
	createFn func(ctx context.Context, s models.Session, p models.Project) (models.Project, error)
	updateFn func(ctx context.Context, s models.Session, p models.Project) (models.Project, error)
	toggleFn func(ctx context.Context, s models.Session, id int64) (models.Project, error)
	deleteFn func(ctx context.Context, s models.Session, id int64) (models.Project, error)
}

func (m *mockProjectService) ListProjects(ctx context.Context, s models.Session, f models.ProjectFilter) ([]models.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx, s, f)
	}
	return nil, nil
}

func (m *mockProjectService) GetProject(ctx context.Context, s models.Session, id int64) (models.Project, error) {
	if m.getFn != nil {
		return m.getFn(ctx, s, id)
	}
	return models.Project{ID: id}, nil
}

func (m *mockProjectService) CreateProject(ctx context.Context, s models.Session, p models.Project) (models.Project, error) {
	if m.createFn != nil {
		return m.createFn(ctx, s, p)
	}
	return p, nil
}

func (m *mockProjectService) UpdateProject(ctx context.Context, s models.Session, p models.Project) (models.Project, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, s, p)
	}
	return p, nil
}

func (m *mockProjectService) ToggleProject(ctx context.Context, s models.Session, id int64) (models.Project, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, s, id)
	}
	return models.Project{ID: id}, nil
}

func (m *mockProjectService) DeleteProject(ctx context.Context, s models.Session, id int64) (models.Project, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, s, id)
	}
	return models.Project{ID: id}, nil
}

type mockEntryService struct {
	createFn func(ctx context.Context, e models.TimeEntry) (models.TimeEntry, error)
	updateFn func(ctx context.Context, e models.TimeEntry) (models.TimeEntry, error)
	deleteFn func(ctx context.Context, userID, entryID int64) error
	getFn    func(ctx context.Context, userID, entryID int64) (models.TimeEntry, error)
	listFn   func(ctx context.Context, f models.EntryFilter) ([]models.TimeEntry, error)
	searchFn func(ctx context.Context, f models.EntryFilter) ([]models.TimeEntry, error)
}

func (m *mockEntryService) CreateEntry(ctx context.Context, e models.TimeEntry) (models.TimeEntry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, e)
	}
	e.ID = 1
	return e, nil
}

func (m *mockEntryService) UpdateEntry(ctx context.Context, e models.TimeEntry) (models.TimeEntry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, e)
	}
	return e, nil
}

func (m *mockEntryService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, entryID)
	}
	return nil
}

func (m *mockEntryService) GetEntry(ctx context.Context, userID, entryID int64) (models.TimeEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, entryID)
	}
	return models.TimeEntry{ID: entryID, UserID: &userID, Date: testNow, ProjectID: 1, Hours: 1}, nil
}

func (m *mockEntryService) ListEntries(ctx context.Context, f models.EntryFilter) ([]models.TimeEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, nil
}

func (m *mockEntryService) SearchEntries(ctx context.Context, f models.EntryFilter) ([]models.TimeEntry, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, f)
	}
	return nil, nil
}

type mockSettingsService struct {
	getFn  func(ctx context.Context) (models.Settings, error)
	saveFn func(ctx context.Context, s models.Settings) error
}

func (m *mockSettingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return models.DefaultSettings(), nil
}

func (m *mockSettingsService) SaveSettings(ctx context.Context, s models.Settings) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, s)
	}
	return nil
}

type mockReportService struct {
	dashboardFn func(ctx context.Context, userID int64, window *models.Cycle) (models.Dashboard, error)
	statsFn     func(ctx context.Context, userID int64, window models.Cycle) (models.CycleStats, error)
	reportFn    func(ctx context.Context, userID int64, window models.Cycle) (models.Report, error)
}

func (m *mockReportService) Dashboard(ctx context.Context, userID int64, window *models.Cycle) (models.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(ctx, userID, window)
	}
	return models.Dashboard{Cycle: cycle.For(testNow)}, nil
}

func (m *mockReportService) CycleStats(ctx context.Context, userID int64, window models.Cycle) (models.CycleStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, userID, window)
	}
	return models.CycleStats{CycleName: window.Name}, nil
}

func (m *mockReportService) Report(ctx context.Context, userID int64, window models.Cycle) (models.Report, error) {
	if m.reportFn != nil {
		return m.reportFn(ctx, userID, window)
	}
	return models.Report{Cycle: window}, nil
}

type mockExportService struct {
	exportFn func(ctx context.Context, req models.ExportRequest) (models.ExportFile, error)
	quickFn  func(userID int64, quick string) (models.ExportRequest, error)
}

func (m *mockExportService) Export(ctx context.Context, req models.ExportRequest) (models.ExportFile, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, req)
	}
	return models.ExportFile{}, nil
}

func (m *mockExportService) QuickExportRequest(userID int64, quick string) (models.ExportRequest, error) {
	if m.quickFn != nil {
		return m.quickFn(userID, quick)
	}
	return models.ExportRequest{UserID: userID, Format: models.ExportCSV}, nil
}

type mockAppInfoService struct{}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return "test-version"
}

func (m *mockAppInfoService) GetAppStatus(context.Context) models.AppStatus {
	return models.AppStatus{Status: "ok", Version: "test-version", CurrentCycle: cycle.For(testNow)}
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error {
	return m.err
}

// ─────────────────────────────────────────────
// Harness
// ─────────────────────────────────────────────

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	testNow   = time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	testUser  = models.Session{UserID: 7, Username: "alice"}
	testAdmin = models.Session{UserID: 1, Username: "root", IsAdmin: true}

	errDatabase = errors.New("database is down")
)

type testEnv struct {
	auth     *mockAuthService
	users    *mockUserService
	projects *mockProjectService
	entries  *mockEntryService
	settings *mockSettingsService
	reports  *mockReportService
	exports  *mockExportService
	pinger   *mockPinger

	handler *Handler
	router  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	views, err := newViews()
	require.NoError(t, err)

	env := &testEnv{
		auth:     &mockAuthService{},
		users:    &mockUserService{},
		projects: &mockProjectService{},
		entries:  &mockEntryService{},
		settings: &mockSettingsService{},
		reports:  &mockReportService{},
		exports:  &mockExportService{},
		pinger:   &mockPinger{},
	}
	env.handler = &Handler{
		services: &service.Services{
			AuthService:     env.auth,
			UserService:     env.users,
			ProjectService:  env.projects,
			EntryService:    env.entries,
			SettingsService: env.settings,
			ReportService:   env.reports,
			ExportService:   env.exports,
			AppInfoService:  &mockAppInfoService{},
			Cycles:          cycle.NewCalculator(func() time.Time { return testNow }),
		},
		pinger:  env.pinger,
		views:   views,
		flashes: newFlashStore("test-flash-key-0123456789abcdef", false),
		logger:  logger.Nop(),
	}
	env.router = env.handler.Init()
	return env
}

// do sends a request through the full router. A non-empty token is sent as
// the session cookie; form values turn the request into a form POST.
func (e *testEnv) do(method, target, token string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return e.serve(req, token)
}

func (e *testEnv) serve(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func newFormRequest(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// followFlashes replays the cookies of rr on a GET to target and returns the
// rendered body, so flash messages queued before a redirect become visible.
func (e *testEnv) followFlashes(rr *httptest.ResponseRecorder, target, token string) string {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}

	next := httptest.NewRecorder()
	e.router.ServeHTTP(next, req)
	return next.Body.String()
}
