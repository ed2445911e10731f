package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ams_backend/internals/constants"
	playerModel "ams_backend/internals/features/players/model"
	"ams_backend/internals/features/sessions/controller"
	"ams_backend/internals/features/sessions/model"
	"ams_backend/internals/features/sessions/repository"
	helper "ams_backend/internals/helpers"
)

// fakeSessionRepo keeps session documents in a map, mirroring the dotted-path
// update semantics of the real collection.
type fakeSessionRepo struct {
	sessions map[string]*model.SessionModel
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*model.SessionModel{}}
}

func (f *fakeSessionRepo) FindByID(_ context.Context, id string) (*model.SessionModel, error) {
	s, ok := f.sessions[id]
	if !ok || s.IsDeleted {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) FindByFilter(_ context.Context, flt repository.SessionFilter) ([]model.SessionModel, error) {
	out := []model.SessionModel{}
	for _, s := range f.sessions {
		if s.IsDeleted || s.AcademyID != flt.AcademyID {
			continue
		}
		if flt.CoachID != "" && s.CoachID != flt.CoachID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSessionRepo) FindOccurrences(_ context.Context, parentID string) ([]model.SessionModel, error) {
	out := []model.SessionModel{}
	for _, s := range f.sessions {
		if !s.IsDeleted && s.ParentSessionID == parentID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) Insert(_ context.Context, s *model.SessionModel) error {
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) InsertMany(_ context.Context, sessions []model.SessionModel) error {
	for i := range sessions {
		cp := sessions[i]
		f.sessions[cp.ID] = &cp
	}
	return nil
}

func (f *fakeSessionRepo) UpdateFields(_ context.Context, id string, set bson.M) (*model.SessionModel, error) {
	s, ok := f.sessions[id]
	if !ok || s.IsDeleted {
		return nil, nil
	}
	if v, ok := set["name"].(string); ok {
		s.Name = v
	}
	if v, ok := set["status"].(string); ok {
		s.Status = v
	}
	if v, ok := set["statusOverride"].(bool); ok {
		s.StatusOverride = v
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) SetAttendance(_ context.Context, id, playerID string, rec model.AttendanceRecord) error {
	s, ok := f.sessions[id]
	if !ok || s.IsDeleted {
		return mongo.ErrNoDocuments
	}
	if s.Attendance == nil {
		s.Attendance = map[string]model.AttendanceRecord{}
	}
	s.Attendance[playerID] = rec
	return nil
}

func (f *fakeSessionRepo) SetPlayerMetrics(_ context.Context, id, playerID string, metrics map[string]float64) error {
	s, ok := f.sessions[id]
	if !ok || s.IsDeleted {
		return mongo.ErrNoDocuments
	}
	if s.PlayerMetrics == nil {
		s.PlayerMetrics = map[string]map[string]float64{}
	}
	s.PlayerMetrics[playerID] = metrics
	return nil
}

func (f *fakeSessionRepo) SoftDelete(_ context.Context, id string) error {
	s, ok := f.sessions[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.IsDeleted = true
	return nil
}

func (f *fakeSessionRepo) HardDeleteOccurrences(_ context.Context, parentID string) (int64, error) {
	var n int64
	for id, s := range f.sessions {
		if s.ParentSessionID == parentID {
			delete(f.sessions, id)
			n++
		}
	}
	return n, nil
}

// fakeHistorySink records performance entries appended through the player
// repository during metrics recording.
type fakeHistorySink struct {
	entries map[string][]playerModel.PerformanceEntry
}

func newFakeHistorySink() *fakeHistorySink {
	return &fakeHistorySink{entries: map[string][]playerModel.PerformanceEntry{}}
}

func (f *fakeHistorySink) FindByID(_ context.Context, _ string) (*playerModel.PlayerModel, error) {
	return nil, nil
}
func (f *fakeHistorySink) FindByAcademy(_ context.Context, _ string) ([]playerModel.PlayerModel, error) {
	return nil, nil
}
func (f *fakeHistorySink) Insert(_ context.Context, _ *playerModel.PlayerModel) error { return nil }
func (f *fakeHistorySink) UpdateFields(_ context.Context, _ string, _ bson.M) (*playerModel.PlayerModel, error) {
	return nil, nil
}
func (f *fakeHistorySink) ReplaceAttributes(_ context.Context, _ string, _ map[string]float64) (*playerModel.PlayerModel, error) {
	return nil, nil
}
func (f *fakeHistorySink) AppendPerformance(_ context.Context, id string, entry playerModel.PerformanceEntry) error {
	f.entries[id] = append(f.entries[id], entry)
	return nil
}
func (f *fakeHistorySink) SoftDelete(_ context.Context, _ string) error { return nil }
func (f *fakeHistorySink) HardDelete(_ context.Context, _ []string) (int64, error) {
	return 0, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupApp(repo *fakeSessionRepo, players *fakeHistorySink) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ctrl := controller.NewSessionController(repo, players)
	app.Get("/api/sessions", ctrl.List)
	app.Get("/api/sessions/:id", ctrl.GetByID)
	app.Post("/api/sessions", ctrl.Create)
	app.Patch("/api/sessions/:id", ctrl.Update)
	app.Patch("/api/sessions/:id/attendance", ctrl.MarkAttendance)
	app.Patch("/api/sessions/:id/metrics", ctrl.RecordPlayerMetrics)
	app.Delete("/api/sessions/:id", ctrl.SoftDelete)
	return app
}

func patchJSON(t *testing.T, app *fiber.App, url string, body any) (*envelope, int) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("PATCH", url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	return &env, resp.StatusCode
}

func TestMarkAttendanceThenReadBack(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.sessions["s1"] = &model.SessionModel{
		ID:        "s1",
		AcademyID: "a1",
		Start:     time.Now().Add(-time.Hour),
		End:       time.Now().Add(time.Hour),
	}
	app := setupApp(repo, newFakeHistorySink())

	env, code := patchJSON(t, app, "/api/sessions/s1/attendance", fiber.Map{
		"playerId": "p1",
		"status":   true,
	})
	if code != fiber.StatusOK || !env.Success {
		t.Fatalf("attendance patch failed: code=%d error=%q", code, env.Error)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sessions/s1", nil))
	if err != nil {
		t.Fatal(err)
	}
	var getEnv envelope
	if err := json.NewDecoder(resp.Body).Decode(&getEnv); err != nil {
		t.Fatal(err)
	}
	var s model.SessionModel
	if err := json.Unmarshal(getEnv.Data, &s); err != nil {
		t.Fatal(err)
	}
	if s.Attendance["p1"].Status != constants.AttendancePresent {
		t.Fatalf("expected p1 Present, got %+v", s.Attendance["p1"])
	}
	if s.Status != constants.SessionOngoing {
		t.Fatalf("status should be derived from the clock, got %q", s.Status)
	}
}

func TestMarkAttendanceFalseMeansAbsent(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.sessions["s1"] = &model.SessionModel{ID: "s1", AcademyID: "a1"}
	app := setupApp(repo, newFakeHistorySink())

	env, code := patchJSON(t, app, "/api/sessions/s1/attendance", fiber.Map{
		"playerId": "p2",
		"status":   false,
	})
	if code != fiber.StatusOK || !env.Success {
		t.Fatalf("attendance patch failed: code=%d error=%q", code, env.Error)
	}
	if repo.sessions["s1"].Attendance["p2"].Status != constants.AttendanceAbsent {
		t.Fatalf("expected Absent, got %+v", repo.sessions["s1"].Attendance["p2"])
	}
}

func TestMarkAttendanceUnknownSession(t *testing.T) {
	app := setupApp(newFakeSessionRepo(), newFakeHistorySink())

	env, code := patchJSON(t, app, "/api/sessions/missing/attendance", fiber.Map{
		"playerId": "p1",
		"status":   true,
	})
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if env.Success || env.Error == "" {
		t.Fatalf("expected error envelope, got %+v", env)
	}
}

func TestRecordMetricsWritesSessionAndHistory(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.sessions["s1"] = &model.SessionModel{ID: "s1", AcademyID: "a1", Type: "match"}
	players := newFakeHistorySink()
	app := setupApp(repo, players)

	metrics := map[string]float64{"goals": 2, "assists": 1}
	env, code := patchJSON(t, app, "/api/sessions/s1/metrics", fiber.Map{
		"playerId": "p1",
		"metrics":  metrics,
		"notes":    "hat-trick chance missed",
	})
	if code != fiber.StatusOK || !env.Success {
		t.Fatalf("metrics patch failed: code=%d error=%q", code, env.Error)
	}

	if got := repo.sessions["s1"].PlayerMetrics["p1"]["goals"]; got != 2 {
		t.Fatalf("session metrics not stored, goals=%v", got)
	}
	entries := players.entries["p1"]
	if len(entries) != 1 {
		t.Fatalf("expected one history entry, got %d", len(entries))
	}
	if entries[0].Type != constants.HistoryMatch {
		t.Fatalf("entry type should follow the session type, got %q", entries[0].Type)
	}
	if entries[0].SessionID != "s1" || entries[0].Stats["assists"] != 1 {
		t.Fatalf("history entry incomplete: %+v", entries[0])
	}
}

func TestCreateRecurringExpandsOccurrences(t *testing.T) {
	repo := newFakeSessionRepo()
	app := setupApp(repo, newFakeHistorySink())

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	raw, _ := json.Marshal(fiber.Map{
		"academyId":       "a1",
		"name":            "U15 weekly drills",
		"type":            "training",
		"start":           start,
		"end":             start.Add(2 * time.Hour),
		"isRecurring":     true,
		"recurrenceDays":  7,
		"recurrenceCount": 4,
	})
	req := httptest.NewRequest("POST", "/api/sessions", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	// Template plus four children.
	if len(repo.sessions) != 5 {
		t.Fatalf("expected 5 documents, got %d", len(repo.sessions))
	}
	var template *model.SessionModel
	for _, s := range repo.sessions {
		if s.IsRecurring {
			template = s
			break
		}
	}
	if template == nil {
		t.Fatal("template document missing")
	}
	children := 0
	for _, s := range repo.sessions {
		if s.ParentSessionID == template.ID {
			children++
		}
	}
	if children != 4 {
		t.Fatalf("expected 4 occurrences linked to template, got %d", children)
	}
}

func TestUpdateStatusPinsOverride(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.sessions["s1"] = &model.SessionModel{
		ID:        "s1",
		AcademyID: "a1",
		Start:     time.Now().Add(time.Hour),
		End:       time.Now().Add(2 * time.Hour),
	}
	app := setupApp(repo, newFakeHistorySink())

	env, code := patchJSON(t, app, "/api/sessions/s1", fiber.Map{"status": "Finished"})
	if code != fiber.StatusOK || !env.Success {
		t.Fatalf("update failed: code=%d error=%q", code, env.Error)
	}
	if !repo.sessions["s1"].StatusOverride {
		t.Fatal("explicit status must set the override flag")
	}
	if repo.sessions["s1"].Status != constants.SessionFinished {
		t.Fatalf("stored status = %q", repo.sessions["s1"].Status)
	}
}

func TestSoftDeletedSessionHiddenFromReads(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.sessions["s1"] = &model.SessionModel{ID: "s1", AcademyID: "a1"}
	app := setupApp(repo, newFakeHistorySink())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/sessions/s1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete failed with %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/sessions/s1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("soft-deleted session should 404, got %d", resp.StatusCode)
	}
}
