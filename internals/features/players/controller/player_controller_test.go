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

	"ams_backend/internals/cache"
	"ams_backend/internals/features/players/controller"
	"ams_backend/internals/features/players/model"
	helper "ams_backend/internals/helpers"
)

// fakePlayerRepo is an in-memory stand-in for the players collection.
type fakePlayerRepo struct {
	players map[string]*model.PlayerModel
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: map[string]*model.PlayerModel{}}
}

func (f *fakePlayerRepo) FindByID(_ context.Context, id string) (*model.PlayerModel, error) {
	p, ok := f.players[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlayerRepo) FindByAcademy(_ context.Context, academyID string) ([]model.PlayerModel, error) {
	out := []model.PlayerModel{}
	for _, p := range f.players {
		if p.AcademyID == academyID && !p.IsDeleted {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlayerRepo) Insert(_ context.Context, p *model.PlayerModel) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	cp := *p
	f.players[p.ID] = &cp
	return nil
}

func (f *fakePlayerRepo) UpdateFields(_ context.Context, id string, set bson.M) (*model.PlayerModel, error) {
	p, ok := f.players[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	if v, ok := set["name"].(string); ok {
		p.Name = v
	}
	if v, ok := set["position"].(string); ok {
		p.Position = v
	}
	if v, ok := set["attributes"].(map[string]float64); ok {
		p.Attributes = v
	}
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (f *fakePlayerRepo) ReplaceAttributes(ctx context.Context, id string, attrs map[string]float64) (*model.PlayerModel, error) {
	return f.UpdateFields(ctx, id, bson.M{"attributes": attrs})
}

func (f *fakePlayerRepo) AppendPerformance(_ context.Context, id string, entry model.PerformanceEntry) error {
	p, ok := f.players[id]
	if !ok || p.IsDeleted {
		return mongo.ErrNoDocuments
	}
	p.PerformanceHistory = append(p.PerformanceHistory, entry)
	if p.Stats == nil {
		p.Stats = map[string]float64{}
	}
	for k, v := range entry.Stats {
		p.Stats[k] += v
	}
	return nil
}

func (f *fakePlayerRepo) SoftDelete(_ context.Context, id string) error {
	p, ok := f.players[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.IsDeleted = true
	return nil
}

func (f *fakePlayerRepo) HardDelete(_ context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := f.players[id]; ok {
			delete(f.players, id)
			n++
		}
	}
	return n, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupApp(repo *fakePlayerRepo, ttl time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ctrl := controller.NewPlayerController(repo, cache.New(ttl))
	app.Get("/api/players", ctrl.List)
	app.Get("/api/players/:id", ctrl.GetByID)
	app.Get("/api/players/:id/performance", ctrl.Performance)
	app.Post("/api/players", ctrl.Create)
	app.Patch("/api/players/:id", ctrl.Update)
	app.Post("/api/players/:id/performance", ctrl.AppendPerformance)
	app.Delete("/api/players", ctrl.HardDelete)
	return app
}

func TestListRequiresAcademyID(t *testing.T) {
	app := setupApp(newFakePlayerRepo(), time.Minute)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/players", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Success {
		t.Fatal("envelope must report success=false")
	}
	if env.Error != "academyId is required" {
		t.Fatalf("error should name the missing field, got %q", env.Error)
	}
}

func TestListScopedToAcademy(t *testing.T) {
	repo := newFakePlayerRepo()
	repo.players["p1"] = &model.PlayerModel{ID: "p1", AcademyID: "a1", Name: "One"}
	repo.players["p2"] = &model.PlayerModel{ID: "p2", AcademyID: "a2", Name: "Two"}

	app := setupApp(repo, time.Minute)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/players?academyId=a1", nil))
	if err != nil {
		t.Fatal(err)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	var players []model.PlayerModel
	if err := json.Unmarshal(env.Data, &players); err != nil {
		t.Fatal(err)
	}
	if len(players) != 1 || players[0].AcademyID != "a1" {
		t.Fatalf("expected only academy a1 players, got %+v", players)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	app := setupApp(newFakePlayerRepo(), time.Minute)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/players/missing", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Success || env.Error == "" {
		t.Fatalf("expected failure envelope, got %+v", env)
	}
}

// A cached profile is served for the full window even if the store changes
// underneath; that staleness is the documented tradeoff.
func TestGetByIDServesCachedValue(t *testing.T) {
	repo := newFakePlayerRepo()
	repo.players["p1"] = &model.PlayerModel{ID: "p1", AcademyID: "a1", Name: "Before"}

	app := setupApp(repo, time.Minute)
	if _, err := app.Test(httptest.NewRequest("GET", "/api/players/p1", nil)); err != nil {
		t.Fatal(err)
	}

	repo.players["p1"].Name = "After"

	resp, err := app.Test(httptest.NewRequest("GET", "/api/players/p1", nil))
	if err != nil {
		t.Fatal(err)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	var p model.PlayerModel
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatal(err)
	}
	if p.Name != "Before" {
		t.Fatalf("expected cached name, got %q", p.Name)
	}
}

func TestCreateValidation(t *testing.T) {
	app := setupApp(newFakePlayerRepo(), time.Minute)

	body := bytes.NewBufferString(`{"academyId":"a1"}`) // name missing
	req := httptest.NewRequest("POST", "/api/players", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateAndFetch(t *testing.T) {
	repo := newFakePlayerRepo()
	app := setupApp(repo, time.Minute)

	body := bytes.NewBufferString(`{"academyId":"a1","name":"Kai","attributes":{"pace":71}}`)
	req := httptest.NewRequest("POST", "/api/players", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	var p model.PlayerModel
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Fatal("created player must carry a string id")
	}
	if _, ok := repo.players[p.ID]; !ok {
		t.Fatal("player not persisted")
	}
}

func TestAppendPerformanceAccumulates(t *testing.T) {
	repo := newFakePlayerRepo()
	repo.players["p1"] = &model.PlayerModel{ID: "p1", AcademyID: "a1", Name: "Kai"}

	app := setupApp(repo, time.Minute)
	for i := 0; i < 2; i++ {
		body := bytes.NewBufferString(`{"type":"match","stats":{"goals":1}}`)
		req := httptest.NewRequest("POST", "/api/players/p1/performance", body)
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
	}

	p := repo.players["p1"]
	if len(p.PerformanceHistory) != 2 {
		t.Fatalf("history must keep every entry, got %d", len(p.PerformanceHistory))
	}
	if p.Stats["goals"] != 2 {
		t.Fatalf("goals must accumulate, got %v", p.Stats["goals"])
	}
}

func TestHardDeleteCountIgnoresDuplicatesAndMissing(t *testing.T) {
	repo := newFakePlayerRepo()
	repo.players["p1"] = &model.PlayerModel{ID: "p1", AcademyID: "a1"}

	app := setupApp(repo, time.Minute)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/players?ids=p1,p1,ghost", nil))
	if err != nil {
		t.Fatal(err)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	var out struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	if out.DeletedCount != 1 {
		t.Fatalf("expected deletedCount 1, got %d", out.DeletedCount)
	}
}
