package controller_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"ams_backend/internals/features/finance/controller"
	"ams_backend/internals/features/finance/model"
	helper "ams_backend/internals/helpers"
)

type fakeFinanceRepo struct {
	txs  map[string]*model.TransactionModel
	docs map[string]*model.DocumentModel
}

func newFakeFinanceRepo() *fakeFinanceRepo {
	return &fakeFinanceRepo{
		txs:  map[string]*model.TransactionModel{},
		docs: map[string]*model.DocumentModel{},
	}
}

func (f *fakeFinanceRepo) FindTransactions(_ context.Context, academyID string) ([]model.TransactionModel, error) {
	out := []model.TransactionModel{}
	for _, tx := range f.txs {
		if tx.AcademyID == academyID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (f *fakeFinanceRepo) InsertTransaction(_ context.Context, t *model.TransactionModel) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	cp := *t
	f.txs[t.ID] = &cp
	return nil
}

func (f *fakeFinanceRepo) DeleteTransaction(_ context.Context, id string) error {
	if _, ok := f.txs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.txs, id)
	return nil
}

func (f *fakeFinanceRepo) Summary(_ context.Context, academyID string) (*model.Summary, error) {
	s := &model.Summary{}
	for _, tx := range f.txs {
		if tx.AcademyID != academyID {
			continue
		}
		switch tx.Type {
		case "income":
			s.TotalIncome += tx.Amount
		case "expense":
			s.TotalExpense += tx.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s, nil
}

func (f *fakeFinanceRepo) FindDocuments(_ context.Context, academyID string) ([]model.DocumentModel, error) {
	out := []model.DocumentModel{}
	for _, d := range f.docs {
		if d.AcademyID == academyID {
			cp := *d
			cp.Data = "" // listing never carries payloads
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeFinanceRepo) FindDocumentByID(_ context.Context, id string) (*model.DocumentModel, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeFinanceRepo) InsertDocument(_ context.Context, d *model.DocumentModel) error {
	d.CreatedAt = time.Now()
	cp := *d
	f.docs[d.ID] = &cp
	return nil
}

func (f *fakeFinanceRepo) DeleteDocument(_ context.Context, id string) error {
	if _, ok := f.docs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.docs, id)
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupApp(repo *fakeFinanceRepo) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ctrl := controller.NewFinanceController(repo)
	app.Get("/api/finance/transactions", ctrl.ListTransactions)
	app.Post("/api/finance/transactions", ctrl.CreateTransaction)
	app.Delete("/api/finance/transactions/:id", ctrl.DeleteTransaction)
	app.Get("/api/finance/summary", ctrl.Summary)
	app.Get("/api/finance/documents", ctrl.ListDocuments)
	app.Post("/api/finance/documents", ctrl.UploadDocument)
	app.Get("/api/finance/documents/:id/file", ctrl.File)
	app.Delete("/api/finance/documents/:id", ctrl.DeleteDocument)
	return app
}

func postJSON(t *testing.T, app *fiber.App, url string, body any) (*envelope, int) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", url, bytes.NewReader(raw))
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

func TestUploadDocumentThenFetchFile(t *testing.T) {
	repo := newFakeFinanceRepo()
	app := setupApp(repo)

	payload := []byte("%PDF-1.4 fake invoice body")
	env, code := postJSON(t, app, "/api/finance/documents", fiber.Map{
		"academyId":   "a1",
		"filename":    "invoice-042.pdf",
		"contentType": "application/pdf",
		"data":        base64.StdEncoding.EncodeToString(payload),
	})
	if code != fiber.StatusCreated || !env.Success {
		t.Fatalf("upload failed: code=%d error=%q", code, env.Error)
	}
	var doc model.DocumentModel
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Size != len(payload) {
		t.Fatalf("size should be the decoded length, got %d want %d", doc.Size, len(payload))
	}
	if bytes.Contains(env.Data, []byte(`"data"`)) {
		t.Fatal("base64 payload must not appear in the JSON response")
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/finance/documents/"+doc.ID+"/file", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("file fetch failed with %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); cd != `inline; filename="invoice-042.pdf"` {
		t.Fatalf("content disposition = %q", cd)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(body, payload) {
		t.Fatalf("round-tripped bytes differ: %q", body)
	}
}

func TestUploadRejectsInvalidBase64(t *testing.T) {
	app := setupApp(newFakeFinanceRepo())

	env, code := postJSON(t, app, "/api/finance/documents", fiber.Map{
		"academyId":   "a1",
		"filename":    "x.bin",
		"contentType": "application/octet-stream",
		"data":        "not base64!!",
	})
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Success {
		t.Fatal("envelope must report failure")
	}
}

func TestSummaryBalances(t *testing.T) {
	repo := newFakeFinanceRepo()
	app := setupApp(repo)

	for _, tx := range []fiber.Map{
		{"academyId": "a1", "type": "income", "amount": 1500.0, "category": "fees"},
		{"academyId": "a1", "type": "income", "amount": 500.0, "category": "fees"},
		{"academyId": "a1", "type": "expense", "amount": 800.0, "category": "equipment"},
		{"academyId": "a2", "type": "income", "amount": 9999.0},
	} {
		if _, code := postJSON(t, app, "/api/finance/transactions", tx); code != fiber.StatusCreated {
			t.Fatalf("seed transaction failed with %d", code)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/finance/summary?academyId=a1", nil))
	if err != nil {
		t.Fatal(err)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	var s model.Summary
	if err := json.Unmarshal(env.Data, &s); err != nil {
		t.Fatal(err)
	}
	if s.TotalIncome != 2000 || s.TotalExpense != 800 || s.Balance != 1200 {
		t.Fatalf("summary wrong: %+v", s)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	app := setupApp(newFakeFinanceRepo())

	env, code := postJSON(t, app, "/api/finance/transactions", fiber.Map{
		"academyId": "a1",
		"type":      "donation", // not income|expense
		"amount":    100.0,
	})
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Success {
		t.Fatal("envelope must report failure")
	}
}
