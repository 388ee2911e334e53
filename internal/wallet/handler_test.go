package wallet

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/fintech-wallet/wallet_service/internal/currency"
	"github.com/fintech-wallet/wallet_service/internal/users"
)

func setupHandlerApp(t *testing.T, userClient users.Client) *fiber.App {
	t.Helper()
	currencyRepo := currency.NewMemoryRepository()
	if err := currencyRepo.Create(context.Background(), currency.Currency{Code: "USD", Name: "US Dollar"}); err != nil {
		t.Fatalf("seed currency: %v", err)
	}
	svc := NewService(NewMemoryRepository(), currencyRepo, userClient, t.TempDir())
	h := NewHandler(svc)

	app := fiber.New()
	app.Post("/api/wallets", h.Create)
	app.Get("/api/wallets/:id", h.Details)
	app.Put("/api/wallets/:id/balance", h.UpdateBalance)
	app.Post("/api/wallets/:id/file", h.ExportFile)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if len(payload) > 0 {
		_ = json.Unmarshal(payload, &decoded)
	}
	return resp.StatusCode, decoded
}

func TestHandlerCreateAndUpdateFlow(t *testing.T) {
	app := setupHandlerApp(t, users.StaticClient{Name: "John Doe"})

	status, created := doJSON(t, app, fiber.MethodPost, "/api/wallets",
		`{"userId":"1","currencyCode":"USD","initialBalance":100}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if created["balance"].(float64) != 100 {
		t.Fatalf("expected balance 100, got %v", created["balance"])
	}
	if _, present := created["userName"]; present {
		t.Fatalf("create response must not carry a user name: %v", created)
	}
	id := created["id"].(string)

	// Overdraft maps to 409 and mutates nothing.
	status, _ = doJSON(t, app, fiber.MethodPut, "/api/wallets/"+id+"/balance", `{"amount":-150}`)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409 for overdraft, got %d", status)
	}

	status, updated := doJSON(t, app, fiber.MethodPut, "/api/wallets/"+id+"/balance", `{"amount":-50}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if updated["balance"].(float64) != 50 {
		t.Fatalf("expected balance 50, got %v", updated["balance"])
	}

	status, detail := doJSON(t, app, fiber.MethodGet, "/api/wallets/"+id, "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if detail["userName"] != "John Doe" {
		t.Fatalf("expected enriched user name, got %v", detail["userName"])
	}
}

func TestHandlerStatusMapping(t *testing.T) {
	app := setupHandlerApp(t, users.StaticClient{Err: users.ErrLookupFailed})

	status, _ := doJSON(t, app, fiber.MethodGet, "/api/wallets/b3b9b1de-3f07-4c4d-8a32-000000000000", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown wallet, got %d", status)
	}

	status, _ = doJSON(t, app, fiber.MethodPost, "/api/wallets",
		`{"userId":"1","currencyCode":"ZZZ","initialBalance":10}`)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown currency, got %d", status)
	}

	status, _ = doJSON(t, app, fiber.MethodPost, "/api/wallets",
		`{"userId":"1","currencyCode":"USD","initialBalance":-10}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for negative initial balance, got %d", status)
	}

	// Unreachable user service fails the whole detail fetch with 502.
	status, created := doJSON(t, app, fiber.MethodPost, "/api/wallets",
		`{"userId":"1","currencyCode":"USD","initialBalance":10}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	status, _ = doJSON(t, app, fiber.MethodGet, "/api/wallets/"+created["id"].(string), "")
	if status != fiber.StatusBadGateway {
		t.Fatalf("expected 502 for failed user lookup, got %d", status)
	}
}
