package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/fintech-wallet/wallet_service/internal/config"
	"github.com/fintech-wallet/wallet_service/internal/logging"
	"github.com/fintech-wallet/wallet_service/internal/users"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	cfg := config.Config{
		AppName:   "WalletService",
		AppEnv:    "development",
		ExportDir: t.TempDir(),
	}
	err := Setup(app, Deps{
		Cfg:    cfg,
		Logger: logging.Discard(),
		Users:  users.StaticClient{Name: "John Doe"},
	})
	if err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return app
}

func request(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
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

func TestSetupRequiresUserClient(t *testing.T) {
	app := fiber.New()
	cfg := config.Config{AppEnv: "development"}
	if err := Setup(app, Deps{Cfg: cfg, Logger: logging.Discard()}); err == nil {
		t.Fatal("expected error without user lookup client")
	}
}

func TestPing(t *testing.T) {
	app := setupApp(t)

	status, body := request(t, app, fiber.MethodGet, "/api/ping", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected ping body: %v", body)
	}
}

func TestCurrencyAndWalletFlow(t *testing.T) {
	app := setupApp(t)

	status, cur := request(t, app, fiber.MethodPost, "/api/currencies", `{"code":"USD","name":"US Dollar"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("add currency: expected 201, got %d", status)
	}
	if cur["code"] != "USD" || cur["name"] != "US Dollar" {
		t.Fatalf("unexpected currency response: %v", cur)
	}

	status, got := request(t, app, fiber.MethodGet, "/api/currencies/USD", "")
	if status != fiber.StatusOK || got["name"] != "US Dollar" {
		t.Fatalf("get currency: status %d body %v", status, got)
	}

	status, _ = request(t, app, fiber.MethodGet, "/api/currencies/JPY", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown currency, got %d", status)
	}

	status, _ = request(t, app, fiber.MethodPost, "/api/currencies", `{"code":"USD","name":"Duplicate"}`)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate code, got %d", status)
	}

	status, wallet := request(t, app, fiber.MethodPost, "/api/wallets",
		`{"userId":"1","currencyCode":"USD","initialBalance":100}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create wallet: expected 201, got %d", status)
	}
	id := wallet["id"].(string)

	status, detail := request(t, app, fiber.MethodGet, "/api/wallets/"+id, "")
	if status != fiber.StatusOK {
		t.Fatalf("wallet details: expected 200, got %d", status)
	}
	if detail["userName"] != "John Doe" || detail["currencyName"] != "US Dollar" {
		t.Fatalf("unexpected wallet detail: %v", detail)
	}

	status, updated := request(t, app, fiber.MethodPut, "/api/wallets/"+id+"/balance", `{"amount":-40}`)
	if status != fiber.StatusOK || updated["balance"].(float64) != 60 {
		t.Fatalf("update balance: status %d body %v", status, updated)
	}
}

func TestListCurrencies(t *testing.T) {
	app := setupApp(t)

	for _, body := range []string{
		`{"code":"USD","name":"US Dollar"}`,
		`{"code":"EUR","name":"Euro"}`,
	} {
		if status, _ := request(t, app, fiber.MethodPost, "/api/currencies", body); status != fiber.StatusCreated {
			t.Fatalf("seed currency: got status %d", status)
		}
	}

	req := httptest.NewRequest(fiber.MethodGet, "/api/currencies", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("list currencies: %v", err)
	}
	defer resp.Body.Close()

	var listed []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 currencies, got %d", len(listed))
	}
	if listed[0]["code"] != "EUR" || listed[1]["code"] != "USD" {
		t.Fatalf("unexpected ordering: %v", listed)
	}
}
