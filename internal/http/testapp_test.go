package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"tradepost/internal/apperr"
	"tradepost/internal/auth"
	"tradepost/internal/http/handlers"
	"tradepost/internal/repos"
)

// newTestApp wires the app the way cmd/tradepost/main.go does, against
// an in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *auth.TokenService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	tokens := auth.NewTokenService("test-secret", time.Hour)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status, msg := apperr.StatusOf(err)
			return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
		},
	})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, tokens)
	guard := handlers.RequireUser(tokens)

	users := app.Group("/users")
	users.Post("/signup", deps.AccountHandler.Signup)
	users.Post("/login", deps.AccountHandler.Login)
	users.Patch("/edit", guard, deps.AccountHandler.EditProfile)

	product := app.Group("/product", guard)
	product.Post("/add", deps.ProductHandler.Add)
	product.Get("/", deps.ProductHandler.List)
	product.Get("/search", deps.ProductHandler.Search)
	product.Get("/detail", deps.ProductHandler.Detail)
	product.Patch("/", deps.ProductHandler.Edit)
	product.Delete("/", deps.ProductHandler.Delete)

	app.Get("/common/config", deps.CommonHandler.AppConfig)

	return app, tokens
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doJSON issues a request with an optional JSON body and auth headers,
// returning the status and decoded envelope.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

// signupAndLogin registers an account and returns its id, token and
// ready-to-use auth headers.
func signupAndLogin(t *testing.T, app *fiber.App, name, mobile string) (string, string, map[string]string) {
	t.Helper()
	status, _ := doJSON(t, app, http.MethodPost, "/users/signup", fiber.Map{
		"name": name, "mobile": mobile, "password": "sup3rsecret",
	}, nil)
	if status != http.StatusCreated {
		t.Fatalf("signup expected 201, got %d", status)
	}

	status, env := doJSON(t, app, http.MethodPost, "/users/login", fiber.Map{
		"mobile": mobile, "password": "sup3rsecret",
	}, nil)
	if status != http.StatusOK {
		t.Fatalf("login expected 200, got %d", status)
	}
	var data struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	return data.User.ID, data.Token, map[string]string{"token": data.Token, "userid": data.User.ID}
}
