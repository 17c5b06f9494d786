package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/urna/internal/model"
	"github.com/hitoshi/urna/internal/security"
)

// --- モック定義 ---

// mockAuthService はAuthServiceInterfaceのモック実装。
type mockAuthService struct {
	registerFn func(ctx context.Context, cedula, nombre, apellido, password string) error
	loginFn    func(ctx context.Context, cedula, password string) (string, error)
}

func (m *mockAuthService) Register(ctx context.Context, cedula, nombre, apellido, password string) error {
	if m.registerFn != nil {
		return m.registerFn(ctx, cedula, nombre, apellido, password)
	}
	return nil
}

func (m *mockAuthService) Login(ctx context.Context, cedula, password string) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, cedula, password)
	}
	return "", nil
}

// mockLoginRecorder はLoginRecorderのモック実装。
type mockLoginRecorder struct {
	results []string
}

func (m *mockLoginRecorder) RecordLogin(result string) {
	m.results = append(m.results, result)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, res *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return body
}

// --- Register ---

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &mockAuthService{}
	h := NewAuthHandler(svc, security.NewNameSanitizer(), nil)

	w := postJSON(t, h.Register, "/register", map[string]string{
		"cedula":     "001",
		"nombre":     "Ana",
		"apellido":   "Pérez",
		"contrasena": "secret",
	})

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
	body := decodeBody(t, w.Result())
	if body["mensaje"] != "Usuario registrado exitosamente" {
		t.Errorf("mensaje = %q", body["mensaje"])
	}
}

func TestAuthHandler_Register_SanitizesNameFields(t *testing.T) {
	var gotNombre, gotApellido string
	svc := &mockAuthService{
		registerFn: func(ctx context.Context, cedula, nombre, apellido, password string) error {
			gotNombre = nombre
			gotApellido = apellido
			return nil
		},
	}
	h := NewAuthHandler(svc, security.NewNameSanitizer(), nil)

	postJSON(t, h.Register, "/register", map[string]string{
		"cedula":     "001",
		"nombre":     "<script>alert(1)</script>Ana",
		"apellido":   "  Pérez  ",
		"contrasena": "secret",
	})

	if gotNombre != "Ana" {
		t.Errorf("nombre = %q, want %q", gotNombre, "Ana")
	}
	if gotApellido != "Pérez" {
		t.Errorf("apellido = %q, want %q", gotApellido, "Pérez")
	}
}

func TestAuthHandler_Register_DuplicateCedula_Returns400(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(ctx context.Context, cedula, nombre, apellido, password string) error {
			return model.NewRegistrationFailedError()
		},
	}
	h := NewAuthHandler(svc, security.NewNameSanitizer(), nil)

	w := postJSON(t, h.Register, "/register", map[string]string{
		"cedula":     "001",
		"contrasena": "secret",
	})

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
	}
	body := decodeBody(t, w.Result())
	if body["error"] == "" {
		t.Error("expected error field in body")
	}
}

func TestAuthHandler_Register_MalformedBody_Returns400(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, security.NewNameSanitizer(), nil)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.Register(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
	}
}

// --- Login ---

func TestAuthHandler_Login_Success_ReturnsToken(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, cedula, password string) (string, error) {
			return "signed-token", nil
		},
	}
	recorder := &mockLoginRecorder{}
	h := NewAuthHandler(svc, security.NewNameSanitizer(), recorder)

	w := postJSON(t, h.Login, "/login", map[string]string{
		"cedula":     "001",
		"contrasena": "secret",
	})

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
	body := decodeBody(t, w.Result())
	if body["token"] != "signed-token" {
		t.Errorf("token = %q", body["token"])
	}
	if len(recorder.results) != 1 || recorder.results[0] != "success" {
		t.Errorf("recorded results = %v, want [success]", recorder.results)
	}
}

func TestAuthHandler_Login_InvalidCredentials_Returns401(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, cedula, password string) (string, error) {
			return "", model.NewInvalidCredentialsError()
		},
	}
	recorder := &mockLoginRecorder{}
	h := NewAuthHandler(svc, security.NewNameSanitizer(), recorder)

	w := postJSON(t, h.Login, "/login", map[string]string{
		"cedula":     "001",
		"contrasena": "wrong",
	})

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
	body := decodeBody(t, w.Result())
	if body["error"] != "Credenciales inválidas" {
		t.Errorf("error = %q", body["error"])
	}
	if len(recorder.results) != 1 || recorder.results[0] != "failure" {
		t.Errorf("recorded results = %v, want [failure]", recorder.results)
	}
}
