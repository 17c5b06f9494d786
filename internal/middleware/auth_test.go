package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockVerifier はTokenVerifierのモック実装。
type mockVerifier struct {
	verifyFn func(tokenString string) (string, error)
}

func (m *mockVerifier) Verify(tokenString string) (string, error) {
	if m.verifyFn != nil {
		return m.verifyFn(tokenString)
	}
	return "", errors.New("not configured")
}

func decodeErrorBody(t *testing.T, res *http.Response) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return body["error"]
}

func TestAuthMiddleware_MissingHeader_Returns401(t *testing.T) {
	mw := NewAuthMiddleware(&mockVerifier{})
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/votar", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
	if msg := decodeErrorBody(t, w.Result()); msg != "Acceso no autorizado" {
		t.Errorf("error message = %q", msg)
	}
}

func TestAuthMiddleware_NonBearerHeader_Returns401(t *testing.T) {
	mw := NewAuthMiddleware(&mockVerifier{})
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/votar", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestAuthMiddleware_InvalidToken_Returns403(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(tokenString string) (string, error) {
			return "", errors.New("token is expired")
		},
	}
	mw := NewAuthMiddleware(verifier)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/votar", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusForbidden)
	}
	if msg := decodeErrorBody(t, w.Result()); msg != "Token inválido o expirado" {
		t.Errorf("error message = %q", msg)
	}
}

func TestAuthMiddleware_ValidToken_InjectsCedula(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(tokenString string) (string, error) {
			if tokenString != "good-token" {
				t.Errorf("token = %q, want %q", tokenString, "good-token")
			}
			return "001", nil
		},
	}
	mw := NewAuthMiddleware(verifier)

	var gotCedula string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cedula, err := CedulaFromContext(r.Context())
		if err != nil {
			t.Fatalf("CedulaFromContext returned error: %v", err)
		}
		gotCedula = cedula
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/votar", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
	if gotCedula != "001" {
		t.Errorf("cedula = %q, want %q", gotCedula, "001")
	}
}

func TestCedulaFromContext_MissingValue(t *testing.T) {
	if _, err := CedulaFromContext(context.Background()); err == nil {
		t.Error("expected error for context without cedula")
	}
}
