package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/urna/internal/model"
	"github.com/hitoshi/urna/internal/security"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Register は新規ユーザーを登録する。
	Register(ctx context.Context, cedula, nombre, apellido, password string) error
	// Login は資格情報を照合し、署名付きトークンを発行する。
	Login(ctx context.Context, cedula, password string) (string, error)
}

// LoginRecorder はログイン結果のメトリクス記録インターフェース。
// metrics.Collectorの部分集合として定義する。
type LoginRecorder interface {
	RecordLogin(result string)
}

// AuthHandler は登録・ログインのHTTPハンドラー。
type AuthHandler struct {
	service   AuthServiceInterface
	sanitizer security.NameSanitizer
	recorder  LoginRecorder
}

// NewAuthHandler はAuthHandlerを生成する。recorderはnilでもよい。
func NewAuthHandler(service AuthServiceInterface, sanitizer security.NameSanitizer, recorder LoginRecorder) *AuthHandler {
	return &AuthHandler{
		service:   service,
		sanitizer: sanitizer,
		recorder:  recorder,
	}
}

// registerRequest は登録リクエストのボディ。
type registerRequest struct {
	Cedula     string `json:"cedula"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Contrasena string `json:"contrasena"`
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Cedula     string `json:"cedula"`
	Contrasena string `json:"contrasena"`
}

// tokenResponse はログイン成功時のレスポンスボディ。
type tokenResponse struct {
	Token string `json:"token"`
}

// Register は新規ユーザーを登録する。
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, model.NewValidationError("Cuerpo de la solicitud inválido"))
		return
	}

	// 氏名フィールドはHTMLを除去してから保存する
	nombre := h.sanitizer.Sanitize(req.Nombre)
	apellido := h.sanitizer.Sanitize(req.Apellido)

	if err := h.service.Register(r.Context(), req.Cedula, nombre, apellido, req.Contrasena); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mensajeResponse{Mensaje: "Usuario registrado exitosamente"})
}

// Login は資格情報を照合してトークンを返す。
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, model.NewValidationError("Cuerpo de la solicitud inválido"))
		return
	}

	token, err := h.service.Login(r.Context(), req.Cedula, req.Contrasena)
	if err != nil {
		if h.recorder != nil {
			h.recorder.RecordLogin("failure")
		}
		handleServiceError(w, err)
		return
	}

	if h.recorder != nil {
		h.recorder.RecordLogin("success")
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
