package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/urna/internal/middleware"
	"github.com/hitoshi/urna/internal/model"
)

// VoteServiceInterface は投票ハンドラーが必要とするサービスインターフェース。
type VoteServiceInterface interface {
	// Submit は1回の投票試行を処理する。
	Submit(ctx context.Context, cedula string, votacionID, opcionID int64) error
}

// VoteHandler は投票受付のHTTPハンドラー。
type VoteHandler struct {
	service VoteServiceInterface
}

// NewVoteHandler はVoteHandlerを生成する。
func NewVoteHandler(service VoteServiceInterface) *VoteHandler {
	return &VoteHandler{service: service}
}

// votarRequest は投票リクエストのボディ。
type votarRequest struct {
	IDVotacion int64 `json:"id_votacion"`
	IDOpcion   int64 `json:"id_opcion"`
}

// Votar は認証済みユーザーの投票を受け付ける。
// POST /votar
func (h *VoteHandler) Votar(w http.ResponseWriter, r *http.Request) {
	cedula, err := middleware.CedulaFromContext(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	var req votarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, model.NewValidationError("Cuerpo de la solicitud inválido"))
		return
	}

	if req.IDVotacion <= 0 || req.IDOpcion <= 0 {
		writeErrorResponse(w, http.StatusBadRequest, model.NewValidationError("id_votacion e id_opcion son obligatorios"))
		return
	}

	if err := h.service.Submit(r.Context(), cedula, req.IDVotacion, req.IDOpcion); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mensajeResponse{Mensaje: "Voto registrado correctamente"})
}
