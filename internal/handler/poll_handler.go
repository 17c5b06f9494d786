package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/urna/internal/model"
)

// PollServiceInterface は一覧・集計ハンドラーが必要とするサービスインターフェース。
type PollServiceInterface interface {
	// Results は選択肢ごとの得票数を返す。
	Results(ctx context.Context, votacionID int64) ([]*model.Resultado, error)
	// ActivePolls は現在受付中の投票イベント一覧を返す。
	ActivePolls(ctx context.Context) ([]*model.Votacion, error)
	// Options は投票イベントの選択肢一覧を返す。
	Options(ctx context.Context, votacionID int64) ([]*model.Opcion, error)
	// Votes は投票イベントの票のopcion_id一覧を返す。
	Votes(ctx context.Context, votacionID int64) ([]int64, error)
}

// PollHandler は一覧・集計のHTTPハンドラー。
type PollHandler struct {
	service PollServiceInterface
}

// NewPollHandler はPollHandlerを生成する。
func NewPollHandler(service PollServiceInterface) *PollHandler {
	return &PollHandler{service: service}
}

// --- レスポンス型 ---

// resultadoResponse は集計結果の1行。
type resultadoResponse struct {
	Nombre string `json:"nombre"`
	Votos  int    `json:"votos"`
}

// votacionResponse は受付中の投票イベントの1行。
type votacionResponse struct {
	IDVotacion  int64  `json:"id_votacion"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}

// opcionResponse は選択肢の1行。
type opcionResponse struct {
	IDOpcion  int64  `json:"id_opcion"`
	Nombre    string `json:"nombre"`
	ImagenURL string `json:"imagen_url,omitempty"`
}

// votoResponse は票の1行（どの選択肢に投じられたかのみ）。
type votoResponse struct {
	IDOpcion int64 `json:"id_opcion"`
}

// votacionIDParam はパスパラメータid_votacionを解析する。
func votacionIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id_votacion"), 10, 64)
	return id, err == nil && id > 0
}

// Resultados は選択肢ごとの得票数を返す。
// GET /resultados/{id_votacion}
func (h *PollHandler) Resultados(w http.ResponseWriter, r *http.Request) {
	votacionID, ok := votacionIDParam(r)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, model.NewValidationError("id_votacion inválido"))
		return
	}

	resultados, err := h.service.Results(r.Context(), votacionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	body := make([]resultadoResponse, 0, len(resultados))
	for _, res := range resultados {
		body = append(body, resultadoResponse{Nombre: res.Nombre, Votos: res.Votos})
	}
	writeJSON(w, http.StatusOK, body)
}

// VotacionesActivas は現在受付中の投票イベント一覧を返す。
// GET /votaciones/activas
func (h *PollHandler) VotacionesActivas(w http.ResponseWriter, r *http.Request) {
	votaciones, err := h.service.ActivePolls(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	body := make([]votacionResponse, 0, len(votaciones))
	for _, v := range votaciones {
		body = append(body, votacionResponse{
			IDVotacion:  v.ID,
			Titulo:      v.Titulo,
			Descripcion: v.Descripcion,
			FechaInicio: v.FechaInicio.Format(time.DateOnly),
			FechaFin:    v.FechaFin.Format(time.DateOnly),
		})
	}
	writeJSON(w, http.StatusOK, body)
}

// Opciones は投票イベントの選択肢一覧を返す。
// GET /opciones/{id_votacion}
func (h *PollHandler) Opciones(w http.ResponseWriter, r *http.Request) {
	votacionID, ok := votacionIDParam(r)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, model.NewValidationError("id_votacion inválido"))
		return
	}

	opciones, err := h.service.Options(r.Context(), votacionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	body := make([]opcionResponse, 0, len(opciones))
	for _, o := range opciones {
		body = append(body, opcionResponse{IDOpcion: o.ID, Nombre: o.Nombre, ImagenURL: o.ImagenURL})
	}
	writeJSON(w, http.StatusOK, body)
}

// Votos は投票イベントの票のopcion_id一覧を返す。
// GET /votos/{id_votacion}
func (h *PollHandler) Votos(w http.ResponseWriter, r *http.Request) {
	votacionID, ok := votacionIDParam(r)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, model.NewValidationError("id_votacion inválido"))
		return
	}

	opcionIDs, err := h.service.Votes(r.Context(), votacionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	body := make([]votoResponse, 0, len(opcionIDs))
	for _, id := range opcionIDs {
		body = append(body, votoResponse{IDOpcion: id})
	}
	writeJSON(w, http.StatusOK, body)
}
