package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/urna/internal/middleware"
	"github.com/hitoshi/urna/internal/security"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	TokenVerifier     middleware.TokenVerifier
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger
	StatusObserver    middleware.StatusObserver

	// サービス
	AuthService AuthServiceInterface
	VoteService VoteServiceInterface
	PollService PollServiceInterface

	// 登録入力のサニタイズ
	NameSanitizer security.NameSanitizer

	// ヘルスチェック
	HealthChecker HealthChecker

	// ログインメトリクス（nil可）
	LoginRecorder LoginRecorder
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Logging
//
// /votar にはさらに Auth → RateLimit(General)、
// /register と /login には RateLimit(Login, IP単位) が付く。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r.Use(middleware.NewLoggingMiddleware(logger, deps.StatusObserver))

	authHandler := NewAuthHandler(deps.AuthService, deps.NameSanitizer, deps.LoginRecorder)
	voteHandler := NewVoteHandler(deps.VoteService)
	pollHandler := NewPollHandler(deps.PollService)

	// --- 認証不要のルート ---

	// 登録・ログイン（IP単位のレート制限付き）
	r.Group(func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.LoginMiddleware())
		}
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// 一覧・集計
	r.Get("/resultados/{id_votacion}", pollHandler.Resultados)
	r.Get("/votaciones/activas", pollHandler.VotacionesActivas)
	r.Get("/opciones/{id_votacion}", pollHandler.Opciones)
	r.Get("/votos/{id_votacion}", pollHandler.Votos)

	// ヘルスチェック
	if deps.HealthChecker != nil {
		r.Get("/health", NewHealthHandler(deps.HealthChecker))
	}

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: Auth → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier))
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
		}

		r.Post("/votar", voteHandler.Votar)
	})

	return r
}
