// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hitoshi/urna/internal/model"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// cedulaContextKey はリクエストコンテキストに認証済みcedulaを格納するためのキー。
var cedulaContextKey = contextKey("cedula")

// TokenVerifier はトークン検証に必要なインターフェース。
// auth.TokenIssuerの部分集合として定義する。
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// NewAuthMiddleware はAuthorizationヘッダーのBearerトークンを検証し、
// cedulaクレームをリクエストコンテキストに注入するミドルウェアを返す。
// ヘッダー欠落は401、署名・期限の検証失敗は403を返す。
// 検証は署名確認のみで、DBへの照会は行わない。
func NewAuthMiddleware(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Bearerトークンの抽出
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeAuthError(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			// 2. 署名と有効期限の検証
			cedula, err := verifier.Verify(token)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, model.NewInvalidTokenError())
				return
			}

			// 3. 認証済みcedulaをコンテキストに注入
			ctx := context.WithValue(r.Context(), cedulaContextKey, cedula)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CedulaFromContext はリクエストコンテキストから認証済みcedulaを取得する。
// 認証ミドルウェアを通過したリクエストでのみ有効。
func CedulaFromContext(ctx context.Context) (string, error) {
	cedula, ok := ctx.Value(cedulaContextKey).(string)
	if !ok || cedula == "" {
		return "", fmt.Errorf("cedula not found in context")
	}
	return cedula, nil
}

// ContextWithCedula はコンテキストにcedulaを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithCedula(ctx context.Context, cedula string) context.Context {
	return context.WithValue(ctx, cedulaContextKey, cedula)
}

// writeAuthError は認証系エラーを {"error": msg} 形式で書き込む。
func writeAuthError(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": apiErr.Message})
}
