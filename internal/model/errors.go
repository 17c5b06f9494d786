package model

import "fmt"

// APIError はハンドラー境界でHTTPレスポンスに変換されるエラーを表す。
// Messageはそのままクライアントに返すスペイン語の文言で、
// DBエラー等の内部詳細はここに載せずログのみに記録する。
type APIError struct {
	Code     string // エラーコード
	Message  string // クライアント向けメッセージ
	Category string // カテゴリ: auth, validation, vote, system
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeRegistrationFailed = "REGISTRATION_FAILED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeDuplicateVote      = "DUPLICATE_VOTE"
	ErrCodeUserBlocked        = "USER_BLOCKED"
	ErrCodeValidation         = "VALIDATION"
	ErrCodePollNotFound       = "POLL_NOT_FOUND"
)

// NewInvalidCredentialsError は認証失敗エラーを生成する。
// cedula未登録とパスワード不一致を区別しない単一の文言を返す。
// 列挙攻撃を防ぐため、呼び出し側でも両ケースを同一経路で扱うこと。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Credenciales inválidas",
		Category: "auth",
	}
}

// NewRegistrationFailedError は登録失敗エラーを生成する。
// cedula重複を含む全ての失敗を汎用文言に丸め、DBのエラーメッセージは露出しない。
func NewRegistrationFailedError() *APIError {
	return &APIError{
		Code:     ErrCodeRegistrationFailed,
		Message:  "No se pudo registrar el usuario",
		Category: "validation",
	}
}

// NewUnauthorizedError はトークン欠落エラーを生成する。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "Acceso no autorizado",
		Category: "auth",
	}
}

// NewInvalidTokenError はトークン検証失敗エラーを生成する。
func NewInvalidTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidToken,
		Message:  "Token inválido o expirado",
		Category: "auth",
	}
}

// NewDuplicateVoteError は重複投票エラーを生成する。
func NewDuplicateVoteError() *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateVote,
		Message:  "Ya has votado en esta votación",
		Category: "vote",
	}
}

// NewUserBlockedError はブロック済みユーザーの投票試行エラーを生成する。
func NewUserBlockedError() *APIError {
	return &APIError{
		Code:     ErrCodeUserBlocked,
		Message:  "Usuario bloqueado para votar",
		Category: "vote",
	}
}

// NewValidationError は入力検証エラーを生成する。
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:     ErrCodeValidation,
		Message:  message,
		Category: "validation",
	}
}

// NewPollNotFoundError は投票イベント未検出エラーを生成する。
func NewPollNotFoundError(votacionID int64) *APIError {
	return &APIError{
		Code:     ErrCodePollNotFound,
		Message:  fmt.Sprintf("Votación no encontrada: %d", votacionID),
		Category: "validation",
	}
}
