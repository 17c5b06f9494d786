// Package auth はユーザー登録、ログイン、トークン発行・検証を提供する。
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash はcedula未登録時のタイミング均一化に使うbcryptハッシュ。
// ("urna-dummy-password" のハッシュ。照合は常に失敗する前提で、
// 未登録cedulaとパスワード不一致の応答時間を揃えるためだけに存在する)
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword は平文パスワードをbcryptでハッシュ化する。
// costはbcryptのコストパラメータ（本番デフォルト10）。
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword は平文パスワードが保存済みハッシュと一致するかどうかを返す。
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// verifyDummy は未登録cedulaに対しても照合コストを支払うための照合。
// 結果は常にfalseとして扱う。
func verifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
