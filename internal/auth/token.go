package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims はアクセストークンに埋め込むクレームを表す。
// Cedulaが本人性の唯一のクレームで、検証後はDBへの再照会なしに信頼される。
type Claims struct {
	Cedula string `json:"cedula"`
	jwt.RegisteredClaims
}

// TokenIssuer はHS256署名付きアクセストークンの発行と検証を行う。
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer はTokenIssuerを生成する。
// ttlはトークンの有効期間。無期限トークンは発行しない。
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue は指定cedulaを束縛した署名付きトークンを発行する。
func (ti *TokenIssuer) Issue(cedula string, now time.Time) (string, error) {
	claims := &Claims{
		Cedula: cedula,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンの署名と有効期限を検証し、cedulaクレームを返す。
// 署名方式はHS256のみ受け付ける。
func (ti *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.Cedula == "" {
		return "", fmt.Errorf("invalid token claims")
	}

	return claims.Cedula, nil
}
