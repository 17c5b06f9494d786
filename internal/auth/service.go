package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/urna/internal/model"
	"github.com/hitoshi/urna/internal/repository"
)

// ServiceConfig は認証サービスの設定。
type ServiceConfig struct {
	BcryptCost int // bcryptのコストパラメータ
}

// Service はユーザー登録とログインのビジネスロジックを提供する。
type Service struct {
	userRepo repository.UserRepository
	issuer   *TokenIssuer
	config   ServiceConfig
}

// NewService はServiceを生成する。
func NewService(userRepo repository.UserRepository, issuer *TokenIssuer, config ServiceConfig) *Service {
	return &Service{
		userRepo: userRepo,
		issuer:   issuer,
		config:   config,
	}
}

// Register は新規ユーザーを登録する。
// パスワードはbcryptでハッシュ化してから保存し、平文は永続化しない。
// cedula重複を含むDB起因の失敗は汎用の登録失敗エラーに丸め、
// 内部詳細はログのみに記録する。
func (s *Service) Register(ctx context.Context, cedula, nombre, apellido, password string) error {
	if cedula == "" || password == "" {
		return model.NewValidationError("Cédula y contraseña son obligatorias")
	}

	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New().String(),
		Cedula:       cedula,
		Nombre:       nombre,
		Apellido:     apellido,
		PasswordHash: hash,
		Estado:       model.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrCedulaTaken) {
			slog.Warn("registration rejected: cedula already taken",
				slog.String("cedula", cedula),
			)
			return model.NewRegistrationFailedError()
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", slog.String("cedula", cedula))
	return nil
}

// Login はcedulaとパスワードを照合し、署名付きトークンを発行する。
// cedula未登録とパスワード不一致はどちらも同一のINVALID_CREDENTIALSを返す。
// 未登録の場合もダミーハッシュとの照合を実行し、両ケースの応答時間を揃える。
func (s *Service) Login(ctx context.Context, cedula, password string) (string, error) {
	user, err := s.userRepo.FindByCedula(ctx, cedula)
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil {
		verifyDummy(password)
		return "", model.NewInvalidCredentialsError()
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return "", model.NewInvalidCredentialsError()
	}

	token, err := s.issuer.Issue(user.Cedula, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user logged in", slog.String("cedula", cedula))
	return token, nil
}
