// Package poll は投票イベントの一覧と集計の読み取りロジックを提供する。
package poll

import (
	"context"
	"fmt"
	"time"

	"github.com/hitoshi/urna/internal/model"
	"github.com/hitoshi/urna/internal/repository"
)

// Service は投票イベントの読み取り専用クエリを提供する。
// 全メソッドが行セットをそのまま返す。ページネーションは行わない。
type Service struct {
	pollRepo repository.PollRepository
	voteRepo repository.VoteRepository
	now      func() time.Time
}

// NewService はServiceを生成する。
func NewService(pollRepo repository.PollRepository, voteRepo repository.VoteRepository) *Service {
	return &Service{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
		now:      time.Now,
	}
}

// Results は指定投票イベントの選択肢ごとの得票数を返す。
func (s *Service) Results(ctx context.Context, votacionID int64) ([]*model.Resultado, error) {
	resultados, err := s.voteRepo.Tally(ctx, votacionID)
	if err != nil {
		return nil, fmt.Errorf("failed to tally: %w", err)
	}
	return resultados, nil
}

// ActivePolls は現在受付中の投票イベント一覧を返す。
func (s *Service) ActivePolls(ctx context.Context) ([]*model.Votacion, error) {
	votaciones, err := s.pollRepo.ListActive(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list active votaciones: %w", err)
	}
	return votaciones, nil
}

// Options は指定投票イベントの選択肢一覧を返す。
func (s *Service) Options(ctx context.Context, votacionID int64) ([]*model.Opcion, error) {
	opciones, err := s.pollRepo.ListOptions(ctx, votacionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list opciones: %w", err)
	}
	return opciones, nil
}

// Votes は指定投票イベントの票のopcion_id一覧を返す。
func (s *Service) Votes(ctx context.Context, votacionID int64) ([]int64, error) {
	opcionIDs, err := s.voteRepo.ListByVotacion(ctx, votacionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return opcionIDs, nil
}
