package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yrwanda/practicelog/internal/dto"
	"github.com/yrwanda/practicelog/internal/model"
	"github.com/yrwanda/practicelog/internal/repository"
	"github.com/yrwanda/practicelog/pkg/apperror"
)

type ActionService interface {
	Create(ctx context.Context, userID int64, input dto.CreateActionInput) (*dto.ActionResponse, error)
	List(ctx context.Context, userID int64) ([]dto.ActionWithStatsResponse, error)
	// Get returns (nil, nil) for an absent or foreign action; the handler
	// serializes that as a JSON null body.
	Get(ctx context.Context, userID, actionID int64) (*dto.ActionResponse, error)
	Records(ctx context.Context, userID, actionID int64) ([]dto.RecordResponse, error)
	Finish(ctx context.Context, userID, actionID int64, input dto.FinishInput) (*dto.RecordResponse, error)
}

type actionService struct {
	repo        repository.ActionRepository
	redisClient *redis.Client
	finishLimit time.Duration
	log         *zap.SugaredLogger
}

func NewActionService(repo repository.ActionRepository, redisClient *redis.Client, finishLimit time.Duration, log *zap.SugaredLogger) ActionService {
	return &actionService{
		repo:        repo,
		redisClient: redisClient,
		finishLimit: finishLimit,
		log:         log.With("service", "ActionService"),
	}
}

func (s *actionService) Create(ctx context.Context, userID int64, input dto.CreateActionInput) (*dto.ActionResponse, error) {
	action := &model.PracticeAction{
		UserID:     userID,
		Name:       input.Name,
		CreateTime: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, action); err != nil {
		return nil, err
	}

	s.log.Infow("action created", "user_id", userID, "action_id", action.ID, "name", action.Name)

	resp := dto.NewActionResponse(action)
	return &resp, nil
}

func (s *actionService) List(ctx context.Context, userID int64) ([]dto.ActionWithStatsResponse, error) {
	stats, err := s.repo.ListWithStats(ctx, userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	out := make([]dto.ActionWithStatsResponse, 0, len(stats))
	for i := range stats {
		out = append(out, dto.NewActionWithStatsResponse(&stats[i]))
	}
	return out, nil
}

func (s *actionService) Get(ctx context.Context, userID, actionID int64) (*dto.ActionResponse, error) {
	action, err := s.repo.FindByID(ctx, userID, actionID)
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, nil
	}

	resp := dto.NewActionResponse(action)
	return &resp, nil
}

func (s *actionService) Records(ctx context.Context, userID, actionID int64) ([]dto.RecordResponse, error) {
	records, err := s.repo.ListRecords(ctx, userID, actionID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		out = append(out, dto.NewRecordResponse(&records[i]))
	}
	return out, nil
}

func (s *actionService) Finish(ctx context.Context, userID, actionID int64, input dto.FinishInput) (*dto.RecordResponse, error) {
	allowed, err := CheckAndSetRateLimit(ctx, s.redisClient, userID, "finish", s.finishLimit)
	if err != nil {
		s.log.Warnw("rate limit check failed, allowing request", "error", err)
	} else if !allowed {
		return nil, apperror.ErrRateLimitExceeded
	}

	note := input.Note
	if note == nil {
		empty := ""
		note = &empty
	}

	record, err := s.repo.Finish(ctx, userID, actionID, time.Now().UTC(), note)
	if err != nil {
		return nil, err
	}

	s.log.Infow("action finished", "user_id", userID, "action_id", actionID, "record_id", record.ID)

	resp := dto.NewRecordResponse(record)
	return &resp, nil
}
