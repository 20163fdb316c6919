package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/assessflow/config"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// QuestionCache is a best-effort read-through cache for an assessment's
// question list. Failures are logged and treated as misses.
type QuestionCache interface {
	Get(ctx context.Context, assessmentID uint) ([]dto.QuestionDTO, bool)
	Set(ctx context.Context, assessmentID uint, questions []dto.QuestionDTO)
	Invalidate(ctx context.Context, assessmentID uint)
}

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, question cache disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewQuestionCache(rdb *redis.Client, cfg *config.Config) QuestionCache {
	if rdb == nil {
		return Noop{}
	}
	return NewRedisQuestionCache(rdb, cfg.Redis.QuestionCacheTTL)
}

type redisQuestionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisQuestionCache(rdb *redis.Client, ttl time.Duration) QuestionCache {
	return &redisQuestionCache{rdb: rdb, ttl: ttl}
}

func questionsKey(assessmentID uint) string {
	return fmt.Sprintf("assessment:%d:questions", assessmentID)
}

func (c *redisQuestionCache) Get(ctx context.Context, assessmentID uint) ([]dto.QuestionDTO, bool) {
	raw, err := c.rdb.Get(ctx, questionsKey(assessmentID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Uint("assessmentID", assessmentID).Msg("Question cache read failed")
		}
		return nil, false
	}
	var questions []dto.QuestionDTO
	if err := json.Unmarshal(raw, &questions); err != nil {
		log.Warn().Err(err).Uint("assessmentID", assessmentID).Msg("Discarding undecodable cached questions")
		return nil, false
	}
	return questions, true
}

func (c *redisQuestionCache) Set(ctx context.Context, assessmentID uint, questions []dto.QuestionDTO) {
	data, err := json.Marshal(questions)
	if err != nil {
		log.Warn().Err(err).Uint("assessmentID", assessmentID).Msg("Failed to encode questions for cache")
		return
	}
	if err := c.rdb.Set(ctx, questionsKey(assessmentID), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Uint("assessmentID", assessmentID).Msg("Question cache write failed")
	}
}

func (c *redisQuestionCache) Invalidate(ctx context.Context, assessmentID uint) {
	if err := c.rdb.Del(ctx, questionsKey(assessmentID)).Err(); err != nil {
		log.Warn().Err(err).Uint("assessmentID", assessmentID).Msg("Question cache delete failed")
	}
}

// Noop never hits.
type Noop struct{}

func (Noop) Get(context.Context, uint) ([]dto.QuestionDTO, bool) {
	return nil, false
}

func (Noop) Set(context.Context, uint, []dto.QuestionDTO) {}

func (Noop) Invalidate(context.Context, uint) {}
