package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"books_scraper/config"
	"books_scraper/internal/model"
	"books_scraper/utils"

	"github.com/redis/go-redis/v9"
)

// RedisSession keeps the last successfully applied query per browser
// session so an invalid filter submission can fall back to the prior view.
type RedisSession struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisSession(cfg *config.Config, redisClient *redis.Client) *RedisSession {
	return &RedisSession{redis: redisClient, cfg: cfg}
}

func (r *RedisSession) createQueryKey(sessionID string) string {
	return fmt.Sprintf("sid:%s:lastQuery", sessionID)
}

func (r *RedisSession) SetLastQuery(ctx context.Context, sessionID string, query model.BookQuery) error {
	op := "RedisSession.SetLastQuery"
	rqID := utils.GetRequestIDFromCtx(ctx)

	queryJson, err := json.Marshal(query)
	if err != nil {
		slog.Error("can't marshall query", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.Any("query", query))
		return errors.New("can't marshall query")
	}

	_, err = r.redis.Set(ctx, r.createQueryKey(sessionID), queryJson, r.cfg.SessionExpiration).Result()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	return nil
}

func (r *RedisSession) GetLastQuery(ctx context.Context, sessionID string) (model.BookQuery, error) {
	op := "RedisSession.GetLastQuery"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createQueryKey(sessionID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.BookQuery{}, ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.BookQuery{}, err
	}

	query := model.BookQuery{}
	err = json.Unmarshal([]byte(res), &query)
	if err != nil {
		slog.Error("can't unmarshall query", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("resultFromRedis", res))
		return model.BookQuery{}, errors.New("can't unmarshall query")
	}

	return query, nil
}
