package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"books_scraper/config"
	"books_scraper/internal/model"
	"books_scraper/utils"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisCache(cfg *config.Config, redisClient *redis.Client) *RedisCache {
	return &RedisCache{redis: redisClient, cfg: cfg}
}

func (r *RedisCache) GetBooksPage(ctx context.Context, key string) (model.BooksPage, error) {
	op := "RedisCache.GetBooksPage"
	rqID := utils.GetRequestIDFromCtx(ctx)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.BooksPage{}, ErrCacheMiss
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.BooksPage{}, err
	}

	page := model.BooksPage{}
	err = json.Unmarshal([]byte(res), &page)
	if err != nil {
		slog.Error("can't unmarshall cached page", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.BooksPage{}, errors.New("can't unmarshall cached page")
	}

	return page, nil
}

func (r *RedisCache) SetBooksPage(ctx context.Context, key string, page model.BooksPage) error {
	op := "RedisCache.SetBooksPage"
	rqID := utils.GetRequestIDFromCtx(ctx)

	pageJson, err := json.Marshal(page)
	if err != nil {
		slog.Error("can't marshall page", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return errors.New("can't marshall page")
	}

	_, err = r.redis.Set(ctx, key, pageJson, r.cfg.CacheExpiration).Result()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}
