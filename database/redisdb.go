package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	// RedisHelper stays nil when no redisUrl is configured; every method
	// tolerates the nil receiver so the cache degrades to a no-op.
	RedisHelper *redisUtil
)

type redisUtil struct {
	client *redis.Client
	ctx    context.Context
}

func InitRedis(url string) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal().Msgf("Invalid Redis URL: %v", err)
	}

	redisClient := redis.NewClient(opts)
	ctx := context.Background()

	_, err = redisClient.Ping(ctx).Result()
	if err != nil {
		log.Fatal().Msgf("Could not connect to Redis: %v", err)
	}

	log.Info().Msg("Connected to Redis")

	RedisHelper = &redisUtil{
		client: redisClient,
		ctx:    ctx,
	}
}

func (r *redisUtil) Set(key string, value interface{}, expiration time.Duration) error {
	if r == nil {
		return nil
	}
	err := r.client.Set(r.ctx, key, value, expiration).Err()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis SET error")
	}
	return err
}

func (r *redisUtil) Get(key string) (string, error) {
	if r == nil {
		return "", nil
	}
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis GET error")
		return "", err
	}
	return val, nil
}

func (r *redisUtil) Delete(key string) error {
	if r == nil {
		return nil
	}
	err := r.client.Del(r.ctx, key).Err()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis DEL error")
	}
	return err
}

func (r *redisUtil) Exists(key string) bool {
	if r == nil {
		return false
	}
	count, err := r.client.Exists(r.ctx, key).Result()
	return err == nil && count > 0
}
