package utils

import (
	"github.com/go-redis/redis/v7"
)

// GetRedis returns a *redis.Client instance for the given address.
func GetRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	return client
}
