package database

import (
	"context"
	"log"

	"hotel_manager/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis sets up the shared client used by the statistics cache and
// the front-desk pub/sub feed. The server still works without redis; callers
// must tolerate a nil client.
func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable at %s: %v", addr, err)
		return
	}
	Redis = client
}
