package database

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"classroom_manager/config"
)

var Client *redis.Client

// ConnectDB opens the Redis connection that backs the key-value store. A
// missing Redis is not fatal: the service runs on memory and seed data and
// reports persistence failures per operation.
func ConnectDB() {
	host := config.Config("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := config.Config("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: config.Config("REDIS_PASSWORD"),
	})

	if err := Client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable at %s:%s, state will not persist: %v", host, port, err)
		return
	}
	log.Println("Connection opened to Redis")
}
