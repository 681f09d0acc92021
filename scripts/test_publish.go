// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ChangeEvent struct {
	EntityID  uuid.UUID `json:"entity_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	spotID := flag.String("spot", "", "Spot ID to publish (random if empty)")
	lat := flag.Float64("lat", 56.9496, "Spot latitude, used to watch the address cache")
	lon := flag.Float64("lon", 24.1052, "Spot longitude, used to watch the address cache")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	id := uuid.New()
	if *spotID != "" {
		parsed, err := uuid.Parse(*spotID)
		if err != nil {
			log.Fatalf("Invalid spot ID: %v", err)
		}
		id = parsed
	}

	event := ChangeEvent{
		EntityID:  id,
		Action:    "created",
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:spots:changed",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:spots:changed\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Spot ID: %s\n", event.EntityID)

	// Ключ кеша адреса совпадает с тем, что строит сервис
	cacheKey := fmt.Sprintf("addr:%s:%s",
		strconv.FormatFloat(*lat, 'f', -1, 64),
		strconv.FormatFloat(*lon, 'f', -1, 64))

	fmt.Printf("\n⏳ Waiting for address to appear at %s...\n", cacheKey)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for cached address")
			return
		case <-ticker.C:
			val, err := client.Get(ctx, cacheKey).Result()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				continue
			}

			fmt.Printf("\n✅ Address cached!\n")
			var pretty map[string]interface{}
			if err := json.Unmarshal([]byte(val), &pretty); err == nil {
				out, _ := json.MarshalIndent(pretty, "", "  ")
				fmt.Printf("%s\n", out)
			} else {
				fmt.Println(val)
			}
			return
		}
	}
}
