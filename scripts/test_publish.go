//go:build ignore

// Публикует тестовый скан чека в stream:loyalty:receipt и ждёт, пока воркер
// его подтвердит.
//
//	go run scripts/test_publish.go -user <uuid>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fuelpark-service/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	userFlag := flag.String("user", "", "User ID (UUID)")
	points := flag.Int("points", 20, "Points to award")
	group := flag.String("group", "loyalty-workers", "Worker consumer group")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatalf("Invalid -user: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.ReceiptScannedEvent{
		ScanID:    uuid.New(),
		UserID:    userID,
		Points:    *points,
		ScannedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	msgID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamReceiptScanned,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamReceiptScanned)
	fmt.Printf("   Message ID: %s\n", msgID)
	fmt.Printf("   Scan ID: %s\n", event.ScanID)
	fmt.Printf("   User ID: %s, points: %d\n", event.UserID, event.Points)

	fmt.Printf("\nWaiting for group %q to acknowledge...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for acknowledgement")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, domain.StreamReceiptScanned).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Name != *group {
					continue
				}
				if g.Lag == 0 && g.Pending == 0 {
					fmt.Println("Acknowledged")
					return
				}
			}
		}
	}
}
