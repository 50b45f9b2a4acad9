package cache

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"billing-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const customerListKey = "customers:active"

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: when Redis
// is unreachable every helper degrades to a no-op and reads go straight to
// the database.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCustomerList returns the cached active-customer list, if present.
// Bills are never cached; neither is the derived next bill number.
func GetCustomerList(ctx context.Context) ([]models.Customer, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, customerListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var customers []models.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, false
	}
	return customers, true
}

// SetCustomerList caches the active-customer list for 5 minutes.
func SetCustomerList(ctx context.Context, customers []models.Customer) {
	if client == nil {
		return
	}
	data, err := json.Marshal(customers)
	if err != nil {
		return
	}
	client.Set(ctx, customerListKey, data, 5*time.Minute)
}

// InvalidateCustomerList drops the cached list; called on customer update.
func InvalidateCustomerList(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, customerListKey)
}
