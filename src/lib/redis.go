package lib

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		return nil
	}
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

// Capacity checks are read-then-write, so two concurrent bookings for
// the same trip must not interleave between the read and the insert.
// With redis configured the lock is shared across instances; without it
// a per-trip mutex serializes bookings within the process.
var (
	localTripLocks   = map[uint]*sync.Mutex{}
	localTripLocksMu sync.Mutex
)

const tripLockTTL = 10 * time.Second

func AcquireTripLock(ctx context.Context, tripID uint) (release func(), err error) {
	rd := GetRedisClient()
	if rd == nil {
		localTripLocksMu.Lock()
		mu, ok := localTripLocks[tripID]
		if !ok {
			mu = &sync.Mutex{}
			localTripLocks[tripID] = mu
		}
		localTripLocksMu.Unlock()
		mu.Lock()
		return mu.Unlock, nil
	}

	key := fmt.Sprintf("trip:%d:lock", tripID)
	token := uuid.NewString()
	deadline := time.Now().Add(tripLockTTL)
	for {
		ok, err := rd.SetNX(ctx, key, token, tripLockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("trip %d is locked by another request", tripID)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return func() {
		if val, err := rd.Get(context.Background(), key).Result(); err == nil && val == token {
			rd.Del(context.Background(), key)
		}
	}, nil
}
