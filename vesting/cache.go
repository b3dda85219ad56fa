package vesting

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const snapshotKey = "vesting:schedules"

// SnapshotCache keeps a msgpack-encoded copy of all schedule records in
// redis. Dashboard reads are served from the snapshot with a freshly sampled
// clock, so they never contend with mutations on the ledger lock.
type SnapshotCache struct {
	Rdb *redis.Client
	TTL time.Duration
}

func NewSnapshotCache(dsn string, ttl time.Duration) (*SnapshotCache, error) {
	options, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, err
	}
	return &SnapshotCache{Rdb: redis.NewClient(options), TTL: ttl}, nil
}

func (c *SnapshotCache) StoreSnapshot(ctx context.Context, entries []ScheduleEntry) error {
	data, err := msgpack.Marshal(entries)
	if err != nil {
		return err
	}
	return c.Rdb.Set(ctx, snapshotKey, data, c.TTL).Err()
}

// LoadSnapshot returns nil entries without an error on a cache miss.
func (c *SnapshotCache) LoadSnapshot(ctx context.Context) ([]ScheduleEntry, error) {
	data, err := c.Rdb.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []ScheduleEntry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
