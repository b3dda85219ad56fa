package vesting

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestCache(t *testing.T) (*SnapshotCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return &SnapshotCache{Rdb: client, TTL: time.Minute}, mr
}

func TestSnapshotMiss(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()

	entries, err := cache.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil entries on a miss, got %+v", entries)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()
	ctx := context.Background()

	stored := []ScheduleEntry{
		{Beneficiary: testBeneficiary, Schedule: testSchedule()},
		{Beneficiary: testBeneficiary2, Schedule: VestingSchedule{
			Initialized: true,
			TotalAmount: 500,
			StartTime:   2000,
			Duration:    100,
			Released:    120,
			Revoked:     true,
			RevokedAt:   2050,
		}},
	}
	if err := cache.StoreSnapshot(ctx, stored); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	loaded, err := cache.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded))
	}
	if loaded[0].Beneficiary != testBeneficiary || loaded[0].Schedule.TotalAmount != 990000000 {
		t.Errorf("unexpected first entry: %+v", loaded[0])
	}
	if !loaded[1].Schedule.Revoked || loaded[1].Schedule.RevokedAt != 2050 {
		t.Errorf("revocation state was not preserved: %+v", loaded[1])
	}
}

func TestSnapshotExpiry(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()
	ctx := context.Background()

	if err := cache.StoreSnapshot(ctx, []ScheduleEntry{{Beneficiary: testBeneficiary, Schedule: testSchedule()}}); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	entries, err := cache.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil entries after expiry, got %+v", entries)
	}
}

func TestLedgerWithSnapshotCache(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()

	clock := &testClock{now: 1000}
	ledger, err := NewLedger(LedgerConfig{
		Owner:              testOwner,
		FeeRecipient:       testFeeRecipient,
		SetupFeePercentage: DefaultSetupFeeBp,
		Cache:              cache,
		Transfer:           &recordingTransferer{},
		Clock:              clock.Now,
	})
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}
	createTestSchedule(t, ledger, testBeneficiary)

	// The dashboard reads come from the snapshot, the amounts from the
	// live clock.
	clock.now = 1500
	resp, err := ledger.Rows(ScheduleRequest{}, LimitRequest{}, RequestSettings{DefaultLimit: 100, MaxLimit: 1000})
	if err != nil {
		t.Fatalf("rows failed: %v", err)
	}
	if len(resp.Schedules) != 1 {
		t.Fatalf("expected 1 row, got %d", len(resp.Schedules))
	}
	if resp.Schedules[0].VestedAmount != 495000000 {
		t.Errorf("unexpected vested amount: %d", resp.Schedules[0].VestedAmount)
	}

	stored, err := cache.LoadSnapshot(context.Background())
	if err != nil || len(stored) != 1 {
		t.Errorf("expected snapshot to be populated: %+v, %v", stored, err)
	}
}
