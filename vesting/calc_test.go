package vesting

import (
	"testing"
)

func testSchedule() VestingSchedule {
	return VestingSchedule{
		Initialized: true,
		Revocable:   true,
		TotalAmount: 990000000,
		StartTime:   1000,
		Duration:    1000,
		Cliff:       250,
	}
}

func TestVestedAmountBeforeCliff(t *testing.T) {
	s := testSchedule()
	if got := VestedAmount(&s, 999); got != 0 {
		t.Errorf("expected 0 before start, got %d", got)
	}
	if got := VestedAmount(&s, 1249); got != 0 {
		t.Errorf("expected 0 before cliff end, got %d", got)
	}
}

func TestVestedAmountLinearFromStart(t *testing.T) {
	s := testSchedule()

	// The curve origin is StartTime, not the cliff end. At the cliff
	// end a quarter of the window has already elapsed.
	if got := VestedAmount(&s, 1250); got != 247500000 {
		t.Errorf("expected 247500000 at cliff end, got %d", got)
	}
	if got := VestedAmount(&s, 1500); got != 495000000 {
		t.Errorf("expected 495000000 at midpoint, got %d", got)
	}
	if got := VestedAmount(&s, 2000); got != s.TotalAmount {
		t.Errorf("expected full amount at vesting end, got %d", got)
	}
	if got := VestedAmount(&s, 5000); got != s.TotalAmount {
		t.Errorf("expected full amount after vesting end, got %d", got)
	}
}

func TestVestedAmountNoOverflow(t *testing.T) {
	s := VestingSchedule{
		Initialized: true,
		TotalAmount: 5000000000000000000,
		StartTime:   0,
		Duration:    4000000000,
	}
	if got := VestedAmount(&s, 2000000000); got != 2500000000000000000 {
		t.Errorf("expected 2500000000000000000, got %d", got)
	}
}

func TestVestedAmountFrozenAfterRevocation(t *testing.T) {
	s := testSchedule()
	s.Revoked = true
	s.RevokedAt = 1500

	frozen := VestedAmount(&s, 1500)
	if got := VestedAmount(&s, 99999999); got != frozen {
		t.Errorf("expected frozen amount %d, got %d", frozen, got)
	}
}

func TestReleasableAmountClamped(t *testing.T) {
	s := testSchedule()
	s.Released = 495000000

	if got := ReleasableAmount(&s, 1500); got != 0 {
		t.Errorf("expected 0 when fully withdrawn, got %d", got)
	}
	if got := ReleasableAmount(&s, 2000); got != 495000000 {
		t.Errorf("expected remaining 495000000, got %d", got)
	}

	s.Released = s.TotalAmount + 1
	if got := ReleasableAmount(&s, 2000); got != 0 {
		t.Errorf("expected 0 when released exceeds vested, got %d", got)
	}
}

func TestStatus(t *testing.T) {
	s := testSchedule()

	if got := Status(&s, 1100); got != StatusPending {
		t.Errorf("expected pending before cliff end, got %s", got)
	}
	if got := Status(&s, 1250); got != StatusActive {
		t.Errorf("expected active at cliff end, got %s", got)
	}
	if got := Status(&s, 2000); got != StatusCompleted {
		t.Errorf("expected completed at vesting end, got %s", got)
	}

	s.Revoked = true
	s.RevokedAt = 1400
	if got := Status(&s, 1500); got != StatusRevoked {
		t.Errorf("expected revoked, got %s", got)
	}
}

func TestNextReleaseDate(t *testing.T) {
	s := testSchedule()

	if got := NextReleaseDate(&s, 1100); got == nil || *got != 1250 {
		t.Errorf("expected cliff end 1250 while pending, got %v", got)
	}
	if got := NextReleaseDate(&s, 1500); got == nil || *got != 2000 {
		t.Errorf("expected vesting end 2000 while active, got %v", got)
	}
	if got := NextReleaseDate(&s, 2000); got != nil {
		t.Errorf("expected nil once fully vested, got %d", *got)
	}
}

func TestProgressMeasuredFromCliffEnd(t *testing.T) {
	s := testSchedule()

	if got := Progress(&s, 1100); got != 0 {
		t.Errorf("expected 0 before cliff end, got %d", got)
	}
	// Progress stays at 0 at the cliff end even though a quarter of
	// the amount is already vested. The two curves intentionally
	// disagree for schedules with a non-zero cliff.
	if got := Progress(&s, 1250); got != 0 {
		t.Errorf("expected 0 at cliff end, got %d", got)
	}
	if got := Progress(&s, 1625); got != 50 {
		t.Errorf("expected 50 halfway through the post-cliff window, got %d", got)
	}
	if got := Progress(&s, 2000); got != 100 {
		t.Errorf("expected 100 at vesting end, got %d", got)
	}
}

func TestProgressZeroCliff(t *testing.T) {
	s := testSchedule()
	s.Cliff = 0

	if got := Progress(&s, 1500); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
	vested := VestedAmount(&s, 1500)
	if vested != 495000000 {
		t.Errorf("expected vested 495000000, got %d", vested)
	}
}

func TestComputeRow(t *testing.T) {
	s := testSchedule()
	row := ComputeRow("0:ABCD", &s, 1500)

	if row.Beneficiary != "0:ABCD" {
		t.Errorf("unexpected beneficiary: %s", row.Beneficiary)
	}
	if row.VestedAmount != 495000000 {
		t.Errorf("unexpected vested amount: %d", row.VestedAmount)
	}
	if row.ReleasableAmount != 495000000 {
		t.Errorf("unexpected releasable amount: %d", row.ReleasableAmount)
	}
	if row.Status != StatusActive {
		t.Errorf("unexpected status: %s", row.Status)
	}
	if row.Progress != 33 {
		t.Errorf("unexpected progress: %d", row.Progress)
	}
	if row.NextReleaseDate == nil || *row.NextReleaseDate != 2000 {
		t.Errorf("unexpected next release date: %v", row.NextReleaseDate)
	}
}
