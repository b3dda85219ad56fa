package vesting

import (
	"math/big"
)

// mulDiv computes a * b / d with floor division and no intermediate overflow.
func mulDiv(a uint64, b uint64, d uint64) uint64 {
	res := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	res.Div(res, new(big.Int).SetUint64(d))
	return res.Uint64()
}

// VestedAmount returns the cumulative entitlement accrued by `now`. The curve
// is linear in elapsed time since StartTime over the full Duration window; the
// cliff only gates the value, it does not shift the curve origin. A revoked
// schedule is frozen at its revocation-time value.
func VestedAmount(s *VestingSchedule, now uint64) uint64 {
	if s.Revoked {
		now = s.RevokedAt
	}
	if now < s.StartTime+s.Cliff {
		return 0
	}
	if now >= s.StartTime+s.Duration {
		return s.TotalAmount
	}
	return mulDiv(s.TotalAmount, now-s.StartTime, s.Duration)
}

// ReleasableAmount is the vested amount not yet withdrawn, clamped at zero.
func ReleasableAmount(s *VestingSchedule, now uint64) uint64 {
	vested := VestedAmount(s, now)
	if vested <= s.Released {
		return 0
	}
	return vested - s.Released
}

func Status(s *VestingSchedule, now uint64) ScheduleStatus {
	if s.Revoked {
		return StatusRevoked
	}
	if now < s.StartTime+s.Cliff {
		return StatusPending
	}
	if now >= s.StartTime+s.Duration {
		return StatusCompleted
	}
	return StatusActive
}

// NextReleaseDate returns the cliff end while the schedule is still pending,
// the vesting end while it is active, and nil once fully vested. The linear
// curve has no intermediate unlock milestones.
func NextReleaseDate(s *VestingSchedule, now uint64) *uint64 {
	cliff_end := s.StartTime + s.Cliff
	if now < cliff_end {
		return &cliff_end
	}
	vesting_end := s.StartTime + s.Duration
	if now >= vesting_end {
		return nil
	}
	return &vesting_end
}

// Progress is the dashboard percentage measured from the cliff end, unlike
// VestedAmount which measures from StartTime. The two curves disagree for
// schedules with a non-zero cliff; this mirrors the original dashboard math.
func Progress(s *VestingSchedule, now uint64) int {
	cliff_end := s.StartTime + s.Cliff
	if now < cliff_end {
		return 0
	}
	vesting_end := s.StartTime + s.Duration
	if now >= vesting_end {
		return 100
	}
	return int(mulDiv(now-cliff_end, 100, vesting_end-cliff_end))
}

// ComputeRow derives the full dashboard view of a schedule at `now`.
func ComputeRow(beneficiary AccountAddress, s *VestingSchedule, now uint64) ScheduleRow {
	return ScheduleRow{
		Beneficiary:      beneficiary,
		Schedule:         *s,
		VestedAmount:     VestedAmount(s, now),
		ReleasableAmount: ReleasableAmount(s, now),
		Progress:         Progress(s, now),
		Status:           Status(s, now),
		NextReleaseDate:  NextReleaseDate(s, now),
	}
}
