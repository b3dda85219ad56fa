package vesting

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	MaxSetupFeeBp     = 1000
	DefaultSetupFeeBp = 100
	FeeDenominator    = 10000
)

type LedgerConfig struct {
	Owner              AccountAddress
	FeeRecipient       AccountAddress
	SetupFeePercentage uint64
	Store              *DbClient
	Cache              *SnapshotCache
	Transfer           Transferer
	Clock              func() uint64
}

// Ledger is the authoritative vesting state: one schedule per beneficiary,
// an index-stable enumeration list, and the fee policy. Every mutation takes
// the write lock, so racing operations on the same beneficiary serialize and
// the create-time existence check is atomic with the enumeration append.
type Ledger struct {
	mu            sync.RWMutex
	schedules     map[AccountAddress]*VestingSchedule
	beneficiaries []AccountAddress
	known         mapset.Set[AccountAddress]

	owner        AccountAddress
	feeRecipient AccountAddress
	setupFeeBp   uint64

	store    *DbClient
	cache    *SnapshotCache
	transfer Transferer
	now      func() uint64
}

func NewLedger(config LedgerConfig) (*Ledger, error) {
	if len(config.Owner) == 0 {
		return nil, fmt.Errorf("owner cannot be zero address")
	}
	if len(config.FeeRecipient) == 0 {
		return nil, fmt.Errorf("fee recipient cannot be zero address")
	}
	if config.SetupFeePercentage > MaxSetupFeeBp {
		return nil, fmt.Errorf("setup fee percentage cannot exceed %d basis points", MaxSetupFeeBp)
	}

	l := &Ledger{
		schedules:    map[AccountAddress]*VestingSchedule{},
		known:        mapset.NewSet[AccountAddress](),
		owner:        config.Owner,
		feeRecipient: config.FeeRecipient,
		setupFeeBp:   config.SetupFeePercentage,
		store:        config.Store,
		cache:        config.Cache,
		transfer:     config.Transfer,
		now:          config.Clock,
	}
	if l.transfer == nil {
		l.transfer = &LoggingTransferer{}
	}
	if l.now == nil {
		l.now = func() uint64 { return uint64(time.Now().Unix()) }
	}

	if l.store != nil {
		ctx := context.Background()
		if err := l.store.InitSchema(ctx); err != nil {
			return nil, err
		}
		owner, recipient, feeBp, found, err := l.store.LoadConfig(ctx)
		if err != nil {
			return nil, err
		}
		if found {
			l.owner = owner
			l.feeRecipient = recipient
			l.setupFeeBp = feeBp
		} else if err := l.store.SaveConfig(ctx, l.owner, l.feeRecipient, l.setupFeeBp); err != nil {
			return nil, err
		}

		entries, err := l.store.LoadSchedules(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			s := e.Schedule
			l.schedules[e.Beneficiary] = &s
			l.beneficiaries = append(l.beneficiaries, e.Beneficiary)
			l.known.Add(e.Beneficiary)
		}
	}
	l.refreshCacheLocked()
	return l, nil
}

func opCtx(settings RequestSettings) (context.Context, context.CancelFunc) {
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

func storageError(err error) error {
	if v, ok := err.(VestingError); ok {
		return v
	}
	return VestingError{Code: 500, Message: err.Error()}
}

// mutations

func (l *Ledger) CreateSchedule(caller AccountAddress, req CreateScheduleRequest, settings RequestSettings) (*CreateScheduleResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return nil, VestingError{Code: 403, Kind: ErrUnauthorized, Message: "caller is not the owner"}
	}
	if len(req.Beneficiary) == 0 {
		return nil, VestingError{Code: 422, Kind: ErrInvalidBeneficiary, Message: "beneficiary cannot be zero address"}
	}
	if req.GrossAmount == 0 {
		return nil, VestingError{Code: 422, Kind: ErrInvalidAmount, Message: "total amount must be greater than 0"}
	}
	if req.Duration == 0 {
		return nil, VestingError{Code: 422, Kind: ErrInvalidDuration, Message: "duration must be greater than 0"}
	}
	if req.Cliff > req.Duration {
		return nil, VestingError{Code: 422, Kind: ErrInvalidCliff, Message: "cliff must be less than or equal to duration"}
	}
	if l.known.Contains(req.Beneficiary) {
		return nil, VestingError{Code: 409, Kind: ErrDuplicateSchedule, Message: "vesting schedule already exists"}
	}
	if req.SentValue < req.GrossAmount {
		return nil, VestingError{Code: 400, Kind: ErrInsufficientFunds, Message: "insufficient value sent"}
	}

	fee := mulDiv(req.GrossAmount, l.setupFeeBp, FeeDenominator)
	schedule := VestingSchedule{
		Initialized: true,
		Revocable:   req.Revocable,
		TotalAmount: req.GrossAmount - fee,
		StartTime:   req.StartTime,
		Duration:    req.Duration,
		Cliff:       req.Cliff,
	}
	entry := ScheduleEntry{Beneficiary: req.Beneficiary, Schedule: schedule}

	now := l.now()
	event := ScheduleCreatedEvent{
		Beneficiary: req.Beneficiary,
		TotalAmount: schedule.TotalAmount,
		StartTime:   schedule.StartTime,
		Duration:    schedule.Duration,
		Cliff:       schedule.Cliff,
	}
	record := EventRecord{
		Utime:       now,
		Type:        EventScheduleCreated,
		Beneficiary: req.Beneficiary,
		Amount:      &schedule.TotalAmount,
		StartTime:   &schedule.StartTime,
		Duration:    &schedule.Duration,
		Cliff:       &schedule.Cliff,
	}
	payFee := func() error {
		if fee == 0 {
			return nil
		}
		return l.transfer.Transfer(l.feeRecipient, fee)
	}

	var err error
	if l.store != nil {
		ctx, cancel_ctx := opCtx(settings)
		defer cancel_ctx()
		err = l.store.InsertSchedule(ctx, entry, &record, payFee)
	} else {
		err = payFee()
	}
	if err != nil {
		return nil, storageError(err)
	}

	stored := schedule
	l.schedules[req.Beneficiary] = &stored
	l.beneficiaries = append(l.beneficiaries, req.Beneficiary)
	l.known.Add(req.Beneficiary)
	l.refreshCacheLocked()

	return &CreateScheduleResponse{
		Event:    &event,
		Schedule: ComputeRow(req.Beneficiary, &stored, now),
	}, nil
}

// Release pays out the caller's releasable amount. The caller is the implicit
// beneficiary: each wallet releases its own schedule only.
func (l *Ledger) Release(caller AccountAddress, settings RequestSettings) (*ReleaseResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.schedules[caller]
	if !ok {
		return nil, VestingError{Code: 404, Kind: ErrNoSchedule, Message: "no vesting schedule found"}
	}

	now := l.now()
	releasable := ReleasableAmount(s, now)
	if releasable == 0 {
		return nil, VestingError{Code: 400, Kind: ErrNothingReleasable, Message: "no tokens available for release"}
	}

	updated := *s
	updated.Released += releasable
	record := EventRecord{
		Utime:       now,
		Type:        EventTokensReleased,
		Beneficiary: caller,
		Amount:      &releasable,
	}
	payout := func() error {
		return l.transfer.Transfer(caller, releasable)
	}

	var err error
	if l.store != nil {
		ctx, cancel_ctx := opCtx(settings)
		defer cancel_ctx()
		err = l.store.UpdateSchedule(ctx, ScheduleEntry{Beneficiary: caller, Schedule: updated}, &record, payout)
	} else {
		err = payout()
	}
	if err != nil {
		return nil, storageError(err)
	}

	*s = updated
	l.refreshCacheLocked()

	return &ReleaseResponse{
		Event:    &TokensReleasedEvent{Beneficiary: caller, Amount: releasable},
		Schedule: ComputeRow(caller, s, now),
	}, nil
}

// Revoke freezes further accrual. The already-vested amount stays releasable;
// the unvested remainder is forfeited.
func (l *Ledger) Revoke(caller AccountAddress, beneficiary AccountAddress, settings RequestSettings) (*RevokeResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return nil, VestingError{Code: 403, Kind: ErrUnauthorized, Message: "caller is not the owner"}
	}
	s, ok := l.schedules[beneficiary]
	if !ok {
		return nil, VestingError{Code: 404, Kind: ErrNoSchedule, Message: "no vesting schedule found"}
	}
	if !s.Revocable {
		return nil, VestingError{Code: 400, Kind: ErrNotRevocable, Message: "vesting schedule is not revocable"}
	}
	if s.Revoked {
		return nil, VestingError{Code: 400, Kind: ErrNotRevocable, Message: "vesting schedule already revoked"}
	}

	now := l.now()
	updated := *s
	updated.Revoked = true
	updated.RevokedAt = now
	record := EventRecord{
		Utime:       now,
		Type:        EventScheduleRevoked,
		Beneficiary: beneficiary,
	}

	if l.store != nil {
		ctx, cancel_ctx := opCtx(settings)
		defer cancel_ctx()
		if err := l.store.UpdateSchedule(ctx, ScheduleEntry{Beneficiary: beneficiary, Schedule: updated}, &record, nil); err != nil {
			return nil, storageError(err)
		}
	}

	*s = updated
	l.refreshCacheLocked()

	return &RevokeResponse{
		Event:    &ScheduleRevokedEvent{Beneficiary: beneficiary},
		Schedule: ComputeRow(beneficiary, s, now),
	}, nil
}

// UpdateSetupFeePercentage affects subsequent creations only; existing
// schedules keep their already-deducted principal.
func (l *Ledger) UpdateSetupFeePercentage(caller AccountAddress, feeBp uint64, settings RequestSettings) (*UpdateFeePercentageResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return nil, VestingError{Code: 403, Kind: ErrUnauthorized, Message: "caller is not the owner"}
	}
	if feeBp > MaxSetupFeeBp {
		return nil, VestingError{Code: 422, Kind: ErrFeeTooHigh, Message: "setup fee percentage cannot exceed 10%"}
	}

	if l.store != nil {
		ctx, cancel_ctx := opCtx(settings)
		defer cancel_ctx()
		if err := l.store.SaveConfig(ctx, l.owner, l.feeRecipient, feeBp); err != nil {
			return nil, storageError(err)
		}
	}
	l.setupFeeBp = feeBp

	return &UpdateFeePercentageResponse{Event: &FeePercentageUpdatedEvent{FeePercentage: feeBp}}, nil
}

func (l *Ledger) UpdateFeeRecipient(caller AccountAddress, recipient AccountAddress, settings RequestSettings) (*UpdateFeeRecipientResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return nil, VestingError{Code: 403, Kind: ErrUnauthorized, Message: "caller is not the owner"}
	}
	if len(recipient) == 0 {
		return nil, VestingError{Code: 422, Kind: ErrInvalidAddress, Message: "fee recipient cannot be zero address"}
	}

	if l.store != nil {
		ctx, cancel_ctx := opCtx(settings)
		defer cancel_ctx()
		if err := l.store.SaveConfig(ctx, l.owner, recipient, l.setupFeeBp); err != nil {
			return nil, storageError(err)
		}
	}
	l.feeRecipient = recipient

	return &UpdateFeeRecipientResponse{Event: &FeeRecipientUpdatedEvent{FeeRecipient: recipient}}, nil
}

// reads

func (l *Ledger) HasSchedule(beneficiary AccountAddress) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.known.Contains(beneficiary)
}

func (l *Ledger) Schedule(beneficiary AccountAddress) (VestingSchedule, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.schedules[beneficiary]
	if !ok {
		return VestingSchedule{}, false
	}
	return *s, true
}

func (l *Ledger) BeneficiaryCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.beneficiaries)
}

func (l *Ledger) BeneficiaryAt(index int32) (AccountAddress, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || int(index) >= len(l.beneficiaries) {
		return "", VestingError{Code: 404, Kind: ErrIndexOutOfBounds, Message: fmt.Sprintf("index %d out of bounds", index)}
	}
	return l.beneficiaries[index], nil
}

func (l *Ledger) Beneficiaries(lim_req LimitRequest, settings RequestSettings) (*BeneficiariesResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start, end, err := sliceBounds(len(l.beneficiaries), lim_req, settings)
	if err != nil {
		return nil, err
	}
	resp := BeneficiariesResponse{Beneficiaries: []AccountAddress{}, Total: len(l.beneficiaries)}
	resp.Beneficiaries = append(resp.Beneficiaries, l.beneficiaries[start:end]...)
	return &resp, nil
}

func (l *Ledger) Owner() AccountAddress {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.owner
}

// Entries copies every schedule in enumeration order.
func (l *Ledger) Entries() []ScheduleEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entriesLocked()
}

func (l *Ledger) entriesLocked() []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(l.beneficiaries))
	for _, b := range l.beneficiaries {
		entries = append(entries, ScheduleEntry{Beneficiary: b, Schedule: *l.schedules[b]})
	}
	return entries
}

// Rows computes the dashboard view. When a snapshot cache is configured the
// records come from the snapshot (possibly slightly stale) and the amounts
// are still derived from a freshly sampled clock.
func (l *Ledger) Rows(sched_req ScheduleRequest, lim_req LimitRequest, settings RequestSettings) (*SchedulesResponse, error) {
	entries := l.cachedEntries(settings)
	now := l.now()

	wanted := mapset.NewSet[AccountAddress]()
	for _, b := range sched_req.Beneficiary {
		wanted.Add(b)
	}
	statuses := mapset.NewSet[ScheduleStatus]()
	for _, s := range sched_req.Status {
		statuses.Add(s)
	}

	rows := []ScheduleRow{}
	for i := range entries {
		e := &entries[i]
		if wanted.Cardinality() > 0 && !wanted.Contains(e.Beneficiary) {
			continue
		}
		row := ComputeRow(e.Beneficiary, &e.Schedule, now)
		if statuses.Cardinality() > 0 && !statuses.Contains(row.Status) {
			continue
		}
		rows = append(rows, row)
	}

	start, end, err := sliceBounds(len(rows), lim_req, settings)
	if err != nil {
		return nil, err
	}
	return &SchedulesResponse{Schedules: rows[start:end]}, nil
}

func (l *Ledger) Stats(settings RequestSettings) *VestingStats {
	entries := l.cachedEntries(settings)
	now := l.now()

	stats := VestingStats{BeneficiaryCount: len(entries)}
	for i := range entries {
		s := &entries[i].Schedule
		stats.TotalVested += VestedAmount(s, now)
		stats.TotalReleased += s.Released
		stats.TotalReleasable += ReleasableAmount(s, now)
		switch Status(s, now) {
		case StatusPending:
			stats.PendingCount += 1
		case StatusActive:
			stats.ActiveCount += 1
		case StatusCompleted:
			stats.CompletedCount += 1
		case StatusRevoked:
			stats.RevokedCount += 1
		}
		if next := NextReleaseDate(s, now); next != nil && !s.Revoked {
			if stats.NextReleaseDate == nil || *next < *stats.NextReleaseDate {
				stats.NextReleaseDate = next
			}
		}
	}
	return &stats
}

// Info reports the admin view. The treasury balance is the undistributed
// principal: remaining vesting amounts plus the frozen releasable part of
// revoked schedules.
func (l *Ledger) Info() *VestingInfo {
	l.mu.RLock()
	defer l.mu.RUnlock()

	info := VestingInfo{
		Owner:              l.owner,
		FeeRecipient:       l.feeRecipient,
		SetupFeePercentage: l.setupFeeBp,
		BeneficiaryCount:   len(l.beneficiaries),
	}
	for _, b := range l.beneficiaries {
		s := l.schedules[b]
		if s.Revoked {
			info.TreasuryBalance += ReleasableAmount(s, s.RevokedAt)
		} else {
			info.TreasuryBalance += s.TotalAmount - s.Released
		}
	}
	return &info
}

// cache plumbing

func (l *Ledger) cachedEntries(settings RequestSettings) []ScheduleEntry {
	if l.cache != nil {
		ctx, cancel_ctx := opCtx(settings)
		defer cancel_ctx()
		entries, err := l.cache.LoadSnapshot(ctx)
		if err == nil && entries != nil {
			return entries
		}
		if err != nil {
			log.Printf("failed to load schedule snapshot: %v", err)
		}
	}
	entries := l.Entries()
	if l.cache != nil {
		ctx, cancel_ctx := opCtx(settings)
		defer cancel_ctx()
		if err := l.cache.StoreSnapshot(ctx, entries); err != nil {
			log.Printf("failed to store schedule snapshot: %v", err)
		}
	}
	return entries
}

// refreshCacheLocked rewrites the snapshot after a mutation. Best effort: the
// ledger state is already committed, a failed snapshot only delays dashboards.
func (l *Ledger) refreshCacheLocked() {
	if l.cache == nil {
		return
	}
	ctx, cancel_ctx := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel_ctx()
	if err := l.cache.StoreSnapshot(ctx, l.entriesLocked()); err != nil {
		log.Printf("failed to refresh schedule snapshot: %v", err)
	}
}

func sliceBounds(total int, lim_req LimitRequest, settings RequestSettings) (int, int, error) {
	limit := settings.DefaultLimit
	if lim_req.Limit != nil {
		limit = int(*lim_req.Limit)
	}
	if settings.MaxLimit > 0 && limit > settings.MaxLimit {
		return 0, 0, VestingError{Code: 422, Message: fmt.Sprintf("limit is not allowed: %d > %d", limit, settings.MaxLimit)}
	}
	start := 0
	if lim_req.Offset != nil {
		start = int(*lim_req.Offset)
	}
	if start < 0 || start > total {
		start = total
	}
	end := total
	if limit > 0 && start+limit < total {
		end = start + limit
	}
	return start, end, nil
}
