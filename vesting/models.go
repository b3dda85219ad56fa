package vesting

type AccountAddress string
type UtimeType uint64

type ScheduleStatus string

const (
	StatusPending   ScheduleStatus = "pending"
	StatusActive    ScheduleStatus = "active"
	StatusCompleted ScheduleStatus = "completed"
	StatusRevoked   ScheduleStatus = "revoked"
)

// errors
type ErrorKind string

const (
	ErrInvalidBeneficiary ErrorKind = "invalid_beneficiary"
	ErrInvalidAmount      ErrorKind = "invalid_amount"
	ErrInvalidDuration    ErrorKind = "invalid_duration"
	ErrInvalidCliff       ErrorKind = "invalid_cliff"
	ErrDuplicateSchedule  ErrorKind = "duplicate_schedule"
	ErrInsufficientFunds  ErrorKind = "insufficient_funds"
	ErrNoSchedule         ErrorKind = "no_schedule"
	ErrNothingReleasable  ErrorKind = "nothing_releasable"
	ErrNotRevocable       ErrorKind = "not_revocable"
	ErrFeeTooHigh         ErrorKind = "fee_too_high"
	ErrInvalidAddress     ErrorKind = "invalid_address"
	ErrIndexOutOfBounds   ErrorKind = "index_out_of_bounds"
	ErrUnauthorized       ErrorKind = "unauthorized"
)

type VestingError struct {
	Code    int       `json:"-"`
	Kind    ErrorKind `json:"kind,omitempty"`
	Message string    `json:"error"`
}

func (e VestingError) Error() string {
	return e.Message
}

// models
type VestingSchedule struct {
	Initialized bool   `json:"initialized" msgpack:"initialized"`
	Revocable   bool   `json:"revocable" msgpack:"revocable"`
	TotalAmount uint64 `json:"total_amount,string" msgpack:"total_amount"`
	StartTime   uint64 `json:"start_time" msgpack:"start_time"`
	Duration    uint64 `json:"duration" msgpack:"duration"`
	Cliff       uint64 `json:"cliff" msgpack:"cliff"`
	Released    uint64 `json:"released,string" msgpack:"released"`
	Revoked     bool   `json:"revoked" msgpack:"revoked"`
	RevokedAt   uint64 `json:"revoked_at,omitempty" msgpack:"revoked_at"`
} // @name VestingSchedule

type ScheduleEntry struct {
	Beneficiary AccountAddress  `json:"beneficiary" msgpack:"beneficiary"`
	Schedule    VestingSchedule `json:"schedule" msgpack:"schedule"`
} // @name ScheduleEntry

// ScheduleRow is a schedule together with the amounts derived from the clock.
type ScheduleRow struct {
	Beneficiary      AccountAddress  `json:"beneficiary"`
	Schedule         VestingSchedule `json:"schedule"`
	VestedAmount     uint64          `json:"vested_amount,string"`
	ReleasableAmount uint64          `json:"releasable_amount,string"`
	Progress         int             `json:"progress"`
	Status           ScheduleStatus  `json:"status"`
	NextReleaseDate  *uint64         `json:"next_release_date"`
} // @name ScheduleRow

type VestingStats struct {
	TotalVested      uint64  `json:"total_vested,string"`
	TotalReleased    uint64  `json:"total_released,string"`
	TotalReleasable  uint64  `json:"total_releasable,string"`
	PendingCount     int     `json:"pending_count"`
	ActiveCount      int     `json:"active_count"`
	CompletedCount   int     `json:"completed_count"`
	RevokedCount     int     `json:"revoked_count"`
	NextReleaseDate  *uint64 `json:"next_release_date"`
	BeneficiaryCount int     `json:"beneficiary_count"`
} // @name VestingStats

type VestingInfo struct {
	Owner              AccountAddress `json:"owner"`
	FeeRecipient       AccountAddress `json:"fee_recipient"`
	SetupFeePercentage uint64         `json:"setup_fee_percentage"`
	BeneficiaryCount   int            `json:"beneficiary_count"`
	TreasuryBalance    uint64         `json:"treasury_balance,string"`
} // @name VestingInfo

// events
const (
	EventScheduleCreated     = "schedule_created"
	EventTokensReleased      = "tokens_released"
	EventScheduleRevoked     = "schedule_revoked"
	EventFeePercentageUpdate = "fee_percentage_updated"
	EventFeeRecipientUpdate  = "fee_recipient_updated"
)

type ScheduleCreatedEvent struct {
	Beneficiary AccountAddress `json:"beneficiary"`
	TotalAmount uint64         `json:"total_amount,string"`
	StartTime   uint64         `json:"start_time"`
	Duration    uint64         `json:"duration"`
	Cliff       uint64         `json:"cliff"`
} // @name ScheduleCreatedEvent

type TokensReleasedEvent struct {
	Beneficiary AccountAddress `json:"beneficiary"`
	Amount      uint64         `json:"amount,string"`
} // @name TokensReleasedEvent

type ScheduleRevokedEvent struct {
	Beneficiary AccountAddress `json:"beneficiary"`
} // @name ScheduleRevokedEvent

type FeePercentageUpdatedEvent struct {
	FeePercentage uint64 `json:"fee_percentage"`
} // @name FeePercentageUpdatedEvent

type FeeRecipientUpdatedEvent struct {
	FeeRecipient AccountAddress `json:"fee_recipient"`
} // @name FeeRecipientUpdatedEvent

// EventRecord is a persisted row of the activity feed.
type EventRecord struct {
	Id          int64          `json:"id"`
	Utime       uint64         `json:"utime"`
	Type        string         `json:"type"`
	Beneficiary AccountAddress `json:"beneficiary"`
	Amount      *uint64        `json:"amount,omitempty"`
	StartTime   *uint64        `json:"start_time,omitempty"`
	Duration    *uint64        `json:"duration,omitempty"`
	Cliff       *uint64        `json:"cliff,omitempty"`
} // @name EventRecord
