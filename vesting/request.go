package vesting

import (
	"time"
)

// settings
type RequestSettings struct {
	Timeout      time.Duration
	DefaultLimit int
	MaxLimit     int
}

// requests
type ScheduleRequest struct {
	Beneficiary []AccountAddress `query:"beneficiary"`
	Status      []ScheduleStatus `query:"status"`
}

type EventsRequest struct {
	Beneficiary []AccountAddress `query:"beneficiary"`
	EventType   []string         `query:"event_type"`
	StartUtime  *UtimeType       `query:"start_utime"`
	EndUtime    *UtimeType       `query:"end_utime"`
}

type BeneficiaryAtRequest struct {
	Index *int32 `query:"index"`
}

type SortType string

const (
	DESC SortType = "desc"
	ASC  SortType = "asc"
)

type LimitRequest struct {
	Limit  *int32    `query:"limit"`
	Offset *int32    `query:"offset"`
	Sort   *SortType `query:"sort"`
}

// mutation bodies
type CreateScheduleRequest struct {
	Beneficiary AccountAddress `json:"beneficiary"`
	GrossAmount uint64         `json:"gross_amount,string"`
	StartTime   uint64         `json:"start_time"`
	Duration    uint64         `json:"duration"`
	Cliff       uint64         `json:"cliff"`
	Revocable   bool           `json:"revocable"`
	SentValue   uint64         `json:"sent_value,string"`
} // @name CreateScheduleRequest

type RevokeScheduleRequest struct {
	Beneficiary AccountAddress `json:"beneficiary"`
} // @name RevokeScheduleRequest

type UpdateFeePercentageRequest struct {
	FeePercentage uint64 `json:"fee_percentage"`
} // @name UpdateFeePercentageRequest

type UpdateFeeRecipientRequest struct {
	FeeRecipient AccountAddress `json:"fee_recipient"`
} // @name UpdateFeeRecipientRequest
