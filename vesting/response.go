package vesting

// responses
type SchedulesResponse struct {
	Schedules []ScheduleRow `json:"schedules"`
} // @name SchedulesResponse

type BeneficiariesResponse struct {
	Beneficiaries []AccountAddress `json:"beneficiaries"`
	Total         int              `json:"total"`
} // @name BeneficiariesResponse

type BeneficiaryResponse struct {
	Beneficiary AccountAddress `json:"beneficiary"`
	Index       int32          `json:"index"`
} // @name BeneficiaryResponse

type CreateScheduleResponse struct {
	Event    *ScheduleCreatedEvent `json:"event"`
	Schedule ScheduleRow           `json:"schedule"`
} // @name CreateScheduleResponse

type ReleaseResponse struct {
	Event    *TokensReleasedEvent `json:"event"`
	Schedule ScheduleRow          `json:"schedule"`
} // @name ReleaseResponse

type RevokeResponse struct {
	Event    *ScheduleRevokedEvent `json:"event"`
	Schedule ScheduleRow           `json:"schedule"`
} // @name RevokeResponse

type UpdateFeePercentageResponse struct {
	Event *FeePercentageUpdatedEvent `json:"event"`
} // @name UpdateFeePercentageResponse

type UpdateFeeRecipientResponse struct {
	Event *FeeRecipientUpdatedEvent `json:"event"`
} // @name UpdateFeeRecipientResponse

type EventsResponse struct {
	Events []EventRecord `json:"events"`
} // @name EventsResponse
