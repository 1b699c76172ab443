package errors

import "errors"

var (
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrReportNotFound         = errors.New("report not found")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	ErrIdempotencyConflict    = errors.New("idempotency key conflict")
)
