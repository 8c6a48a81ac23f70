package engagement

import "errors"

// ErrAssignmentNotFound ...
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrCampaignNotFound ...
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrStepNotFound ...
var ErrStepNotFound = errors.New("campaign step not found")

// ErrUserNotFound ...
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidAnswer when the answer is not in the choice set of the current step
var ErrInvalidAnswer = errors.New("invalid answer")

// ErrInvalidResponse when the response kind does not fit the card type
var ErrInvalidResponse = errors.New("invalid response")

// ErrInvalidRewardRule ...
var ErrInvalidRewardRule = errors.New("invalid reward rule")

// ErrAssignmentTerminal ...
var ErrAssignmentTerminal = errors.New("assignment already terminal")

// ErrPreconditionFailed when the assignment changed status concurrently
var ErrPreconditionFailed = errors.New("assignment status precondition failed")

// ErrNotDeliverable when the assignment is not pending and not eligible for resend
var ErrNotDeliverable = errors.New("assignment not deliverable")

// ErrOfferExpired ...
var ErrOfferExpired = errors.New("offer expired")

// ErrCampaignEnded ...
var ErrCampaignEnded = errors.New("campaign ended")

// ErrRenderFailed ...
var ErrRenderFailed = errors.New("render template failed")

// ErrDispatchFailed ...
var ErrDispatchFailed = errors.New("dispatch failed")

// ErrLedgerFailed ...
var ErrLedgerFailed = errors.New("ledger issue failed")

func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidationError is surfaced synchronously to the caller
func IsValidationError(err error) bool {
	return isAny(err,
		ErrAssignmentNotFound, ErrCampaignNotFound, ErrStepNotFound, ErrUserNotFound,
		ErrInvalidAnswer, ErrInvalidResponse, ErrInvalidRewardRule,
	)
}

// IsNotFound ...
func IsNotFound(err error) bool {
	return isAny(err, ErrAssignmentNotFound, ErrCampaignNotFound, ErrStepNotFound, ErrUserNotFound)
}

// IsPreconditionFailure is expected under concurrency, the next sweep re-evaluates
func IsPreconditionFailure(err error) bool {
	return isAny(err,
		ErrPreconditionFailed, ErrAssignmentTerminal, ErrNotDeliverable,
		ErrOfferExpired, ErrCampaignEnded,
	)
}

// IsCollaboratorFailure ...
func IsCollaboratorFailure(err error) bool {
	return isAny(err, ErrRenderFailed, ErrDispatchFailed, ErrLedgerFailed)
}
