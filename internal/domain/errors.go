package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgAssetNotFound   = "asset definition not found"
	ErrMsgListingNotFound = "market listing not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Collection errors
	ErrMsgAssetInstanceNotFound = "asset instance not found"
	ErrMsgOnCooldown            = "income not ready"

	// Quest errors
	ErrMsgQuestNotFound     = "quest not found"
	ErrMsgQuestNotComplete  = "quest not complete"
	ErrMsgQuestAlreadyDone  = "quest already claimed"

	// Referral errors
	ErrMsgAlreadyReferred    = "referral already redeemed"
	ErrMsgSelfReferral       = "cannot redeem own referral code"
	ErrMsgInvalidReferral    = "invalid referral code"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
//
// Rejected actions leave the game state untouched; the sentinel error is the
// feedback signal for the dispatch surface, not a partial-application marker.
var (
	// Catalog errors
	ErrAssetNotFound   = errors.New(ErrMsgAssetNotFound)
	ErrListingNotFound = errors.New(ErrMsgListingNotFound)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Collection errors
	ErrAssetInstanceNotFound = errors.New(ErrMsgAssetInstanceNotFound)
	ErrOnCooldown            = errors.New(ErrMsgOnCooldown)

	// Quest errors
	ErrQuestNotFound       = errors.New(ErrMsgQuestNotFound)
	ErrQuestNotComplete    = errors.New(ErrMsgQuestNotComplete)
	ErrQuestAlreadyClaimed = errors.New(ErrMsgQuestAlreadyDone)

	// Referral errors
	ErrAlreadyReferred = errors.New(ErrMsgAlreadyReferred)
	ErrSelfReferral    = errors.New(ErrMsgSelfReferral)
	ErrInvalidReferral = errors.New(ErrMsgInvalidReferral)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
