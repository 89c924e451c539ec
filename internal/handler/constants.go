package handler

// Request error messages
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgAssetNotFoundError    = "Asset not found"
	ErrMsgListingNotFoundError  = "Market listing not found"
	ErrMsgInstanceNotFoundError = "You don't own that asset"
	ErrMsgQuestNotFoundError    = "Quest not found"

	ErrMsgNotEnoughFundsError  = "Not enough AMANAT"
	ErrMsgQuestNotCompleteErr  = "Quest is not complete yet"
	ErrMsgQuestAlreadyClaimed  = "Quest reward already claimed"
	ErrMsgAlreadyReferredError = "A referral code was already redeemed"
	ErrMsgSelfReferralError    = "You cannot redeem your own code"
	ErrMsgInvalidReferralError = "Invalid referral code"

	ErrMsgOnCooldownError = "Asset is still producing. Try again later"
)
