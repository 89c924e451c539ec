package handler

import (
	"net/http"

	"github.com/steppeworks/CryptoAul_Go/internal/game"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// BuyAssetRequest represents a shop purchase request
type BuyAssetRequest struct {
	DefID string `json:"defId" validate:"required,max=64"`
}

// BuyListingRequest represents a market purchase request
type BuyListingRequest struct {
	ListingID string `json:"listingId" validate:"required,max=64"`
}

// CollectIncomeRequest represents an income collection request
type CollectIncomeRequest struct {
	InstanceID string `json:"instanceId" validate:"required,max=64"`
}

// ClaimQuestRequest represents a quest claim request
type ClaimQuestRequest struct {
	QuestID string `json:"questId" validate:"required,max=64"`
}

// RedeemReferralRequest represents a referral redemption request
type RedeemReferralRequest struct {
	Code string `json:"code" validate:"required,min=3,max=64"`
}

// GameHandler handles game state HTTP requests
type GameHandler struct {
	gameSvc game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameSvc game.Service) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

// GetState handles the state endpoint
// @Summary Get the current game state
// @Description Returns the full save: balance, inventory, stats, quests, achievements and referral info
// @Tags game
// @Produce json
// @Success 200 {object} domain.GameState
// @Router /state [get]
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.gameSvc.State(r.Context()))
}

// BuyAsset handles shop purchases
// @Summary Buy an asset from the shop
// @Description Purchases an asset at catalog price and places it on the field
// @Tags game
// @Accept json
// @Produce json
// @Param request body BuyAssetRequest true "Purchase request"
// @Success 200 {object} domain.GameState "Updated state"
// @Failure 400 {object} ErrorResponse "Invalid request or insufficient funds"
// @Failure 404 {object} ErrorResponse "Unknown asset"
// @Router /assets/buy [post]
func (h *GameHandler) BuyAsset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuyAssetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy asset"); err != nil {
		return
	}

	state, err := h.gameSvc.BuyAsset(r.Context(), req.DefID)
	if err != nil {
		respondServiceError(w, "Buy asset", err)
		return
	}

	log.Info("Asset purchased", "def_id", req.DefID, "balance", state.Balance)
	respondJSON(w, http.StatusOK, state)
}

// BuyListing handles market purchases
// @Summary Buy an asset through a market listing
// @Description Purchases the listed asset at the listing price
// @Tags market
// @Accept json
// @Produce json
// @Param request body BuyListingRequest true "Purchase request"
// @Success 200 {object} domain.GameState "Updated state"
// @Failure 400 {object} ErrorResponse "Invalid request or insufficient funds"
// @Failure 404 {object} ErrorResponse "Unknown listing"
// @Router /market/buy [post]
func (h *GameHandler) BuyListing(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuyListingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy listing"); err != nil {
		return
	}

	state, err := h.gameSvc.BuyListing(r.Context(), req.ListingID)
	if err != nil {
		respondServiceError(w, "Buy listing", err)
		return
	}

	log.Info("Listing purchased", "listing_id", req.ListingID, "balance", state.Balance)
	respondJSON(w, http.StatusOK, state)
}

// CollectIncome handles income collection
// @Summary Collect income from an owned asset
// @Description Harvests an asset whose income interval has elapsed
// @Tags game
// @Accept json
// @Produce json
// @Param request body CollectIncomeRequest true "Collection request"
// @Success 200 {object} game.CollectResult "Amount collected and updated state"
// @Failure 404 {object} ErrorResponse "Unknown instance"
// @Failure 429 {object} ErrorResponse "Asset still on cooldown"
// @Router /assets/collect [post]
func (h *GameHandler) CollectIncome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CollectIncomeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Collect income"); err != nil {
		return
	}

	result, err := h.gameSvc.CollectIncome(r.Context(), req.InstanceID)
	if err != nil {
		respondServiceError(w, "Collect income", err)
		return
	}

	log.Info("Income collected", "instance_id", req.InstanceID, "amount", result.Amount)
	respondJSON(w, http.StatusOK, result)
}

// ClaimQuest handles quest reward claims
// @Summary Claim a completed quest's reward
// @Tags quests
// @Accept json
// @Produce json
// @Param request body ClaimQuestRequest true "Claim request"
// @Success 200 {object} domain.GameState "Updated state"
// @Failure 400 {object} ErrorResponse "Quest not complete or already claimed"
// @Failure 404 {object} ErrorResponse "Unknown quest"
// @Router /quests/claim [post]
func (h *GameHandler) ClaimQuest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ClaimQuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim quest"); err != nil {
		return
	}

	state, err := h.gameSvc.ClaimQuest(r.Context(), req.QuestID)
	if err != nil {
		respondServiceError(w, "Claim quest", err)
		return
	}

	log.Info("Quest claimed", "quest_id", req.QuestID)
	respondJSON(w, http.StatusOK, state)
}

// Deposit handles simulated deposits
// @Summary Make a simulated deposit
// @Description Credits the fixed deposit amount to the balance
// @Tags wallet
// @Produce json
// @Success 200 {object} domain.GameState "Updated state"
// @Router /wallet/deposit [post]
func (h *GameHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameSvc.Deposit(r.Context())
	if err != nil {
		respondServiceError(w, "Deposit", err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// RedeemReferral handles referral code redemption
// @Summary Redeem another player's referral code
// @Tags referrals
// @Accept json
// @Produce json
// @Param request body RedeemReferralRequest true "Redemption request"
// @Success 200 {object} domain.GameState "Updated state"
// @Failure 400 {object} ErrorResponse "Already referred, own code or invalid code"
// @Router /referrals/redeem [post]
func (h *GameHandler) RedeemReferral(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RedeemReferralRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Redeem referral"); err != nil {
		return
	}

	state, err := h.gameSvc.RedeemReferral(r.Context(), req.Code)
	if err != nil {
		respondServiceError(w, "Redeem referral", err)
		return
	}

	log.Info("Referral redeemed", "code", req.Code)
	respondJSON(w, http.StatusOK, state)
}

// SimulateReferralJoin handles simulated referral joins
// @Summary Simulate a friend joining through this save's referral code
// @Tags referrals
// @Produce json
// @Success 200 {object} domain.GameState "Updated state"
// @Router /referrals/simulate [post]
func (h *GameHandler) SimulateReferralJoin(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameSvc.SimulateReferralJoin(r.Context())
	if err != nil {
		respondServiceError(w, "Simulate referral join", err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}
