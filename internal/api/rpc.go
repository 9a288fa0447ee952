package api

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/yourusername/tienlen-rules/internal/tienlen"
)

const (
	// RpcValidateTurn judges a (previous, current) pair of plays.
	RpcValidateTurn = "tienlen_validate_turn"
	// RpcClassifyHand classifies a five-card hand.
	RpcClassifyHand = "tienlen_classify_hand"
)

const (
	codeInvalidArgument = 3
	codeInternal        = 13
)

type validateTurnRequest struct {
	Previous []string `json:"previous"`
	Current  []string `json:"current"`
	// TriplesEnabled overrides the configured table rule for this call when set.
	TriplesEnabled *bool `json:"triples_enabled"`
}

type classifyHandRequest struct {
	Hand []string `json:"hand"`
}

// RPC serves the rules engine over Nakama RPCs.
type RPC struct {
	opts tienlen.Options
}

func NewRPC(opts tienlen.Options) *RPC {
	return &RPC{opts: opts}
}

// Register wires every RPC into the Nakama initializer.
func (r *RPC) Register(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcValidateTurn, r.ValidateTurn); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcClassifyHand, r.ClassifyHand)
}

// ValidateTurn decides whether "current" may be played on "previous".
// An empty or missing "previous" marks the opening play of a round.
//
// Payload: {"previous": ["3D"], "current": ["4D"], "triples_enabled": true}
// Returns: {"eval_id": "...", "valid": true, "rule": "single"}, plus "classification"
// when the current play is a classified five-card hand.
func (r *RPC) ValidateTurn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	evalID := uuid.NewString()
	logger = logger.WithField("eval_id", evalID)
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req validateTurnRequest
	if err := decodePayload(payload, &req); err != nil {
		logger.Warn("ValidateTurn [User:%s]: bad payload: %v", userID, err)
		return "", runtime.NewError("invalid payload", codeInvalidArgument)
	}
	previous, err := tienlen.ParseCards(req.Previous)
	if err != nil {
		logger.Warn("ValidateTurn [User:%s]: bad previous play: %v", userID, err)
		return "", runtime.NewError("invalid previous play: "+err.Error(), codeInvalidArgument)
	}
	current, err := tienlen.ParseCards(req.Current)
	if err != nil {
		logger.Warn("ValidateTurn [User:%s]: bad current play: %v", userID, err)
		return "", runtime.NewError("invalid current play: "+err.Error(), codeInvalidArgument)
	}
	if len(current) == 0 {
		return "", runtime.NewError("current play is empty", codeInvalidArgument)
	}

	opts := r.opts
	if req.TriplesEnabled != nil {
		opts.TriplesEnabled = *req.TriplesEnabled
	}

	verdict := tienlen.Judge(previous, current, opts)
	logger.Debug("ValidateTurn [User:%s]: %v on %v -> valid=%v rule=%s", userID, current, previous, verdict.Valid, verdict.Rule)

	resp := map[string]interface{}{
		"eval_id": evalID,
		"valid":   verdict.Valid,
		"rule":    verdict.Rule.String(),
	}
	if len(current) == 5 {
		if c, ok, _ := opts.ClassifyFiveCardHand(current); ok {
			resp["classification"] = classificationFields(c)
		}
	}

	out, err := encodeResponse(resp)
	if err != nil {
		logger.Error("ValidateTurn [User:%s]: %v", userID, err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	return out, nil
}

// ClassifyHand returns the category and tie-break card of a five-card hand.
//
// Payload: {"hand": ["10D", "11D", "12D", "13D", "1D"]}
// Returns: {"eval_id": "...", "classified": true, "rank": "ROYAL_STRAIGHT_FLUSH", "strength": 7, "tie_break": "1D"}
func (r *RPC) ClassifyHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	evalID := uuid.NewString()
	logger = logger.WithField("eval_id", evalID)
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req classifyHandRequest
	if err := decodePayload(payload, &req); err != nil {
		logger.Warn("ClassifyHand [User:%s]: bad payload: %v", userID, err)
		return "", runtime.NewError("invalid payload", codeInvalidArgument)
	}
	hand, err := tienlen.ParseCards(req.Hand)
	if err != nil {
		logger.Warn("ClassifyHand [User:%s]: bad hand: %v", userID, err)
		return "", runtime.NewError("invalid hand: "+err.Error(), codeInvalidArgument)
	}

	c, ok, err := r.opts.ClassifyFiveCardHand(hand)
	if errors.Is(err, tienlen.ErrUnsupportedHandSize) {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	if err != nil {
		logger.Error("ClassifyHand [User:%s]: %v", userID, err)
		return "", runtime.NewError("internal error", codeInternal)
	}

	resp := map[string]interface{}{
		"eval_id":    evalID,
		"classified": ok,
	}
	if ok {
		for k, v := range classificationFields(c) {
			resp[k] = v
		}
	}

	out, err := encodeResponse(resp)
	if err != nil {
		logger.Error("ClassifyHand [User:%s]: %v", userID, err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	return out, nil
}
