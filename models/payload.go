package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PayloadVersion is the only approval payload version this build understands.
const PayloadVersion = 1

var validate = validator.New()

// ApprovalPayload is the {user, team} pair carried through the opaque value
// of the admin message's Accept/Decline buttons. It is the sole correlation
// mechanism between a team selection and the admin's decision, so it must
// round-trip byte-exact through Slack.
type ApprovalPayload struct {
	Version int    `json:"v" validate:"required"`
	UserID  string `json:"user" validate:"required"`
	TeamID  string `json:"team" validate:"required"`
}

// NewApprovalPayload builds a current-version payload.
func NewApprovalPayload(userID, teamID string) ApprovalPayload {
	return ApprovalPayload{Version: PayloadVersion, UserID: userID, TeamID: teamID}
}

// Encode serializes the payload for a button value.
func (p ApprovalPayload) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeApprovalPayload parses a button value back into an ApprovalPayload.
// Malformed JSON, missing fields and unknown versions are all rejected here
// so handlers never act on a payload they cannot trust.
func DecodeApprovalPayload(value string) (ApprovalPayload, error) {
	var p ApprovalPayload
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		return ApprovalPayload{}, fmt.Errorf("malformed approval payload: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return ApprovalPayload{}, fmt.Errorf("incomplete approval payload: %w", err)
	}
	if p.Version != PayloadVersion {
		return ApprovalPayload{}, fmt.Errorf("unsupported approval payload version %d", p.Version)
	}
	return p, nil
}
