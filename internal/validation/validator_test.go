package validation_test

import (
	"testing"

	domainerrors "github.com/fitfi/fitfi-server/internal/errors"
	"github.com/fitfi/fitfi-server/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedbackRequest struct {
	UserID    string `json:"user_id" validate:"required_without=SessionID"`
	SessionID string `json:"session_id" validate:"required_without=UserID"`
	OutfitID  string `json:"outfit_id" validate:"required"`
	Reaction  string `json:"reaction" validate:"required,oneof=spot_on not_for_me maybe"`
	TimeMs    int    `json:"response_time_ms" validate:"gte=0"`
}

func TestValidate_Valid(t *testing.T) {
	v := validation.New()

	err := v.Validate(feedbackRequest{
		UserID:   "user-1",
		OutfitID: "outfit-1",
		Reaction: "spot_on",
		TimeMs:   1200,
	})
	assert.NoError(t, err)
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	v := validation.New()

	err := v.Validate(feedbackRequest{
		Reaction: "love_it",
		TimeMs:   -5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	details := domainErr.Details

	// JSON tag names, not Go field names.
	assert.Contains(t, details, "outfit_id")
	assert.Contains(t, details, "reaction")
	assert.Contains(t, details, "response_time_ms")
	assert.Equal(t, "must be one of: spot_on not_for_me maybe", details["reaction"])
}

func TestValidate_RequiredWithout(t *testing.T) {
	v := validation.New()

	// Session-only identity is fine.
	err := v.Validate(feedbackRequest{
		SessionID: "sess-1",
		OutfitID:  "outfit-1",
		Reaction:  "maybe",
	})
	assert.NoError(t, err)

	// Neither user nor session fails on both fields.
	err = v.Validate(feedbackRequest{
		OutfitID: "outfit-1",
		Reaction: "maybe",
	})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details
	assert.Contains(t, details, "user_id")
	assert.Contains(t, details, "session_id")
}
