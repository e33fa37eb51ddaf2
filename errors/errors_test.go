package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"turn state", ErrInvalidTurnState, CodeInvalidTurnState},
		{"wrapped speaker", fmt.Errorf("release: %w", ErrNotCurrentSpeaker), CodeNotCurrentSpeaker},
		{"audio", ErrNotAuthorizedToSpeak, CodeNotAuthorizedToSpeak},
		{"membership", ErrNotMember, CodeNotMember},
		{"rate", ErrRateLimited, CodeRateLimited},
		{"unknown", stderrors.New("disk on fire"), CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToCode(tt.err))
		})
	}
}

func TestIsRejection(t *testing.T) {
	req := require.New(t)
	req.True(IsRejection(fmt.Errorf("raise hand: %w", ErrInvalidTurnState)))
	req.False(IsRejection(stderrors.New("badger closed")))
	req.False(IsRejection(nil))
}
