package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrInvalidTurnState     = fmt.Errorf("turn action violates the channel state")
	ErrNotCurrentSpeaker    = fmt.Errorf("participant is not the current speaker")
	ErrNotAuthorizedToSpeak = fmt.Errorf("participant does not hold the floor")
	ErrNotMember            = fmt.Errorf("participant is not a member of the channel")
	ErrChannelNotFound      = fmt.Errorf("channel not found")
	ErrInvalidPassword      = fmt.Errorf("invalid channel password")
	ErrInvalidPayload       = fmt.Errorf("invalid payload")
	ErrUnknownEvent         = fmt.Errorf("unknown event")
	ErrRateLimited          = fmt.Errorf("rate limit exceeded")
	ErrBackpressure         = fmt.Errorf("outbound buffer full")
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrEmptyWords           = fmt.Errorf("no words have been found")
)

// Code is the stable identifier sent to clients alongside a rejection.
type Code string

const (
	CodeInvalidTurnState     Code = "INVALID_TURN_STATE"
	CodeNotCurrentSpeaker    Code = "NOT_CURRENT_SPEAKER"
	CodeNotAuthorizedToSpeak Code = "NOT_AUTHORIZED_TO_SPEAK"
	CodeNotMember            Code = "NOT_MEMBER"
	CodeChannelNotFound      Code = "CHANNEL_NOT_FOUND"
	CodeInvalidPassword      Code = "INVALID_PASSWORD"
	CodeInvalidPayload       Code = "INVALID_PAYLOAD"
	CodeUnknownEvent         Code = "UNKNOWN_EVENT"
	CodeRateLimited          Code = "RATE_LIMITED"
	CodeBackpressure         Code = "BACKPRESSURE"
	CodeInternal             Code = "INTERNAL"
)

var codes = []struct {
	err  error
	code Code
}{
	{ErrInvalidTurnState, CodeInvalidTurnState},
	{ErrNotCurrentSpeaker, CodeNotCurrentSpeaker},
	{ErrNotAuthorizedToSpeak, CodeNotAuthorizedToSpeak},
	{ErrNotMember, CodeNotMember},
	{ErrChannelNotFound, CodeChannelNotFound},
	{ErrInvalidPassword, CodeInvalidPassword},
	{ErrInvalidPayload, CodeInvalidPayload},
	{ErrUnknownEvent, CodeUnknownEvent},
	{ErrRateLimited, CodeRateLimited},
	{ErrBackpressure, CodeBackpressure},
}

// ToCode maps an error, wrapped or not, to its wire code.
// Anything outside the taxonomy is reported as INTERNAL.
func ToCode(err error) Code {
	for _, c := range codes {
		if stderrors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// IsRejection reports whether err is a recoverable rejection of a client request,
// as opposed to an infrastructure failure.
func IsRejection(err error) bool {
	return err != nil && ToCode(err) != CodeInternal
}
