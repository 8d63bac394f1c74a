// Package mock provides an in-process reference implementation of the
// sessions service.
//
// The mock echoes each query text into its result with a deterministic
// intent match, so repeated batches against it yield identical mappings.
// One input value is reserved: sending [ErrorTriggerText] makes the mock
// abort processing, which exercises the harness's error path end-to-end.
package mock

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sessionspb "github.com/tomasbasham/intenttest/proto/sessions/v1"
)

// ErrorTriggerText is the reserved query text that makes the mock respond
// with an ABORTED status instead of a result. It is a protocol convention
// of the mock, documented here rather than hidden in its handlers.
const ErrorTriggerText = "request-error"

// AbortMessage is the status message attached to the deliberate abort.
const AbortMessage = "deliberate failure requested"

// matchConfidence is the fixed confidence reported for every match.
const matchConfidence = 0.9

// Sessions implements sessionspb.SessionsServer.
type Sessions struct {
	sessionspb.UnimplementedSessionsServer
}

// NewSessions returns a mock sessions service.
func NewSessions() *Sessions {
	return &Sessions{}
}

// DetectIntent echoes the query text into a result, or aborts when the
// reserved error trigger is received.
func (s *Sessions) DetectIntent(ctx context.Context, req *sessionspb.DetectIntentRequest) (*sessionspb.DetectIntentResponse, error) {
	text := req.GetQueryInput().GetText().GetText()
	logrus.Debugf("detect intent: session=%s text=%q", req.GetSession(), text)

	if text == ErrorTriggerText {
		return nil, status.Error(codes.Aborted, AbortMessage)
	}

	return &sessionspb.DetectIntentResponse{
		QueryResult: queryResult(req.GetQueryInput()),
	}, nil
}

// StreamingDetectIntent responds to each request as it arrives; it never
// withholds responses until end-of-input, so clients that send their whole
// batch before reading do not deadlock. Receiving the reserved error
// trigger aborts the stream.
func (s *Sessions) StreamingDetectIntent(stream grpc.BidiStreamingServer[sessionspb.StreamingDetectIntentRequest, sessionspb.StreamingDetectIntentResponse]) error {
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		text := req.GetQueryInput().GetText().GetText()
		logrus.Debugf("streaming detect intent: session=%s text=%q", req.GetSession(), text)

		if text == ErrorTriggerText {
			return status.Error(codes.Aborted, AbortMessage)
		}

		resp := &sessionspb.StreamingDetectIntentResponse{
			DetectIntentResponse: &sessionspb.DetectIntentResponse{
				QueryResult: queryResult(req.GetQueryInput()),
			},
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

func queryResult(input *sessionspb.QueryInput) *sessionspb.QueryResult {
	text := input.GetText().GetText()
	slug := strings.ReplaceAll(strings.ToLower(text), " ", "-")

	return &sessionspb.QueryResult{
		Text:         text,
		LanguageCode: input.GetLanguageCode(),
		Match: &sessionspb.Match{
			Intent: &sessionspb.Intent{
				Name:        "intents/" + slug,
				DisplayName: slug,
			},
			Confidence: matchConfidence,
		},
	}
}
