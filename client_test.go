package intenttest_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"

	"github.com/tomasbasham/intenttest"
	"github.com/tomasbasham/intenttest/mock"
	sessionspb "github.com/tomasbasham/intenttest/proto/sessions/v1"
	"github.com/tomasbasham/intenttest/testserver"
)

const abortRendering = "rpc failure: Aborted: " + mock.AbortMessage

func TestDetectOnce(t *testing.T) {
	t.Parallel()

	s := startBackend(t, mock.NewSessions())
	client := intenttest.NewClient(s.Addr())

	results, err := client.DetectOnce(context.Background(), newSession(t), queryInputs("hello", "world"))
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "hello", results["hello"].Text)
	assert.Equal(t, "world", results["world"].Text)
	assert.NotEmpty(t, results["hello"].MatchedIntent)
	assert.InDelta(t, 0.9, results["hello"].Confidence, 1e-6)
}

func TestDetectStream(t *testing.T) {
	t.Parallel()

	s := startBackend(t, mock.NewSessions())
	client := intenttest.NewClient(s.Addr())

	results, err := client.DetectStream(context.Background(), newSession(t), queryInputs("hello", "world"))
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "hello", results["hello"].Text)
	assert.Equal(t, "world", results["world"].Text)
}

func TestDetectOnce_ErrorAbortsBatch(t *testing.T) {
	t.Parallel()

	backend := &recordingSessions{Sessions: mock.NewSessions()}
	s := startBackend(t, backend)
	client := intenttest.NewClient(s.Addr())

	results, err := client.DetectOnce(context.Background(), newSession(t), queryInputs("hello", mock.ErrorTriggerText, "ignored"))
	require.Error(t, err)
	assert.Nil(t, results)

	var rpcErr *intenttest.RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, codes.Aborted, rpcErr.Code)
	assert.Equal(t, abortRendering, err.Error())

	// Fail-fast: the input after the trigger is never sent.
	assert.Equal(t, []string{"hello", mock.ErrorTriggerText}, backend.texts())
}

func TestDetectStream_Error(t *testing.T) {
	t.Parallel()

	s := startBackend(t, mock.NewSessions())
	client := intenttest.NewClient(s.Addr())

	results, err := client.DetectStream(context.Background(), newSession(t), queryInputs("hello", mock.ErrorTriggerText, "ignored"))
	require.Error(t, err)

	// All-or-error: any responses read before the failure are discarded.
	assert.Nil(t, results)

	var rpcErr *intenttest.RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, codes.Aborted, rpcErr.Code)
	assert.Equal(t, abortRendering, err.Error())
}

func TestDetectStream_OutOfOrderResponses(t *testing.T) {
	t.Parallel()

	s := startBackend(t, &reversingSessions{})
	client := intenttest.NewClient(s.Addr())

	results, err := client.DetectStream(context.Background(), newSession(t), queryInputs("hello", "world"))
	require.NoError(t, err)

	// Correlation is by echoed text, so arrival order must not matter.
	require.Len(t, results, 2)
	assert.Equal(t, "hello", results["hello"].Text)
	assert.Equal(t, "world", results["world"].Text)
}

func TestDetectStream_EarlyEndOfStream(t *testing.T) {
	t.Parallel()

	s := startBackend(t, &truncatedSessions{respond: 1})
	client := intenttest.NewClient(s.Addr())

	results, err := client.DetectStream(context.Background(), newSession(t), queryInputs("hello", "world"))
	require.NoError(t, err)

	// A clean close with fewer responses than inputs is not a failure; the
	// caller observes the shortfall in the mapping's size.
	require.Len(t, results, 1)
	assert.Equal(t, "hello", results["hello"].Text)
}

func TestDetect_Idempotent(t *testing.T) {
	t.Parallel()

	s := startBackend(t, mock.NewSessions())
	client := intenttest.NewClient(s.Addr())
	session := newSession(t)

	first, err := client.DetectOnce(context.Background(), session, queryInputs("hello", "world"))
	require.NoError(t, err)
	second, err := client.DetectOnce(context.Background(), session, queryInputs("hello", "world"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	streamed, err := client.DetectStream(context.Background(), session, queryInputs("hello", "world"))
	require.NoError(t, err)
	assert.Equal(t, first, streamed)
}

func TestDetect_DuplicateTexts(t *testing.T) {
	t.Parallel()

	s := startBackend(t, mock.NewSessions())
	client := intenttest.NewClient(s.Addr())
	session := newSession(t)

	// Duplicate input texts collapse to one entry, last write wins.
	results, err := client.DetectOnce(context.Background(), session, queryInputs("hello", "hello"))
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = client.DetectStream(context.Background(), session, queryInputs("hello", "hello"))
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

// startBackend serves the given sessions implementation on a local TCP
// port and verifies the preflight probe sees it before any scenario runs.
func startBackend(t *testing.T, backend sessionspb.SessionsServer) *testserver.Server {
	t.Helper()

	s, err := testserver.NewServer()
	require.NoError(t, err)
	s.CloseOnCleanup(t)

	sessionspb.RegisterSessionsServer(s, backend)
	s.Serve()

	require.NoError(t, intenttest.CheckEndpoint("127.0.0.1", s.Port()))
	return s
}

func newSession(t *testing.T) intenttest.SessionName {
	t.Helper()

	name, err := intenttest.NewSessionName("traffic-parrot-example", "us-central1", "ef28899e-5401-465e-9352-2efc8a8ebef9", intenttest.GenerateSessionID())
	require.NoError(t, err)
	return name
}

func queryInputs(texts ...string) []intenttest.QueryInput {
	inputs := make([]intenttest.QueryInput, 0, len(texts))
	for _, text := range texts {
		inputs = append(inputs, intenttest.QueryInput{Text: text, LanguageCode: "en-us"})
	}
	return inputs
}

// recordingSessions notes every unary query text before delegating to the
// mock, so tests can assert which inputs reached the backend.
type recordingSessions struct {
	*mock.Sessions

	mu   sync.Mutex
	seen []string
}

func (r *recordingSessions) DetectIntent(ctx context.Context, req *sessionspb.DetectIntentRequest) (*sessionspb.DetectIntentResponse, error) {
	r.mu.Lock()
	r.seen = append(r.seen, req.GetQueryInput().GetText().GetText())
	r.mu.Unlock()
	return r.Sessions.DetectIntent(ctx, req)
}

func (r *recordingSessions) texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seen...)
}

// reversingSessions buffers the whole batch and replies in reverse order,
// exercising the text-based response correlation.
type reversingSessions struct {
	sessionspb.UnimplementedSessionsServer
}

func (*reversingSessions) StreamingDetectIntent(stream grpc.BidiStreamingServer[sessionspb.StreamingDetectIntentRequest, sessionspb.StreamingDetectIntentResponse]) error {
	var pending []*sessionspb.QueryInput
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		pending = append(pending, req.GetQueryInput())
	}

	for i := len(pending) - 1; i >= 0; i-- {
		if err := stream.Send(echoResponse(pending[i])); err != nil {
			return err
		}
	}
	return nil
}

// truncatedSessions answers only the first respond requests and then
// closes the stream cleanly.
type truncatedSessions struct {
	sessionspb.UnimplementedSessionsServer

	respond int
}

func (s *truncatedSessions) StreamingDetectIntent(stream grpc.BidiStreamingServer[sessionspb.StreamingDetectIntentRequest, sessionspb.StreamingDetectIntentResponse]) error {
	sent := 0
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if sent >= s.respond {
			continue
		}
		sent++
		if err := stream.Send(echoResponse(req.GetQueryInput())); err != nil {
			return err
		}
	}
}

func echoResponse(input *sessionspb.QueryInput) *sessionspb.StreamingDetectIntentResponse {
	return &sessionspb.StreamingDetectIntentResponse{
		DetectIntentResponse: &sessionspb.DetectIntentResponse{
			QueryResult: &sessionspb.QueryResult{
				Text:         input.GetText().GetText(),
				LanguageCode: input.GetLanguageCode(),
			},
		},
	}
}
