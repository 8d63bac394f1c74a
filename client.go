package intenttest

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	sessionspb "github.com/tomasbasham/intenttest/proto/sessions/v1"
)

// QueryInput is one utterance submitted for detection.
type QueryInput struct {
	Text         string
	LanguageCode string
}

// QueryResult is the backend's detection outcome for one input. Text
// echoes the resolved query text and is the correlation key for streamed
// responses.
type QueryResult struct {
	Text          string
	MatchedIntent string
	Confidence    float32
}

// Client performs intent detection against a single target endpoint.
//
// The client holds configuration only; each operation opens its own
// connection and releases it before returning, so operations are isolated
// from one another and a Client may be reused across test cases.
type Client struct {
	target    string
	creds     credentials.TransportCredentials
	callCreds credentials.PerRPCCredentials
}

// Option configures a Client.
type Option func(*Client)

// WithTransportCredentials replaces the default plaintext transport.
func WithTransportCredentials(creds credentials.TransportCredentials) Option {
	return func(c *Client) {
		c.creds = creds
	}
}

// WithPerRPCCredentials attaches call credentials to every request. The
// default is anonymous.
func WithPerRPCCredentials(creds credentials.PerRPCCredentials) Option {
	return func(c *Client) {
		c.callCreds = creds
	}
}

// NewClient returns a Client for the given host:port target. Unless
// configured otherwise the client dials an insecure channel with no
// credentials.
func NewClient(target string, opts ...Option) *Client {
	c := &Client{
		target: target,
		creds:  insecure.NewCredentials(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) dial() (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(c.creds),
	}
	if c.callCreds != nil {
		opts = append(opts, grpc.WithPerRPCCredentials(c.callCreds))
	}

	conn, err := grpc.NewClient(c.target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sessions service: %w", err)
	}
	return conn, nil
}

// DetectOnce submits each input in order through the unary DetectIntent
// call and returns a mapping from input text to its result.
//
// The loop is strictly sequential and fail-fast: a failure on any input
// aborts the batch immediately, subsequent inputs are never sent, and the
// backend's status is returned as an [*RPCError]. Duplicate input texts
// overwrite earlier entries in the mapping.
func (c *Client) DetectOnce(ctx context.Context, session SessionName, inputs []QueryInput) (map[string]QueryResult, error) {
	conn, err := c.dial()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	client := sessionspb.NewSessionsClient(conn)

	results := make(map[string]QueryResult, len(inputs))
	for _, input := range inputs {
		req := &sessionspb.DetectIntentRequest{
			Session:    session.String(),
			QueryInput: input.proto(),
		}

		resp, err := client.DetectIntent(ctx, req)
		if err != nil {
			return nil, wrapStatus(err)
		}
		results[input.Text] = resultFromProto(resp.GetQueryResult())
	}
	return results, nil
}

// DetectStream submits the whole batch over one bidirectional
// StreamingDetectIntent stream: every input is sent in order, the send
// side is closed, and responses are consumed until the backend closes the
// stream.
//
// Responses are keyed by the text echoed in each result, not by submission
// position, because stream delivery order is not guaranteed. If the stream
// terminates with an error the partial mapping is discarded and the status
// is returned as an [*RPCError]. A clean end-of-stream with fewer
// responses than inputs is not an error; callers inspect the mapping's
// size.
func (c *Client) DetectStream(ctx context.Context, session SessionName, inputs []QueryInput) (map[string]QueryResult, error) {
	conn, err := c.dial()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	stream, err := sessionspb.NewSessionsClient(conn).StreamingDetectIntent(ctx)
	if err != nil {
		return nil, wrapStatus(err)
	}

	for _, input := range inputs {
		req := &sessionspb.StreamingDetectIntentRequest{
			Session:    session.String(),
			QueryInput: input.proto(),
		}

		// A failed Send means the stream is already broken; the
		// authoritative status is reported by Recv below.
		if err := stream.Send(req); err != nil {
			break
		}
	}
	if err := stream.CloseSend(); err != nil {
		return nil, wrapStatus(err)
	}

	results := make(map[string]QueryResult, len(inputs))
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return results, nil
		}
		if err != nil {
			return nil, wrapStatus(err)
		}

		result := resp.GetDetectIntentResponse().GetQueryResult()
		results[result.GetText()] = resultFromProto(result)
	}
}

func (in QueryInput) proto() *sessionspb.QueryInput {
	return &sessionspb.QueryInput{
		Text:         &sessionspb.TextInput{Text: in.Text},
		LanguageCode: in.LanguageCode,
	}
}

func resultFromProto(result *sessionspb.QueryResult) QueryResult {
	return QueryResult{
		Text:          result.GetText(),
		MatchedIntent: result.GetMatch().GetIntent().GetDisplayName(),
		Confidence:    result.GetMatch().GetConfidence(),
	}
}
