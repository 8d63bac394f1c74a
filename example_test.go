package intenttest_test

import (
	"context"
	"fmt"
	"os"

	"github.com/tomasbasham/intenttest"
	"github.com/tomasbasham/intenttest/mock"
	sessionspb "github.com/tomasbasham/intenttest/proto/sessions/v1"
	"github.com/tomasbasham/intenttest/testserver"
)

func Example() {
	s, err := testserver.NewServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start server: %v", err)
		return
	}
	defer s.Close()

	sessionspb.RegisterSessionsServer(s, mock.NewSessions())
	s.Serve()

	session, err := intenttest.NewSessionName("traffic-parrot-example", "us-central1", "ef28899e-5401-465e-9352-2efc8a8ebef9", intenttest.GenerateSessionID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build session name: %v", err)
		return
	}

	client := intenttest.NewClient(s.Addr())
	results, err := client.DetectOnce(context.Background(), session, []intenttest.QueryInput{
		{Text: "hello", LanguageCode: "en-us"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "unexpected error: %v", err)
		return
	}

	fmt.Println(results["hello"].Text)
	// Output:
	// hello
}
