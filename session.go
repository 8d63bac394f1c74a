package intenttest

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SessionName identifies one conversation instance within a project,
// region and agent. It is immutable once constructed and renders
// deterministically to the wire-level session reference.
type SessionName struct {
	project  string
	location string
	agent    string
	session  string
}

// NewSessionName builds a SessionName from its four identifying fields.
// Every field must be non-empty; no further validation is performed since
// this type does no network I/O.
func NewSessionName(project, location, agent, session string) (SessionName, error) {
	switch {
	case project == "":
		return SessionName{}, errors.New("intenttest: project must not be empty")
	case location == "":
		return SessionName{}, errors.New("intenttest: location must not be empty")
	case agent == "":
		return SessionName{}, errors.New("intenttest: agent must not be empty")
	case session == "":
		return SessionName{}, errors.New("intenttest: session must not be empty")
	}

	return SessionName{
		project:  project,
		location: location,
		agent:    agent,
		session:  session,
	}, nil
}

// String renders the session reference in its fixed wire format:
//
//	projects/<project>/locations/<location>/agents/<agent>/sessions/<session>
//
// Any backend must parse this exact structure for session correlation to
// work.
func (n SessionName) String() string {
	return fmt.Sprintf("projects/%s/locations/%s/agents/%s/sessions/%s", n.project, n.location, n.agent, n.session)
}

// Project returns the project identifier.
func (n SessionName) Project() string { return n.project }

// Location returns the location identifier.
func (n SessionName) Location() string { return n.location }

// Agent returns the opaque agent identifier.
func (n SessionName) Agent() string { return n.agent }

// Session returns the session instance identifier.
func (n SessionName) Session() string { return n.session }

// GenerateSessionID returns a fresh identifier suitable as the session
// field of a SessionName when the caller does not supply its own.
func GenerateSessionID() string {
	return uuid.NewString()
}
