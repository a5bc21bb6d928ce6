package dispatch

import (
	"context"
	"time"
)

// Outcome is the result of a single dispatch attempt.
type Outcome string

const (
	OutcomeDispatched Outcome = "dispatched"
	OutcomeFailed     Outcome = "failed"
	OutcomeSkipped    Outcome = "skipped"
)

// Report is what the token response tells the caller about the agent.
type Report string

const (
	// ReportAutomatic means dispatch is left to LiveKit's dispatch-on-join.
	ReportAutomatic Report = "automatic"
	// ReportDispatched means the dispatch endpoint accepted the request.
	ReportDispatched Report = "dispatched"
	// ReportFailed means the dispatch call failed or timed out.
	ReportFailed Report = "failed"
	// ReportScheduled means the call runs in the background; the outcome is only logged.
	ReportScheduled Report = "scheduled"
)

// AdminTokenTTL bounds the lifetime of the bearer token sent to the dispatch endpoint.
const AdminTokenTTL = 5 * time.Minute

// Request is the JSON body posted to the dispatch endpoint.
type Request struct {
	Room      string   `json:"room"`
	AgentName string   `json:"agent_name"`
	Metadata  Metadata `json:"metadata"`
}

// Metadata describes who triggered the dispatch.
type Metadata struct {
	UserIdentity string `json:"user_identity"`
	DispatchTime string `json:"dispatch_time"`
}

// AdminTokenSigner mints the roomAdmin-only bearer token.
type AdminTokenSigner interface {
	SignAdmin(room string, issuedAt time.Time, ttl time.Duration) (string, error)
}

// Client delivers a dispatch request to the orchestration endpoint.
type Client interface {
	Dispatch(ctx context.Context, bearerToken string, req *Request) error
}
