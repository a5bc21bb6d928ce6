package tokenres

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livekit-token-service/internal/domain/dispatch"
	domaintoken "livekit-token-service/internal/domain/token"
)

func TestNewTokenResponse_AgentDispatched(t *testing.T) {
	expires := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		report  dispatch.Report
		want    any
		present bool
	}{
		{report: dispatch.ReportAutomatic, want: "automatic", present: true},
		{report: dispatch.ReportDispatched, want: true, present: true},
		{report: dispatch.ReportFailed, want: false, present: true},
		{report: dispatch.ReportScheduled, present: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.report), func(t *testing.T) {
			resp := NewTokenResponse(&domaintoken.Result{
				Grant: &domaintoken.Grant{
					Token:     "jwt",
					Identity:  "alice",
					Room:      "demo",
					ExpiresAt: expires,
				},
				WsURL:         "wss://voice.example.livekit.cloud",
				AgentDispatch: tt.report,
			})

			data, err := json.Marshal(resp)
			require.NoError(t, err)
			var body map[string]any
			require.NoError(t, json.Unmarshal(data, &body))

			assert.Equal(t, "jwt", body["token"])
			assert.Equal(t, "wss://voice.example.livekit.cloud", body["wsUrl"])
			assert.Equal(t, float64(expires.Unix()), body["expiresAt"])

			got, ok := body["agentDispatched"]
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
