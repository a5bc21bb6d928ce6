// Package tokenreq contains HTTP request DTOs for the token endpoint.
package tokenreq

import (
	"encoding/json"
	"io"
	"net/http"

	domaintoken "livekit-token-service/internal/domain/token"
)

// MaxBodyBytes bounds the request body that will be parsed.
const MaxBodyBytes = 64 << 10

// CreateTokenRequest is the body of POST /token. Both fields are optional.
type CreateTokenRequest struct {
	Identity *string `json:"identity,omitempty" example:"alice"`
	Room     *string `json:"room,omitempty" example:"demo"`
}

// Decode reads the request body. An absent, oversized or malformed body is
// treated as an empty object rather than an error.
func Decode(w http.ResponseWriter, r *http.Request) *CreateTokenRequest {
	req := &CreateTokenRequest{}
	if r.Body == nil {
		return req
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil || len(data) == 0 {
		return req
	}
	if err := json.Unmarshal(data, req); err != nil {
		return &CreateTokenRequest{}
	}
	return req
}

// ToDomain converts the DTO to the domain request.
func (r *CreateTokenRequest) ToDomain() *domaintoken.CreateTokenRequest {
	return &domaintoken.CreateTokenRequest{
		Identity: r.Identity,
		Room:     r.Room,
	}
}
