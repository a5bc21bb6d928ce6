package tokenreq

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantIdentity *string
		wantRoom     *string
	}{
		{name: "empty body", body: ""},
		{name: "empty object", body: "{}"},
		{name: "malformed", body: "{identity:"},
		{name: "json array", body: `["alice"]`},
		{name: "wrong type", body: `{"identity": 42, "room": "demo"}`},
		{name: "null fields", body: `{"identity": null, "room": null}`},
		{name: "both", body: `{"identity":"alice","room":"demo"}`, wantIdentity: ptr("alice"), wantRoom: ptr("demo")},
		{name: "explicit empty", body: `{"identity":"","room":"demo"}`, wantIdentity: ptr(""), wantRoom: ptr("demo")},
		{name: "unknown fields ignored", body: `{"room":"demo","extra":true}`, wantRoom: ptr("demo")},
		{name: "oversized", body: `{"identity":"` + strings.Repeat("a", MaxBodyBytes) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(tt.body))
			got := Decode(httptest.NewRecorder(), r)

			if !equalPtr(got.Identity, tt.wantIdentity) {
				t.Errorf("Identity = %v, want %v", deref(got.Identity), deref(tt.wantIdentity))
			}
			if !equalPtr(got.Room, tt.wantRoom) {
				t.Errorf("Room = %v, want %v", deref(got.Room), deref(tt.wantRoom))
			}
		})
	}
}

func ptr(s string) *string { return &s }

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
