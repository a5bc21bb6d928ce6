package idgen

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerateHexID(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		length     int
		wantErr    bool
		wantPrefix string
	}{
		{
			name:       "room name",
			prefix:     "room",
			length:     12,
			wantPrefix: "room-",
		},
		{
			name:       "identity",
			prefix:     "user",
			length:     12,
			wantPrefix: "user-",
		},
		{
			name:       "odd length",
			prefix:     "x",
			length:     7,
			wantPrefix: "x-",
		},
		{
			name:    "zero length",
			prefix:  "room",
			length:  0,
			wantErr: true,
		},
	}

	hexOnly := regexp.MustCompile(`^[0-9a-f]+$`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateHexID(tt.prefix, tt.length)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateHexID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("GenerateHexID() = %v, want prefix %v", got, tt.wantPrefix)
			}
			suffix := strings.TrimPrefix(got, tt.wantPrefix)
			if len(suffix) != tt.length {
				t.Errorf("suffix length = %d, want %d", len(suffix), tt.length)
			}
			if !hexOnly.MatchString(suffix) {
				t.Errorf("suffix %q is not lowercase hex", suffix)
			}
		})
	}
}
