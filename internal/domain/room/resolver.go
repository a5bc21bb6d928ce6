package room

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"livekit-token-service/internal/utils/idgen"
)

const (
	// NamePrefix prefixes every generated room name.
	NamePrefix = "room"
	// SuffixLength is the number of hex characters after the prefix.
	SuffixLength = 12
	// maxAttempts bounds directory lookups for one generated name.
	maxAttempts = 3
)

// Directory reports whether a room is already active on the media backend.
type Directory interface {
	RoomExists(ctx context.Context, name string) (bool, error)
}

// Resolver picks the room a token is issued for.
type Resolver struct {
	directory Directory
	log       zerolog.Logger
}

// NewResolver creates a resolver. A nil directory means generated names are
// not checked against the backend; uniqueness is then only probabilistic.
func NewResolver(directory Directory, log zerolog.Logger) *Resolver {
	return &Resolver{
		directory: directory,
		log:       log.With().Str("component", "room-resolver").Logger(),
	}
}

// Resolve returns requested unchanged when non-empty, otherwise a generated
// "room-<12 hex>" name. It never fails and never returns "".
func (r *Resolver) Resolve(ctx context.Context, requested string) string {
	if requested != "" {
		return requested
	}

	var candidate string
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate = generateName()
		if r.directory == nil {
			return candidate
		}

		exists, err := r.directory.RoomExists(ctx, candidate)
		if err != nil {
			r.log.Warn().Err(err).Str("room", candidate).Msg("room directory lookup failed, using unchecked name")
			return candidate
		}
		if !exists {
			return candidate
		}
		r.log.Info().Str("room", candidate).Int("attempt", attempt).Msg("generated room name already active")
	}

	return candidate
}

func generateName() string {
	name, err := idgen.GenerateHexID(NamePrefix, SuffixLength)
	if err != nil {
		return fmt.Sprintf("%s-%d", NamePrefix, time.Now().UnixNano())
	}
	return name
}
