// Package tokenservice implements the LiveKit token service that backs the
// embeddable voice widget.
//
// The service provides:
//   - Room token issuance (POST /token) with generated identity and room defaults
//   - Collision-resistant room names, optionally checked against active LiveKit rooms
//   - Opt-in explicit agent dispatch to an orchestration endpoint
//   - Optional JWT authentication via Keycloak
//   - Permissive CORS and framing headers so the widget can be embedded anywhere
package tokenservice
