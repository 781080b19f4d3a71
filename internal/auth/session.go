package auth

import (
	"github.com/angelmondragon/restroboost-backend/internal/records"
)

// NewSessionStore persists the session pointer under restroboost_auth.
func NewSessionStore(deps records.Deps) (*records.Document[sessionPointer], error) {
	return records.NewDocument[sessionPointer](records.KeyAuth, deps.Backend, deps.Logger, deps.Metrics)
}
