package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/warbot/internal/common/uuid UUID

// UUID produces opaque identifiers. They end up inside Discord component
// custom IDs, which are capped at 100 characters.
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a random UUID without dashes.
func (d *DefaultUUID) NewUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
