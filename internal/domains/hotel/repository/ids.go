package repository

import (
	"github.com/google/uuid"
)

// idNamespace seeds every derived id. Changing it re-keys every legacy row.
var idNamespace = uuid.MustParse("6f1d3c52-7a0e-4b8f-9c61-2d5e8a4b7f10")

// StableID maps a local id to the id stored remotely. UUIDs pass through;
// anything else (seeded catalog ids like "rc-001", legacy numeric ids) gets a
// name-based UUID so repeated saves of the same entity hit the same row. The
// account is part of the name: every account seeds the same catalog ids and
// the tables share one primary key space.
func StableID(userID, entityType, id string) string {
	if id == "" {
		return ""
	}

	if _, err := uuid.Parse(id); err == nil {
		return id
	}

	return uuid.NewSHA1(idNamespace, []byte(userID+":"+entityType+":"+id)).String()
}

func stableRef(userID, entityType string, ref any) any {
	id, ok := ref.(string)
	if !ok || id == "" {
		return ref
	}

	return StableID(userID, entityType, id)
}

// NewID returns a random id for entities created by this service.
func NewID() string {
	return uuid.NewString()
}
