package seed

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Namespace is the v5 namespace legacy ids are hashed under
var Namespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// MongoIDToUUID maps a legacy object id to a stable UUID
func MongoIDToUUID(legacy string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(legacy))
}

// LegacyID decodes either "abc" or {"$oid":"abc"}
type LegacyID string

func (id *LegacyID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = LegacyID(s)
		return nil
	}

	var obj struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("legacy id: %w", err)
	}
	if obj.OID == "" {
		return errors.New("legacy id: missing $oid")
	}
	*id = LegacyID(obj.OID)
	return nil
}

// UUID returns the mapped id
func (id LegacyID) UUID() uuid.UUID {
	return MongoIDToUUID(string(id))
}
