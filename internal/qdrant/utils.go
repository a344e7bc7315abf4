package qdrant

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	qdrant "github.com/qdrant/go-client/qdrant"
)

// artistNamespace is the UUID namespace for deriving artist point IDs.
var artistNamespace = uuid.MustParse("9c0f2b3a-1f6d-4e1c-9a47-8b54d1c2ab11")

// PointID derives a deterministic point ID from an artist name. The same
// name (case-insensitive, whitespace-trimmed) always maps to the same ID,
// which makes upserts idempotent by name without a separate unique index.
func PointID(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return uuid.NewSHA1(artistNamespace, []byte(normalized)).String()
}

// pointIDString converts a Qdrant point ID into its string form.
func pointIDString(id *qdrant.PointId) (string, error) {
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num), nil
	case *qdrant.PointId_Uuid:
		return v.Uuid, nil
	default:
		return "", fmt.Errorf("[Qdrant] unexpected PointId type: %T", v)
	}
}

// payloadString safely extracts a string value from a point payload.
// Returns "" when the key is absent or not a string.
func payloadString(payload map[string]*qdrant.Value, key string) string {
	if payload == nil {
		return ""
	}
	if v, ok := payload[key]; ok {
		return v.GetStringValue()
	}
	return ""
}
