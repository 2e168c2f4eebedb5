package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// GuideUUID identifies a guide by its repository-relative path.
func GuideUUID(path string) uuid.UUID {
	return UUID("go-pages:guide:" + strings.TrimSpace(path))
}

// BuildUUID identifies a single publish of a guide at a given content digest.
func BuildUUID(guideID uuid.UUID, checksum string) uuid.UUID {
	return UUID("go-pages:build:" + guideID.String() + ":" + strings.ToLower(strings.TrimSpace(checksum)))
}

// ThemeUUID identifies a theme by name.
func ThemeUUID(name string) uuid.UUID {
	return UUID("go-pages:theme:" + strings.ToLower(strings.TrimSpace(name)))
}
