package util

import "github.com/google/uuid"

// keyfileUUIDNamespace is a fixed namespace used to derive stable,
// reproducible connection UUIDs from a keyfile's name by hashing the pair
// ("keyfile", keyfile_name) with a stable UUID-from-strings function.
// The value is the RFC 4122 DNS namespace UUID; changing it would change
// every derived UUID.
var keyfileUUIDNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// UUIDFromKeyfileName deterministically derives a connection UUID from a
// keyfile's name, so re-reading the same unmodified file always yields the
// same synthesized UUID.
func UUIDFromKeyfileName(name string) string {
	return uuid.NewSHA1(keyfileUUIDNamespace, []byte("keyfile:"+name)).String()
}
