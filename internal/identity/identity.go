// Package identity derives offline player identities. No network access
// is involved: the identity is a pure function of the username.
package identity

import "github.com/google/uuid"

// offlinePrefix matches the convention used by offline-mode servers when
// hashing a player name into an identity.
const offlinePrefix = "OfflinePlayer:"

// OfflineUUID derives a deterministic UUID-formatted identity for a
// username. The same name always yields the same value.
func OfflineUUID(username string) string {
	return uuid.NewMD5(uuid.NameSpaceOID, []byte(offlinePrefix+username)).String()
}
