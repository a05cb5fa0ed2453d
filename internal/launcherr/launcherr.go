// Package launcherr defines the error kinds shared across the launcher
// core. Callers classify failures with errors.Is; the concrete message
// always comes from fmt.Errorf("%w: ...") wrapping at the failure site.
package launcherr

import "errors"

var (
	// ErrNetwork covers unreachable hosts, transport failures, timeouts,
	// and non-2xx responses.
	ErrNetwork = errors.New("network error")

	// ErrParse covers malformed manifest or descriptor documents.
	ErrParse = errors.New("parse error")

	// ErrIntegrity is a digest mismatch after a completed download.
	ErrIntegrity = errors.New("integrity error")

	// ErrConfig covers missing versions, unreadable local descriptors,
	// and missing download URLs.
	ErrConfig = errors.New("config error")

	// ErrProvisioning is returned by the runtime provisioning contract.
	ErrProvisioning = errors.New("provisioning error")
)
