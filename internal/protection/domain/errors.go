package domain

import (
	"github.com/allisson/tokenguard/internal/errors"
)

// Token protection error definitions.
//
// Configuration errors are fatal at startup. Tamper and invalid-token errors are
// returned for every decode failure and map to 400 Bad Request; callers must not
// be able to tell which check failed.
var (
	// ErrConfiguration indicates an invalid key or algorithm configuration.
	ErrConfiguration = errors.Wrap(errors.ErrInvalidInput, "configuration error")

	// ErrUnsupportedAlgorithm indicates an unknown algorithm name was configured.
	ErrUnsupportedAlgorithm = errors.Wrap(ErrConfiguration, "unsupported algorithm")

	// ErrInvalidKeySize indicates key material with a length the algorithm cannot use.
	ErrInvalidKeySize = errors.Wrap(ErrConfiguration, "invalid key size")

	// ErrInvalidKeySpec indicates a key value that is neither hex nor AutoGenerate.
	ErrInvalidKeySpec = errors.Wrap(ErrConfiguration, "invalid key value")

	// ErrIsolationIDRequired indicates IsolateApps was requested without an isolation identifier.
	ErrIsolationIDRequired = errors.Wrap(ErrConfiguration, "application isolation id required")

	// ErrValidationCipherNotConfigured indicates a validation-purpose transform was
	// requested while the validation algorithm is integrity-only.
	ErrValidationCipherNotConfigured = errors.Wrap(ErrConfiguration, "validation cipher not configured")

	// ErrInvalidIVType indicates an unknown IV type name.
	ErrInvalidIVType = errors.Wrap(errors.ErrInvalidInput, "invalid iv type")

	// ErrInvalidPurpose indicates an unknown transform purpose name.
	ErrInvalidPurpose = errors.Wrap(errors.ErrInvalidInput, "invalid purpose")

	// ErrTamperDetected indicates the token failed integrity, padding or length checks.
	ErrTamperDetected = errors.Wrap(errors.ErrBadRequest, "tamper detected")

	// ErrProtectorClosed indicates the protector was closed and its keys wiped.
	ErrProtectorClosed = errors.Wrap(errors.ErrUnavailable, "token protector closed")

	// ErrInvalidToken indicates a string token could not be decoded.
	ErrInvalidToken = errors.Wrap(errors.ErrBadRequest, "invalid token")
)
