package domain

import "errors"

var (
	// ErrInvalidRole is returned when a message names an unknown sender role.
	ErrInvalidRole = errors.New("invalid sender role")

	// ErrInvalidModality is returned when a message's modality and payload
	// slots disagree. The message is rejected before any write.
	ErrInvalidModality = errors.New("modality and payload mismatch")

	// ErrPolicyBlocked is returned when the append-admission policy rejects
	// a message.
	ErrPolicyBlocked = errors.New("message blocked by policy")

	// ErrGenerationFailed wraps failures of the upstream model client. The
	// user's turn is already persisted when this is returned.
	ErrGenerationFailed = errors.New("generation failed")
)
