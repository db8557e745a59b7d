// Package domain defines the core domain models for the chat service.
package domain

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the known sender roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Modality identifies the kind of payload a message carries.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
	ModalityAudio Modality = "audio"
)

// Valid reports whether the modality is one of the known payload kinds.
func (m Modality) Valid() bool {
	return m == ModalityText || m == ModalityImage || m == ModalityAudio
}

// Binary reports whether the modality carries a blob payload instead of text.
func (m Modality) Binary() bool {
	return m == ModalityImage || m == ModalityAudio
}
