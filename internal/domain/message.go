package domain

// NewSessionKey is the pseudo-key the UI sends while no concrete session id
// has been minted yet.
const NewSessionKey = "new_session"

// LabelMaxRunes is the maximum length of a session label, counted in runes so
// multibyte labels never split mid-character.
const LabelMaxRunes = 30

// PlaceholderLabel is used when a session's first message has no text payload.
const PlaceholderLabel = "New chat"

// Message is a single entry in a session's append-only log. Exactly one of
// Text and Blob is populated, according to Modality.
type Message struct {
	MessageID int64    `json:"message_id"`
	SessionID string   `json:"session_id"`
	Role      Role     `json:"sender_role"`
	Modality  Modality `json:"modality"`
	Text      string   `json:"text,omitempty"`
	Blob      []byte   `json:"blob,omitempty"`
}

// Validate checks the role, the modality, and that the populated payload slot
// matches the modality. It is called before any write reaches the store.
func (m *Message) Validate() error {
	if !m.Role.Valid() {
		return ErrInvalidRole
	}
	if !m.Modality.Valid() {
		return ErrInvalidModality
	}
	if m.Modality == ModalityText {
		if m.Blob != nil {
			return ErrInvalidModality
		}
		return nil
	}
	if len(m.Blob) == 0 || m.Text != "" {
		return ErrInvalidModality
	}
	return nil
}

// Label derives the session label this message would set if it were the
// session's first: the text payload truncated to LabelMaxRunes, or a fixed
// placeholder for binary payloads.
func (m *Message) Label() string {
	if m.Modality != ModalityText {
		return PlaceholderLabel
	}
	return TruncateLabel(m.Text)
}

// TruncateLabel shortens a candidate label to the LabelMaxRunes prefix.
func TruncateLabel(s string) string {
	runes := []rune(s)
	if len(runes) <= LabelMaxRunes {
		return s
	}
	return string(runes[:LabelMaxRunes])
}

// SessionInfo is a registry entry: an opaque session key plus the
// human-readable label derived from the session's first message.
type SessionInfo struct {
	SessionID string `json:"session_id"`
	Label     string `json:"label"`
}
