package domain

import (
	"strings"
	"testing"
)

func TestMessageValidate(t *testing.T) {
	cases := []struct {
		name    string
		msg     Message
		wantErr error
	}{
		{"text ok", Message{Role: RoleUser, Modality: ModalityText, Text: "hi"}, nil},
		{"empty text ok", Message{Role: RoleAssistant, Modality: ModalityText}, nil},
		{"image ok", Message{Role: RoleUser, Modality: ModalityImage, Blob: []byte{1}}, nil},
		{"audio ok", Message{Role: RoleUser, Modality: ModalityAudio, Blob: []byte{1}}, nil},
		{"text with blob", Message{Role: RoleUser, Modality: ModalityText, Text: "hi", Blob: []byte{1}}, ErrInvalidModality},
		{"image without blob", Message{Role: RoleUser, Modality: ModalityImage}, ErrInvalidModality},
		{"image with text", Message{Role: RoleUser, Modality: ModalityImage, Text: "hi", Blob: []byte{1}}, ErrInvalidModality},
		{"unknown modality", Message{Role: RoleUser, Modality: "video", Blob: []byte{1}}, ErrInvalidModality},
		{"unknown role", Message{Role: "system", Modality: ModalityText, Text: "hi"}, ErrInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.msg.Validate(); err != tc.wantErr {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestLabelDerivation(t *testing.T) {
	text := Message{Role: RoleUser, Modality: ModalityText, Text: "short"}
	if got := text.Label(); got != "short" {
		t.Fatalf("unexpected label: %q", got)
	}

	audio := Message{Role: RoleUser, Modality: ModalityAudio, Blob: []byte{1}}
	if got := audio.Label(); got != PlaceholderLabel {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	long := strings.Repeat("x", 50)
	if got := TruncateLabel(long); len([]rune(got)) != LabelMaxRunes {
		t.Fatalf("expected %d runes, got %d", LabelMaxRunes, len([]rune(got)))
	}

	// Multibyte labels must not split mid-rune.
	multibyte := strings.Repeat("é", 40)
	got := TruncateLabel(multibyte)
	if len([]rune(got)) != LabelMaxRunes || !strings.HasPrefix(multibyte, got) {
		t.Fatalf("unexpected truncation: %q", got)
	}

	if got := TruncateLabel("short"); got != "short" {
		t.Fatalf("short labels must pass through, got %q", got)
	}
}
