package i18n

import "testing"

func TestTranslatorRendersTemplate(t *testing.T) {
	tr := NewTranslator("en")

	got := tr.T("en", "notify.signup.confirmed", map[string]any{
		"Name": "Ada", "Day": "Monday", "Date": "2026-10-19", "Guest": "Bob",
	})
	want := "Ada, you are confirmed for golf on Monday, 2026-10-19 with guest Bob."
	if got != want {
		t.Fatalf("T() = %q, want %q", got, want)
	}

	got = tr.T("en", "notify.signup.confirmed", map[string]any{
		"Name": "Ada", "Day": "Monday", "Date": "2026-10-19", "Guest": "",
	})
	want = "Ada, you are confirmed for golf on Monday, 2026-10-19."
	if got != want {
		t.Fatalf("T() without guest = %q, want %q", got, want)
	}
}

func TestTranslatorLocaleFallback(t *testing.T) {
	tr := NewTranslator("en")

	if got := tr.T("fr", "errors.already_cancelled", nil); got != "L'inscription est déjà annulée." {
		t.Fatalf("fr message = %q", got)
	}
	if got := tr.T("de", "errors.already_cancelled", nil); got != "Signup is already cancelled." {
		t.Fatalf("unknown locale should fall back to en, got %q", got)
	}
	if got := tr.T("en", "does.not.exist", nil); got != "does.not.exist" {
		t.Fatalf("missing key should echo the key, got %q", got)
	}
	if got := tr.T("en", "", nil); got != "" {
		t.Fatalf("empty key = %q", got)
	}
}

func TestTranslatorMatch(t *testing.T) {
	tr := NewTranslator("en")
	tests := []struct {
		accept string
		want   string
	}{
		{"", "en"},
		{"fr", "fr"},
		{"fr-CA,fr;q=0.9,en;q=0.5", "fr"},
		{"de-DE,de;q=0.9", "en"},
		{"de;q=0.9,fr;q=0.8", "fr"},
	}
	for _, tt := range tests {
		if got := tr.Match(tt.accept).String(); got != tt.want {
			t.Errorf("Match(%q) = %s, want %s", tt.accept, got, tt.want)
		}
	}
}
