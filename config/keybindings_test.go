package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetActionKey(t *testing.T) {
	kb := DefaultKeybindings()

	tests := []struct {
		action string
		want   string
	}{
		{"quit", "alt+q"},
		{"screen_simulator", "alt+2"},
		{"half_page_down", "alt+J"},
		{"next_field", "tab"},
		{"submit", "enter"},
		{"newline", "alt+enter"},
		{"selector_down_filtered", "alt+j"},
		{"no_such_action", ""},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			if got := kb.GetActionKey(tt.action); got != tt.want {
				t.Errorf("GetActionKey(%q) = %q, want %q", tt.action, got, tt.want)
			}
		})
	}
}

func TestActionOverride(t *testing.T) {
	kb := DefaultKeybindings()
	kb.Actions = map[string]string{"toggle_mode": "ctrl+t"}

	if got := kb.GetActionKey("toggle_mode"); got != "ctrl+t" {
		t.Errorf("override ignored: got %q", got)
	}
	if got := kb.DisplayActionKey("toggle_mode"); got != "Ctrl+T" {
		t.Errorf("DisplayActionKey() = %q", got)
	}
}

func TestDisplayActionKey(t *testing.T) {
	kb := DefaultKeybindings()

	if got := kb.DisplayActionKey("scroll_to_bottom"); got != "Alt+Shift+G" {
		t.Errorf("DisplayActionKey(scroll_to_bottom) = %q", got)
	}
	if got := kb.DisplayActionKey("help"); got != "Alt+H" {
		t.Errorf("DisplayActionKey(help) = %q", got)
	}
}

func TestLoadKeybindings(t *testing.T) {
	dir := t.TempDir()

	kb, err := LoadKeybindings(dir)
	if err != nil {
		t.Fatalf("LoadKeybindings() error = %v", err)
	}
	if kb.Primary() != "alt" {
		t.Errorf("Primary() = %q", kb.Primary())
	}
	if !FileExists(filepath.Join(dir, "keybindings.toml")) {
		t.Fatal("template was not written")
	}

	custom := "[modifiers]\nprimary = \"ctrl\"\n\n[actions]\nquit = \"ctrl+shift+q\"\n"
	if err := os.WriteFile(filepath.Join(dir, "keybindings.toml"), []byte(custom), 0600); err != nil {
		t.Fatal(err)
	}

	kb, err = LoadKeybindings(dir)
	if err != nil {
		t.Fatalf("LoadKeybindings() error = %v", err)
	}
	if got := kb.GetActionKey("help"); got != "ctrl+h" {
		t.Errorf("help = %q, want ctrl+h", got)
	}
	if got := kb.Secondary(); got != "alt+shift" {
		t.Errorf("missing secondary should default, got %q", got)
	}
	if got := kb.GetActionKey("quit"); got != "ctrl+shift+q" {
		t.Errorf("quit = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		wantOK    bool
		wantWarn  bool
	}{
		{"defaults", "alt", "alt+shift", true, false},
		{"shift alone", "shift", "alt+shift", false, true},
		{"ctrl warns", "ctrl", "ctrl+shift", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := &KeyBindingsConfig{Modifiers: ModifierConfig{Primary: tt.primary, Secondary: tt.secondary}}
			ok, msg := kb.Validate()
			if ok != tt.wantOK {
				t.Errorf("Validate() ok = %v, want %v", ok, tt.wantOK)
			}
			if (msg != "") != tt.wantWarn {
				t.Errorf("Validate() message = %q", msg)
			}
		})
	}
}

func TestActionNamesSorted(t *testing.T) {
	names := ActionNames()
	if len(names) != len(actionRegistry) {
		t.Fatalf("got %d names, want %d", len(names), len(actionRegistry))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}
}
