package tables_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/moji/internal/adapters/tables"
	"go.trai.ch/moji/internal/core/domain"
)

func TestParseDataTable(t *testing.T) {
	input := `
# emoji-data style table
0023          ; Emoji                # E0.0  [1] (#️)       number sign
2600..2601    ; Emoji                # E0.6  [2] (☀️..☁️)   sun..cloud
1F3FB..1F3FF  ; Emoji_Modifier       # E1.0  [5] (🏻..🏿)   light skin tone..dark skin tone
`
	parser := tables.NewParser()
	entries, err := parser.Parse(strings.NewReader(input), "emoji-data.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 8 {
		t.Fatalf("Expected 8 entries, got %d", len(entries))
	}

	if entries[0].Identity != domain.MustIdentity(0x23) {
		t.Errorf("Unexpected first identity %v", entries[0].Identity)
	}
	if entries[1].Identity != domain.MustIdentity(0x2600) || entries[2].Identity != domain.MustIdentity(0x2601) {
		t.Errorf("Expected range to expand in ascending order, got %v, %v", entries[1].Identity, entries[2].Identity)
	}
	if entries[3].Kind != domain.KindComponent {
		t.Errorf("Expected modifiers to be components, got %v", entries[3].Kind)
	}
	for _, e := range entries {
		if e.Source != "emoji-data.txt" {
			t.Errorf("Expected source to be recorded, got %q", e.Source)
		}
	}
}

func TestParseSequenceTable(t *testing.T) {
	input := `
231A..231B    ; Basic_Emoji                  ; watch..hourglass                 # E0.6  [2] (⌚..⌛)
1F1E9 1F1EA   ; RGI_Emoji_Flag_Sequence      ; flag: Germany                    # E2.0  [1] (🇩🇪)
1F469 200D 1F4BB ; RGI_Emoji_ZWJ_Sequence    ; woman technologist               # E4.0  [1] (👩‍💻)
`
	parser := tables.NewParser()
	entries, err := parser.Parse(strings.NewReader(input), "emoji-sequences.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	// Range lines lose the shared description.
	if entries[0].Name != "" || entries[1].Name != "" {
		t.Errorf("Expected no name on range entries, got %q, %q", entries[0].Name, entries[1].Name)
	}
	if entries[2].Name != "flag: Germany" {
		t.Errorf("Expected flag name, got %q", entries[2].Name)
	}
	if entries[2].Kind != domain.KindFlag {
		t.Errorf("Expected flag kind, got %v", entries[2].Kind)
	}
	if entries[3].Kind != domain.KindZWJ {
		t.Errorf("Expected ZWJ kind, got %v", entries[3].Kind)
	}
}

func TestParseTestTable(t *testing.T) {
	input := `
# group: Smileys & Emotion
1F600                                           ; fully-qualified     # 😀 E1.0 grinning face
263A FE0F                                       ; fully-qualified     # ☺️ E0.6 smiling face
263A                                            ; unqualified         # ☺ E0.6 smiling face
1F3FB                                           ; component           # 🏻 E1.0 light skin tone
`
	parser := tables.NewParser()
	entries, err := parser.Parse(strings.NewReader(input), "emoji-test.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}
	if entries[0].Status != domain.StatusFullyQualified {
		t.Errorf("Expected fully-qualified, got %v", entries[0].Status)
	}
	if entries[0].Name != "grinning face" {
		t.Errorf("Expected name from comment, got %q", entries[0].Name)
	}
	if entries[2].Status != domain.StatusUnqualified {
		t.Errorf("Expected unqualified, got %v", entries[2].Status)
	}
	if entries[3].Status != domain.StatusComponent {
		t.Errorf("Expected component, got %v", entries[3].Status)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing fields", "1F600\n"},
		{"bad codepoint", "XYZ ; Emoji ; name\n"},
		{"descending range", "2601..2600 ; Emoji\n"},
		{"zero codepoint", "0 ; Emoji\n"},
	}

	parser := tables.NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(strings.NewReader(tt.input), "bad.txt")
			if err == nil {
				t.Fatal("Expected error")
			}
			if !errors.Is(err, domain.ErrMalformedTable) {
				t.Errorf("Expected ErrMalformedTable, got %v", err)
			}
		})
	}
}

func TestParseUnknownPropertyFallsBack(t *testing.T) {
	input := "1F469 200D 2695 FE0F ; Some_Future_Property ; health worker\n"

	parser := tables.NewParser()
	entries, err := parser.Parse(strings.NewReader(input), "future.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Kind != domain.KindZWJ {
		t.Errorf("Expected structural fallback to ZWJ, got %v", entries[0].Kind)
	}
}

func TestParseAliasFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emoji_aliases.txt")
	content := `
# alias ; canonical
1f3f3_fe0f;1f3f3
26f9_fe0f_200d_2640_fe0f;26f9_200d_2640
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	parser := tables.NewParser()
	aliases, err := parser.ParseAliasFile(path)
	if err != nil {
		t.Fatalf("ParseAliasFile failed: %v", err)
	}

	if len(aliases) != 2 {
		t.Fatalf("Expected 2 aliases, got %d", len(aliases))
	}

	from := domain.MustIdentity(0x1F3F3, domain.VS16)
	to := domain.MustIdentity(0x1F3F3)
	if got, ok := aliases[from]; !ok || got != to {
		t.Errorf("Expected %v to alias %v, got %v (ok=%v)", from, to, got, ok)
	}
}

func TestParseFileMissing(t *testing.T) {
	parser := tables.NewParser()
	if _, err := parser.ParseFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
