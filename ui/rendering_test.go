package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	appmodel "bitrpc/model"
	"bitrpc/ollama"
	"bitrpc/reference"
)

func TestStripCodeBlockPrefix(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"bar and space", "┃ proxy.getblockcount()", "proxy.getblockcount()"},
		{"bar only", "┃", ""},
		{"bar without space", "┃x = 1", "x = 1"},
		{"no bar", "plain text", "plain text"},
		{"indented bar", "  ┃ import json", "import json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeBlockPrefix(tt.line); got != tt.want {
				t.Errorf("stripCodeBlockPrefix(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestFrameCodeBlocks(t *testing.T) {
	in := "Try this:\n┃ from bitcoinrpc.authproxy import AuthServiceProxy\n┃ print(1)\nDone."
	out := stripANSI(frameCodeBlocks(in, 40))

	if strings.Contains(out, codeBar) {
		t.Errorf("code bars left in output:\n%s", out)
	}
	for _, want := range []string{"[code]", "from bitcoinrpc.authproxy import AuthServiceProxy", "print(1)", "Try this:", "Done."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "━━━━"); got < 2 {
		t.Errorf("expected top and bottom borders, found %d", got)
	}
}

func TestFrameCodeBlocksClosesTrailingBlock(t *testing.T) {
	out := stripANSI(frameCodeBlocks("┃ x = 1", 20))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "━") {
		t.Errorf("trailing block not closed, last line %q", last)
	}
}

func TestRenderMarkdownKeepsText(t *testing.T) {
	out := stripANSI(renderMarkdown("Call `getblockcount` on the [proxy](https://example.com/docs).", 60))

	if !strings.Contains(out, "getblockcount") {
		t.Errorf("inline code lost:\n%s", out)
	}
	if !strings.Contains(out, "https://example.com/docs") {
		t.Errorf("link URL should be shown in place of the link:\n%s", out)
	}
}

func TestStripANSI(t *testing.T) {
	if got := stripANSI("\x1b[31mred\x1b[0m plain"); got != "red plain" {
		t.Errorf("stripANSI = %q", got)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, ""},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}

	for _, tt := range tests {
		if got := formatSize(tt.bytes); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		s    string
		w    int
		want string
	}{
		{"getblock", 20, "getblock"},
		{"getblockchaininfo", 10, "getbloc..."},
		{"getblock", 3, "get"},
		{"getblock", 0, ""},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.s, tt.w); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.s, tt.w, got, tt.want)
		}
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name               string
		n, selected, size  int
		wantStart, wantEnd int
	}{
		{"fits", 4, 2, 6, 0, 4},
		{"top", 20, 0, 6, 0, 6},
		{"middle", 20, 10, 6, 7, 13},
		{"bottom", 20, 19, 6, 14, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleWindow(tt.n, tt.selected, tt.size)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.n, tt.selected, tt.size, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestWordWrap(t *testing.T) {
	got := wordWrap("Set GEMINI_API_KEY and restart the program", 16)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 18 {
			t.Errorf("line too long: %q", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "Set GEMINI_API_KEY and restart the program" {
		t.Errorf("words lost: %q", got)
	}

	if got := wordWrap("a\n\nb", 10); got != "a\n\nb" {
		t.Errorf("paragraphs not kept: %q", got)
	}
}

func TestFilterModels(t *testing.T) {
	models := []ollama.ModelInfo{
		{Name: "gemini-2.5-flash"},
		{Name: "gemini-2.5-pro"},
		{Name: "gpt-4o-mini"},
	}

	if got := filterModels(models, ""); len(got) != 3 {
		t.Errorf("empty query returned %d models, want 3", len(got))
	}

	got := filterModels(models, "pro")
	if len(got) != 1 || got[0].Name != "gemini-2.5-pro" {
		t.Errorf("filterModels(pro) = %+v", got)
	}

	if got := filterModels(models, "zzz"); len(got) != 0 {
		t.Errorf("unmatched query returned %+v", got)
	}
}

func TestModelHelpers(t *testing.T) {
	models := []ollama.ModelInfo{
		{Name: "Gemini 2.5 Flash", InternalName: "gemini-2.5-flash"},
		{Name: "llama3", InternalName: "llama3"},
	}

	if IsCurrentModel(models[0], "") {
		t.Error("empty current model matched")
	}
	if !IsCurrentModel(models[0], "gemini-2.5-flash") {
		t.Error("internal name should match")
	}

	idx, m := FindModelByName(models, "llama3")
	if idx != 1 || m == nil || m.Name != "llama3" {
		t.Errorf("FindModelByName(llama3) = %d, %+v", idx, m)
	}
	if idx, m := FindModelByName(models, "missing"); idx != -1 || m != nil {
		t.Errorf("FindModelByName(missing) = %d, %+v", idx, m)
	}
}

func TestRenderMethodTable(t *testing.T) {
	out := stripANSI(renderMethodTable(100))

	for _, category := range reference.Categories() {
		if !strings.Contains(out, "## "+category) {
			t.Errorf("category %q missing", category)
		}
	}
	for _, m := range reference.Methods() {
		if !strings.Contains(out, m.Name) {
			t.Errorf("method %q missing", m.Name)
		}
	}
}

func TestDocsRenderedOnFirstResize(t *testing.T) {
	a := NewAppView(nil, nil, nil, nil, "test")
	a, cmd := update(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})

	docs := findMsg[appmodel.DocsRenderedMsg](t, cmd)
	a, _ = update(t, a, docs)

	if !a.docsRendered {
		t.Fatal("docs not marked rendered")
	}
	out := stripANSI(docs.Rendered)
	if !strings.Contains(out, "AuthServiceProxy") || !strings.Contains(out, "getblockchaininfo") {
		t.Errorf("docs missing library text or method table")
	}
}
