package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"bitrpc/config"
	appmodel "bitrpc/model"
	"bitrpc/reference"
)

// docsMarkdown wraps the library documentation for the markdown renderer.
// The text is line-oriented, so it goes in a code block to keep its lines.
func docsMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# python-bitcoinrpc\n\n")
	sb.WriteString("Reference for the `AuthServiceProxy` client used by every generated script.\n\n")
	sb.WriteString("```\n")
	sb.WriteString(reference.BitcoinRPCDocs)
	sb.WriteString("\n```\n\n")
	sb.WriteString("# Common RPC Methods\n")
	return sb.String()
}

// renderMethodTable lists the method catalog grouped by category, with
// descriptions cut to the available width.
func renderMethodTable(width int) string {
	nameWidth := 0
	for _, m := range reference.Methods() {
		nameWidth = max(nameWidth, runewidth.StringWidth(m.Name))
	}
	descWidth := max(width-nameWidth-8, 10)

	var sb strings.Builder
	for _, category := range reference.Categories() {
		sb.WriteString("\n")
		sb.WriteString(CategoryStyle.Render("## " + category))
		sb.WriteString("\n")
		for _, m := range reference.MethodsInCategory(category) {
			fmt.Fprintf(&sb, "  %s  %s\n",
				MethodNameStyle.Render(runewidth.FillRight(m.Name, nameWidth)),
				truncateToWidth(m.Description, descWidth),
			)
		}
	}
	return sb.String()
}

func (a AppView) renderDocsAsync() tea.Cmd {
	width := a.width
	return func() tea.Msg {
		startTime := time.Now()

		rendered := renderMarkdown(docsMarkdown(), width)
		rendered += renderMethodTable(width)

		if config.DebugLog != nil {
			config.DebugLog.Printf("Docs rendered in %v", time.Since(startTime))
		}

		return appmodel.DocsRenderedMsg{Rendered: rendered}
	}
}
