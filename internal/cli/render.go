package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// turns service responses into styled terminal text
type Renderer struct {
	markdown *glamour.TermRenderer
}

// styled picks the auto-detected glamour theme, otherwise the plain notty theme
func NewRenderer(width int, styled bool) (*Renderer, error) {
	style := glamour.WithStandardStyle("notty")
	if styled {
		style = glamour.WithAutoStyle()
	}

	md, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return &Renderer{markdown: md}, nil
}

func (r *Renderer) RenderOrchestration(resp *OrchestrateResponse) string {
	var b strings.Builder

	for _, result := range resp.Results {
		b.WriteString(headerStyle.Render(result.AgentType))
		b.WriteString(" ")
		b.WriteString(confidenceStyle(result.Confidence).Render(fmt.Sprintf("confidence %.2f", result.Confidence)))
		b.WriteString(infoStyle.Render(fmt.Sprintf("  %.2fs", result.ExecutionTime)))
		b.WriteString("\n")

		b.WriteString(r.renderMarkdown(result.Analysis))

		for _, s := range result.Suggestions {
			b.WriteString(suggestionStyle.Render("- " + s))
			b.WriteString("\n")
		}
	}

	for _, failed := range resp.FailedAgents {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s failed: %s", failed.Agent, failed.Error)))
		b.WriteString("\n")
	}

	if len(resp.SkippedAgents) > 0 {
		b.WriteString(infoStyle.Render("skipped unknown agents: " + strings.Join(resp.SkippedAgents, ", ")))
		b.WriteString("\n")
	}

	b.WriteString(summaryStyle.Render(resp.Summary))
	b.WriteString("\n")

	return b.String()
}

func (r *Renderer) RenderAnalysis(resp *AnalyzeResponse) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(resp.Task))
	b.WriteString(infoStyle.Render(fmt.Sprintf("  %s, %d tokens", resp.Model, resp.TokensUsed)))
	b.WriteString("\n")

	b.WriteString(r.renderMarkdown(resp.Output))

	for _, s := range resp.Suggestions {
		b.WriteString(suggestionStyle.Render(
			fmt.Sprintf("%s line %d: %s", suggestionTypeStyle(s.Type).Render(s.Type), s.Line, s.Description),
		))
		b.WriteString("\n")
	}

	if resp.SessionID != "" {
		b.WriteString(infoStyle.Render("session " + resp.SessionID))
		b.WriteString("\n")
	}

	return b.String()
}

// falls back to the raw text when markdown rendering fails
func (r *Renderer) renderMarkdown(text string) string {
	out, err := r.markdown.Render(text)
	if err != nil {
		return text + "\n"
	}

	return out
}
