// Package chat builds the conversation sent to the LLM when asking about a paper.
package chat

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/donavanyieh/Daily-Attention-UI/internal/llm"
	"github.com/donavanyieh/Daily-Attention-UI/internal/models"
)

var (
	ErrEmptyHistory = errors.New("chat: history is empty")
	ErrLastNotUser  = errors.New("chat: last message must be from user")
)

// Acknowledgement is the canned assistant turn that follows the system prompt.
const Acknowledgement = "I understand. I'll help answer questions about this research paper based on its content. What would you like to know?"

// SystemPrompt frames the assistant around one paper.
func SystemPrompt(p models.Paper) string {
	var b strings.Builder
	b.WriteString("You are a helpful AI assistant analyzing a research paper.\n\n")
	fmt.Fprintf(&b, "Paper Title: %s\n\n", p.Title)
	b.WriteString("Paper Content:\n")
	b.WriteString(Markdown(p))
	b.WriteString("\nInstructions:\n")
	b.WriteString("- Answer questions about this paper based on the content above\n")
	b.WriteString("- Be concise and cite specific sections when relevant\n")
	b.WriteString("- If asked about something not in the paper, politely indicate that\n")
	b.WriteString("- Provide technical insights when appropriate\n")
	b.WriteString("- Use markdown formatting for better readability (headings, lists, code blocks, etc.)")
	return b.String()
}

// Markdown renders the stored metadata of p.
func Markdown(p models.Paper) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if len(p.Authors) > 0 {
		fmt.Fprintf(&b, "**Authors:** %s\n", strings.Join(p.Authors, ", "))
	}
	if p.Date != "" {
		fmt.Fprintf(&b, "**Date:** %s\n", p.Date)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "**Tags:** %s\n", strings.Join(p.Tags, ", "))
	}
	section(&b, "Abstract", p.Abstract)
	section(&b, "Summary", p.Summary)
	if len(p.KeyPoints) > 0 {
		b.WriteString("\n## Key Points\n\n")
		for _, kp := range p.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", kp)
		}
	}
	section(&b, "Impact", p.Impact)
	if len(p.Links) > 0 {
		b.WriteString("\n## Links\n\n")
		labels := make([]string, 0, len(p.Links))
		for label := range p.Links {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(&b, "- %s: %s\n", label, p.Links[label])
		}
	}
	return b.String()
}

func section(b *strings.Builder, heading, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n%s\n", heading, body)
}

// BuildMessages prepends the paper context to history. history must end with
// a user turn.
func BuildMessages(p models.Paper, history []llm.Message) ([]llm.Message, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}
	if history[len(history)-1].Role != llm.RoleUser {
		return nil, ErrLastNotUser
	}
	out := make([]llm.Message, 0, len(history)+2)
	out = append(out,
		llm.Message{Role: llm.RoleSystem, Content: SystemPrompt(p)},
		llm.Message{Role: llm.RoleAssistant, Content: Acknowledgement},
	)
	return append(out, history...), nil
}
