// Package prompts implements MCP prompt handlers for the memory tools.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to call a tool. Unlike tools (which the AI calls),
// prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// RememberPrompt handles the remember MCP prompt.
// It asks the AI to summarise the conversation and store it with remember_this.
type RememberPrompt struct{}

// NewRememberPrompt creates a RememberPrompt.
func NewRememberPrompt() *RememberPrompt {
	return &RememberPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *RememberPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("remember",
		mcp.WithPromptDescription(
			"Save this conversation to memory. "+
				"The assistant writes a narrative summary and stores it in the memory document.",
		),
		mcp.WithArgument("focus",
			mcp.ArgumentDescription("Optional topic the summary should pay special attention to"),
		),
	)
}

// Handle processes the remember prompt request.
func (p *RememberPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	focus := ""
	if args := req.Params.Arguments; args != nil {
		focus = strings.TrimSpace(args["focus"])
	}

	text := "Please summarise our conversation so far and store it by calling `remember_this` " +
		"with the summary as the `summary` argument.\n\n" +
		"Follow the structure described in the tool's parameter description, " +
		"then tell me whether it was stored."
	if focus != "" {
		text += fmt.Sprintf("\n\nPay special attention to: %s", focus)
	}

	return &mcp.GetPromptResult{
		Description: "Remember this conversation",
		Messages: []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	}, nil
}
