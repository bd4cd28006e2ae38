package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// SuggestTopicPrompt handles the suggest-topic MCP prompt.
type SuggestTopicPrompt struct{}

// NewSuggestTopicPrompt creates a SuggestTopicPrompt.
func NewSuggestTopicPrompt() *SuggestTopicPrompt {
	return &SuggestTopicPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *SuggestTopicPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("suggest-topic",
		mcp.WithPromptDescription(
			"Get a suggestion for what to talk about next, based on stored conversation memories.",
		),
	)
}

// Handle processes the suggest-topic prompt request.
func (p *SuggestTopicPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Suggest a conversation topic",
		Messages: []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
				"Please call `suggest_topic` to read my stored memories.\n\n"+
					"Then:\n"+
					"1. Suggest one topic for our next conversation\n"+
					"2. Quote the earlier conversations that support it\n"+
					"3. Offer two or three other angles I could take\n"+
					"4. If there are no memories yet, just tell me so",
			)),
		},
	}, nil
}
