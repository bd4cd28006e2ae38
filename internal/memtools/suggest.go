package memtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/memdoc/internal/format"
	"github.com/HendryAvila/memdoc/internal/logging"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mark3labs/mcp-go/mcp"
)

// SuggestTopicTool handles the suggest_topic MCP tool.
type SuggestTopicTool struct {
	memory Memory
}

// NewSuggestTopicTool creates a SuggestTopicTool.
func NewSuggestTopicTool(memory Memory) *SuggestTopicTool {
	return &SuggestTopicTool{memory: memory}
}

// Definition returns the MCP tool definition for suggest_topic.
func (t *SuggestTopicTool) Definition() mcp.Tool {
	return mcp.NewTool("suggest_topic",
		mcp.WithDescription(suggestGuidance),
	)
}

// Handle reads every stored memory and wraps it in analysis instructions.
func (t *SuggestTopicTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := t.memory.ReadAll(ctx)
	if err != nil {
		logging.FromContext(ctx).WithError(err).Error("reading memory document")
		return mcp.NewToolResultText(fmt.Sprintf("Failed to retrieve memories: %v", err)), nil
	}

	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultText("No memories stored yet."), nil
	}

	return mcp.NewToolResultText(format.TopicPrompt(text)), nil
}

var suggestGuidance = heredoc.Doc(`
	When asked to suggest a topic for the next conversation, analyze previous conversation memories to suggest a meaningful topic for discussion. Structure your suggestion as follows:

	Primary Topic Suggestion
	- Identify a specific topic worth exploring, based on:
	  * Unresolved questions from previous conversations
	  * Expressed interests that weren't fully explored
	  * Emotional topics that may benefit from follow-up
	  * Previously mentioned future events that may now be relevant
	  * Personal goals or challenges that were discussed

	Supporting Evidence
	- Include specific quotes from previous conversations that relate to this topic:
	  * Direct questions that weren't fully answered: "..."
	  * Statements showing interest in learning more: "..."
	  * Expressions of concern or curiosity: "..."
	  * Mentions of future plans or aspirations: "..."

	Connection to Previous Conversations
	- Explain why this topic is relevant now:
	  * Reference how much time has passed since related discussions
	  * Note any upcoming events or deadlines mentioned
	  * Connect to previously expressed emotions or concerns
	  * Identify potential developments in ongoing situations

	Alternative Angles
	- Suggest 2-3 different approaches to exploring this topic:
	  * Different perspectives to consider
	  * Related subtopics that might be interesting
	  * New developments that could affect the discussion

	Present your suggestion in a natural, narrative format that shows clear understanding of the user's context and history. Focus on topics that would lead to meaningful engagement rather than surface-level discussion.
`)
