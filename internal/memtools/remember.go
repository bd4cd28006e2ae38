package memtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/memdoc/internal/logging"
	"github.com/HendryAvila/memdoc/internal/registry"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mark3labs/mcp-go/mcp"
)

// RememberTool handles the remember_this MCP tool.
type RememberTool struct {
	memory Memory
}

// NewRememberTool creates a RememberTool.
func NewRememberTool(memory Memory) *RememberTool {
	return &RememberTool{memory: memory}
}

// Definition returns the MCP tool definition for remember_this.
func (t *RememberTool) Definition() mcp.Tool {
	return mcp.NewTool("remember_this",
		mcp.WithDescription("Append a provided conversation summary to the memory document"),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description(summaryGuidance),
		),
	)
}

// Handle processes the remember_this tool call.
func (t *RememberTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary := strings.TrimSpace(req.GetString("summary", ""))
	if summary == "" {
		return nil, registry.InvalidArguments("Summary cannot be empty")
	}

	if err := t.memory.AppendEntry(ctx, summary); err != nil {
		logging.FromContext(ctx).WithError(err).Error("writing to memory document")
		return mcp.NewToolResultText(fmt.Sprintf("Failed to store summary: %v", err)), nil
	}

	return mcp.NewToolResultText("Your conversation summary has been stored successfully!"), nil
}

// summaryGuidance tells the assistant how to write the summary it stores.
var summaryGuidance = heredoc.Doc(`
	Create a beautifully written narrative summary of our conversation that captures both content and context. Structure as follows:

	OPENING CONTEXT
	Begin with a brief metadata header in a natural way:
	"On [date] at [time], we spent [duration] exploring [primary topics]. Over the course of our [length] conversation..."

	CONVERSATION NARRATIVE
	For Brief Exchanges (< 200 words):
	- Craft a vivid 1-2 paragraph summary capturing the essence of our discussion
	- Weave in key decisions: "You were particularly clear about..."
	- Note action items: "We agreed to follow up on..."
	- Highlight important terms naturally: "You introduced me to the concept of..."

	For Medium Conversations (200-800 words):
	- Develop a flowing 3-4 paragraph narrative
	- Mark conversation shifts: "Our discussion evolved from... to..."
	- Include impactful quotes: "Your words resonated when you said..."
	- Capture emotional moments: "There was genuine excitement when..."
	- Highlight key concepts organically: "We explored the fascinating idea of..."

	For Extended Discussions (800+ words):
	The Journey:
	- Set the scene with opening context
	- Track the natural progression of ideas
	- Include pivotal quotes that shaped our understanding
	- Note how topics built upon each other

	Personal Insights:
	- Weave in shared experiences: "You recalled a time when..."
	- Include meaningful relationships discussed
	- Capture expressed values and preferences
	- Note personal revelations or discoveries

	Emotional Landscape:
	- Document significant reactions
	- Describe engagement patterns
	- Note areas of particular interest or concern
	- Capture moments of connection or insight

	FUTURE PATHWAYS
	End with 3-5 thoughtful suggestions for future conversations, each including:
	1. A natural connection to our discussion: "Building on your interest in..."
	2. A relevant quote that sparked this direction
	3. Thoughts on timing: "This might be particularly relevant when..."
	4. Potential exploration angles
	5. Connection to your broader interests or goals

	Writing Guidelines:
	- Use natural, flowing language
	- Incorporate quotes seamlessly into the narrative
	- Maintain a warm, personal tone
	- Focus on insights and connections
	- Create clear transitions between topics
	- End with forward-looking possibilities

	Remember to:
	- Scale detail based on conversation length while maintaining narrative flow
	- Include specific quotes that capture key moments
	- Preserve context around important points
	- Note elements worth revisiting
	- Connect past discussions to future possibilities
`)
