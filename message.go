package sitesum

import "strings"

// Role identifies the author of a message in a completion request.
type Role string

// Message roles.
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// SystemPrompt sets up the assistant behaviour for every request.
const SystemPrompt = "You are an assistant that analyzes the contents of a website " +
	"and provides a short summary, ignoring text that might be navigation related. " +
	"Respond in markdown."

// Message is one turn of a completion request.
type Message struct {
	Role    Role
	Content string
}

// BuildMessages returns the system and user messages for a page.
// The page body is passed through verbatim.
func BuildMessages(content PageContent) []Message {
	return []Message{
		{Role: RoleSystem, Content: SystemPrompt},
		{Role: RoleUser, Content: BuildUserPrompt(content)},
	}
}

// BuildUserPrompt builds the user message naming the page title and
// carrying its full body text.
func BuildUserPrompt(content PageContent) string {
	var sb strings.Builder
	sb.WriteString("You are looking at a website titled '")
	sb.WriteString(content.Title)
	sb.WriteString("'. ")
	sb.WriteString("The contents of this website are as follows; " +
		"please provide a short summary of this website in markdown. ")
	sb.WriteString("If it includes news or announcements, " +
		"then summarize these too and include the main links with the summary.")
	sb.WriteString("\n\n")
	sb.WriteString(content.Body)
	return sb.String()
}

// ValidateMessages returns EINVALID unless messages is exactly one system
// message followed by one user message.
func ValidateMessages(messages []Message) error {
	if len(messages) != 2 {
		return Errorf(EINVALID, "expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != RoleSystem {
		return Errorf(EINVALID, "first message must have role %q, got %q", RoleSystem, messages[0].Role)
	}
	if messages[1].Role != RoleUser {
		return Errorf(EINVALID, "second message must have role %q, got %q", RoleUser, messages[1].Role)
	}
	return nil
}
