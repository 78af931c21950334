package gemini

import "strings"

// Friendly messages shown to users when generation fails. The raw provider
// error is logged for operators and never leaves the process.
const (
	MsgHighDemand   = "⚠️ I'm experiencing high demand right now. Please try again in a moment."
	MsgTimedOut     = "⚠️ That request took too long to process. Please try again."
	MsgConfigIssue  = "⚠️ There's a configuration issue on my end. Please contact the administrator."
	MsgConnectivity = "⚠️ I'm having trouble reaching the AI service. Please try again shortly."
	MsgGeneric      = "⚠️ I ran into a problem processing that. Please try again."
)

// Classify maps a provider failure to a user-facing message by keyword
// matching on the lowered error text, first match wins. Best effort: the
// SDK stringifies most failures, so substring checks are all we can rely
// on, and an uncategorized error still yields an actionable message.
func Classify(err error) string {
	text := strings.ToLower(err.Error())

	switch {
	case strings.Contains(text, "quota") || strings.Contains(text, "limit"):
		return MsgHighDemand
	case strings.Contains(text, "timeout") || strings.Contains(text, "deadline"):
		return MsgTimedOut
	case strings.Contains(text, "api") && strings.Contains(text, "key"):
		return MsgConfigIssue
	case strings.Contains(text, "network") || strings.Contains(text, "connection"):
		return MsgConnectivity
	default:
		return MsgGeneric
	}
}
