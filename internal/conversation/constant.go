package conversation

import "regexp"

const (
	MsgGreeting = "Hi! I'm your task assistant. I can help you create tasks using your voice. You can say things like:\n\n" +
		"• 'Create a task'\n• 'I need to add multiple tasks'\n• 'Buy groceries tomorrow'\n• 'Schedule a meeting for Friday'\n\n" +
		"What would you like to do?"
	MsgParseError         = "I had trouble understanding that. Could you tell me what task you'd like to create?"
	MsgMultipleParseError = "I had trouble parsing multiple tasks. Could you try again, or create them one at a time?"
	MsgCancelled          = "No problem! I've cleared everything. What would you like to do next?"
	MsgStartFresh         = "Let's start fresh. How can I help you with your tasks today?"

	MsgAskTitle    = "What should I call this task?"
	MsgAskDueDate  = "When would you like this completed? You can say 'tomorrow', 'next Friday', 'in 3 days', or 'no date' to skip."
	MsgAskCategory = "What category does this belong to? For example: work, personal, shopping, or say 'skip' if you don't want to categorize it."
	MsgAskMore     = "I need a bit more information."
	MsgInvalidDate = "I didn't catch a valid date. You can say things like 'tomorrow', 'next Friday', 'in 3 days', or 'no date' to skip."

	MsgConfirmSingle   = "Perfect! Let me confirm what I understood:\n\n%s\n\nIs this correct? Say 'yes' to create the task, or 'no' to make changes."
	MsgConfirmMultiple = "Should I create all these tasks? Say 'yes' to confirm, or 'no' if you'd like to make changes."
	MsgFoundTasks      = "Great! I found %d tasks:\n\n"
	MsgCreated         = "Perfect! I've created %d %s for you. 🎉\n\nIs there anything else you'd like to add?"
	MsgConfirmUnclear  = "I didn't catch that. Please say 'yes' to create the task, or 'no' if you'd like to make changes."

	MsgEditPrompt = "No problem! What would you like to change? You can say things like:\n" +
		"• 'Change the date to Friday'\n• 'Make it high priority'\n• 'Change the title'\n• 'Start over'"
	MsgDateUpdated     = "Got it! Updated the due date to %s. Does this look correct now?"
	MsgPriorityUpdated = "Updated priority to %s. Does this look correct now?"
	MsgTitleUpdated    = "Updated the title to \"%s\". Does this look correct now?"
	MsgEditUnclear     = "I'm not sure what you'd like to change. Could you be more specific? For example: 'Change the date to Friday' or 'Make it high priority'"
)

var titleEditRe = regexp.MustCompile(`(?i)(?:title|name)(?:\s+to)?\s+(.+)`)
