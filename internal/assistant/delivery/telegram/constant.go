package telegram

const (
	secretHeader = "X-Telegram-Bot-Api-Secret-Token"

	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdReset = "/reset"

	msgHelp = "Send me a task in plain words and I'll walk you through saving it.\n\n" +
		"Examples:\n• Buy groceries tomorrow\n• Add call the dentist next Friday, high priority\n• 1. milk 2. eggs 3. bread\n\n" +
		"Say 'yes' to confirm, 'no' to edit, or 'cancel' to start over. /reset clears the conversation."
	msgReset      = "Conversation cleared. What would you like to do?"
	msgVoiceNote  = "I can't listen to voice notes here yet. Please type your task."
	msgFailed     = "Something went wrong while handling your message. Please try again."
	msgSavedTitle = "Saved:"
)
