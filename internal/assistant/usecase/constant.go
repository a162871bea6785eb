package usecase

const (
	MsgSaveFailed = "I had trouble saving your task. Please try again."
)
