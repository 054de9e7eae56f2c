package prompt

// Cosmetic text written around the questions
const (
	mandatoryMark = "❗ "
	inputArrow    = "\n➜ "

	MsgHeader = "\n==========================================\n" +
		"      [❗] – Questions are mandatory     \n" +
		"==========================================\n"
	MsgSeparator = "\n·················································· \n"
	MsgMandatory = "\n 🚨 This question is mandatory. Please provide an answer. \n"
)
