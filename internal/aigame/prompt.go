package aigame

import "fmt"

const evaluationInstruction = "Evaluate the correctness of this answer. If incorrect, provide a helpful hint or explanation."

func BuildQuestionPrompt(req QuestionRequest) string {
	return fmt.Sprintf("Generate a %s learning question.", req.Topic)
}

func BuildEvaluationPrompt(req AnswerEvaluationRequest) string {
	return fmt.Sprintf(
		"Here is a learning question: %s\n"+
			"The user's answer: %s\n"+
			"%s",
		req.Question, req.Answer, evaluationInstruction,
	)
}
