package aigame

const DefaultTopic = "math"

type QuestionRequest struct {
	Topic string
}

// NewQuestionRequest falls back to DefaultTopic when no topic was supplied.
func NewQuestionRequest(topic string, supplied bool) QuestionRequest {
	if !supplied {
		topic = DefaultTopic
	}
	return QuestionRequest{Topic: topic}
}

type AnswerEvaluationRequest struct {
	Question string
	Answer   string
}

// evaluateAnswerPayload is the wire shape of POST /evaluate_answer. Pointers
// tell a missing field apart from an empty string.
type evaluateAnswerPayload struct {
	Question *string `json:"question" validate:"required"`
	Answer   *string `json:"answer" validate:"required"`
}

func (p evaluateAnswerPayload) toRequest() AnswerEvaluationRequest {
	return AnswerEvaluationRequest{Question: *p.Question, Answer: *p.Answer}
}

type QuestionResponse struct {
	Question string `json:"question"`
}

type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}
