package aigame

import (
	"net/http"

	"github.com/saulo-duarte/genai-learning-games/internal/config"
)

const welcomeMessage = "Welcome to the GenAI Learning Games API!"

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Welcome godoc
// @Summary  Welcome message
// @Produce  json
// @Success  200 {object} WelcomeResponse
// @Router   / [get]
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, WelcomeResponse{Message: welcomeMessage})
}

// GenerateQuestion godoc
// @Summary  Generate a learning question
// @Produce  json
// @Param    topic query string false "Question topic" default(math)
// @Success  200 {object} QuestionResponse
// @Failure  400,429,500 {object} config.DetailResponse
// @Router   /generate_question [get]
func (h *Handler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := NewQuestionRequest(query.Get("topic"), query.Has("topic"))

	resp, err := h.service.GenerateQuestion(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// EvaluateAnswer godoc
// @Summary  Evaluate an answer to a learning question
// @Accept   json
// @Produce  json
// @Success  200 {object} FeedbackResponse
// @Failure  400,429,500 {object} config.DetailResponse
// @Failure  422 {object} ValidationErrorResponse
// @Router   /evaluate_answer [post]
func (h *Handler) EvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	req, issues := decodeEvaluateAnswer(r.Body)
	if issues != nil {
		log.WithField("issues", issues).Warn("Invalid evaluate_answer body")
		config.JSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: issues})
		return
	}

	resp, err := h.service.EvaluateAnswer(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := StatusAndDetail(err)
	log := config.WithContext(r.Context()).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed")
	} else {
		log.Warn("Request rejected")
	}
	config.Detail(w, status, detail)
}
