package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "sistema_mar_backend/internals/features/quiz/catalog/model"
	"sistema_mar_backend/internals/features/quiz/submission/dto"
	"sistema_mar_backend/internals/features/quiz/submission/model"
	"sistema_mar_backend/internals/features/quiz/submission/service"
	helpers "sistema_mar_backend/internals/helpers"
)

// QuizController orquestra o fluxo do diagnóstico: estado, respostas,
// navegação e finalização.
type QuizController struct {
	DB         *gorm.DB
	Store      service.Store
	Answers    *service.AnswerService
	Completion *service.CompletionService
}

func NewQuizController(db *gorm.DB, webhook service.WebhookDispatcher) *QuizController {
	store := service.NewGormStore(db)
	consolidator := service.NewConsolidationService(store, store)
	return &QuizController{
		DB:         db,
		Store:      store,
		Answers:    service.NewAnswerService(store, store),
		Completion: service.NewCompletionService(store, consolidator, webhook),
	}
}

// questionsPerModule devolve a contagem de perguntas por módulo,
// na ordem dos módulos.
func (ctrl *QuizController) questionsPerModule(c *fiber.Ctx) ([]int, error) {
	var modules []catalogModel.ModuleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("module_order_number ASC").Find(&modules).Error; err != nil {
		return nil, err
	}

	counts := make([]int, 0, len(modules))
	for _, m := range modules {
		var n int64
		if err := ctrl.DB.WithContext(c.UserContext()).
			Model(&catalogModel.QuestionModel{}).
			Where("question_module_id = ?", m.ModuleID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		counts = append(counts, int(n))
	}
	return counts, nil
}

// GetState resolve (ou cria) a submissão do usuário e devolve a posição
// para retomada. Submissão já concluída curto-circuita para a tela de
// respostas, a menos que ?force=true.
func (ctrl *QuizController) GetState(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	email, _ := c.Locals("user_email").(string)

	counts, err := ctrl.questionsPerModule(c)
	if err != nil {
		log.Println("[ERROR] [quizState] catálogo:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar o catálogo do diagnóstico")
	}
	if len(counts) == 0 {
		return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Catálogo do diagnóstico indisponível")
	}

	sub, err := ctrl.Store.EnsureForUser(c.UserContext(), userID, email)
	if err != nil {
		serr := service.WrapStoreError("resolver submissão", err)
		return helpers.JsonErrorWithDetails(c, fiber.StatusInternalServerError, serr.Message, serr)
	}

	state := dto.QuizStateResponse{
		SubmissionID:  sub.SubmissionID.String(),
		Status:        sub.SubmissionStatus,
		Completed:     sub.SubmissionCompleted,
		CurrentModule: sub.SubmissionCurrentModule,
		TotalModules:  len(counts),
	}

	if sub.SubmissionCompleted && c.Query("force") != "true" {
		state.ViewAnswers = true
		return helpers.JsonOK(c, "Diagnóstico já concluído", state)
	}

	// retoma do módulo persistido (1-based no banco, zero-based aqui)
	moduleIndex := sub.SubmissionCurrentModule - 1
	if moduleIndex < 0 {
		moduleIndex = 0
	}
	if moduleIndex >= len(counts) {
		moduleIndex = len(counts) - 1
	}
	state.ModuleIndex = moduleIndex
	state.QuestionIndex = 0

	return helpers.JsonOK(c, "", state)
}

// SaveAnswer grava a resposta de uma pergunta (upsert idempotente).
func (ctrl *QuizController) SaveAnswer(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	email, _ := c.Locals("user_email").(string)

	var req dto.SaveAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if handled, err := helpers.ValidateStruct(c, req); handled {
		return err
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "question_id inválido")
	}

	scalar, multi, isMulti, err := req.DecodeAnswer()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var value service.AnswerValue
	if isMulti {
		value = service.MultiValueOf(multi)
	} else {
		value = service.ScalarValue(scalar)
	}

	result, serr := ctrl.Answers.SaveAnswer(c.UserContext(), userID, email, questionID, value)
	if serr != nil {
		return helpers.JsonErrorWithDetails(c, fiber.StatusInternalServerError, serr.Message, serr)
	}
	return helpers.JsonOK(c, "Resposta gravada", result)
}

// Advance avança a posição e persiste o novo current_module ANTES de
// devolvê-lo; ao passar da última pergunta, troca o status para review.
func (ctrl *QuizController) Advance(c *fiber.Ctx) error {
	return ctrl.move(c, true)
}

// Previous recua a posição (espelho do Advance, sem transição de review).
func (ctrl *QuizController) Previous(c *fiber.Ctx) error {
	return ctrl.move(c, false)
}

func (ctrl *QuizController) move(c *fiber.Ctx, forward bool) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	email, _ := c.Locals("user_email").(string)

	var req dto.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	counts, err := ctrl.questionsPerModule(c)
	if err != nil || len(counts) == 0 {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar o catálogo do diagnóstico")
	}

	sub, err := ctrl.Store.EnsureForUser(c.UserContext(), userID, email)
	if err != nil {
		serr := service.WrapStoreError("resolver submissão", err)
		return helpers.JsonErrorWithDetails(c, fiber.StatusInternalServerError, serr.Message, serr)
	}

	pos := service.Position{ModuleIndex: req.ModuleIndex, QuestionIndex: req.QuestionIndex}

	if !forward {
		next := service.Previous(pos, counts)
		if next.ModuleIndex != pos.ModuleIndex {
			if err := ctrl.Store.UpdateCurrentModule(c.UserContext(), sub.SubmissionID, next.ModuleIndex+1); err != nil {
				serr := service.WrapStoreError("persistir posição", err)
				return helpers.JsonErrorWithDetails(c, fiber.StatusInternalServerError, serr.Message, serr)
			}
		}
		return helpers.JsonOK(c, "", fiber.Map{"position": next, "review": false})
	}

	next, review := service.Advance(pos, counts)
	if review {
		if err := ctrl.Store.UpdateStatus(c.UserContext(), sub.SubmissionID, model.SubmissionStatusReview); err != nil {
			serr := service.WrapStoreError("persistir status de revisão", err)
			return helpers.JsonErrorWithDetails(c, fiber.StatusInternalServerError, serr.Message, serr)
		}
		return helpers.JsonOK(c, "Diagnóstico pronto para revisão", fiber.Map{"position": next, "review": true})
	}
	if next.ModuleIndex != pos.ModuleIndex {
		// persiste antes de exibir — current_module nunca anda para trás aqui
		if err := ctrl.Store.UpdateCurrentModule(c.UserContext(), sub.SubmissionID, next.ModuleIndex+1); err != nil {
			serr := service.WrapStoreError("persistir posição", err)
			return helpers.JsonErrorWithDetails(c, fiber.StatusInternalServerError, serr.Message, serr)
		}
	}
	return helpers.JsonOK(c, "", fiber.Map{"position": next, "review": false})
}

// Complete dispara a reconciliação de finalização (três estratégias).
// Falha devolve o erro estruturado com os detalhes técnicos crus para
// triagem de suporte; o usuário pode tentar de novo sem perder respostas.
func (ctrl *QuizController) Complete(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	result, serr := ctrl.Completion.CompleteQuiz(c.UserContext(), userID)
	if serr != nil {
		return helpers.JsonErrorWithDetails(c, fiber.StatusInternalServerError,
			"Não foi possível finalizar o diagnóstico", serr)
	}
	return helpers.JsonOK(c, "Diagnóstico finalizado com sucesso", result)
}

// MyAnswers devolve as respostas do usuário juntadas ao texto das
// perguntas (tela de revisão / visualização pós-conclusão).
func (ctrl *QuizController) MyAnswers(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	sub, err := ctrl.Store.FindByUserID(c.UserContext(), userID)
	if err != nil {
		serr := service.WrapStoreError("resolver submissão", err)
		return helpers.JsonErrorWithDetails(c, fiber.StatusInternalServerError, serr.Message, serr)
	}
	if sub == nil {
		return helpers.JsonOK(c, "", fiber.Map{"answers": []any{}})
	}

	rows, err := ctrl.Store.ListBySubmission(c.UserContext(), sub.SubmissionID)
	if err != nil {
		serr := service.WrapStoreError("listar respostas", err)
		return helpers.JsonErrorWithDetails(c, fiber.StatusInternalServerError, serr.Message, serr)
	}

	type answerView struct {
		QuestionID   uuid.UUID `json:"question_id"`
		QuestionText string    `json:"question_text"`
		Answer       any       `json:"answer"`
	}
	answers := make([]answerView, 0, len(rows))
	for _, row := range rows {
		answers = append(answers, answerView{
			QuestionID:   row.QuestionID,
			QuestionText: row.QuestionText,
			Answer:       service.DecodeAnswerValue(row.AnswerText).Raw(),
		})
	}
	return helpers.JsonOK(c, "", fiber.Map{
		"submission": sub,
		"answers":    answers,
	})
}
