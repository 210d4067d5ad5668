package controller

import (
	"bytes"
	"encoding/csv"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/features/quiz/submission/service"
	helpers "sistema_mar_backend/internals/helpers"
)

// ExportController expõe as respostas consolidadas para o time de
// análise (listagem e CSV).
type ExportController struct {
	Store service.ConsolidatedStore
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{Store: service.NewGormStore(db)}
}

// GetAll lista as respostas consolidadas (admin).
func (ctrl *ExportController) GetAll(c *fiber.Ctx) error {
	rows, err := ctrl.Store.ListAll(c.UserContext())
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar respostas consolidadas")
	}
	return helpers.JsonOK(c, "", rows)
}

// ExportCSV entrega todas as respostas consolidadas em CSV.
func (ctrl *ExportController) ExportCSV(c *fiber.Ctx) error {
	rows, err := ctrl.Store.ListAll(c.UserContext())
	if err != nil {
		log.Println("[ERROR] [export] listagem:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao exportar respostas")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"submission_id", "user_id", "user_email", "full_name", "data_submissao", "respostas"}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar CSV")
	}
	for _, row := range rows {
		record := []string{
			row.RespostaSubmissionID.String(),
			row.RespostaUserID.String(),
			row.RespostaUserEmail,
			row.RespostaFullName,
			row.DataSubmissao.Format(time.RFC3339),
			string(row.Respostas),
		}
		if err := w.Write(record); err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar CSV")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="respostas_diagnostico.csv"`)
	return c.Send(buf.Bytes())
}
