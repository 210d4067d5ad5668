package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/features/materials/dto"
	"sistema_mar_backend/internals/features/materials/model"
	helpers "sistema_mar_backend/internals/helpers"
	storage "sistema_mar_backend/internals/helpers/storage"
)

type MaterialController struct {
	DB       *gorm.DB
	Uploader storage.Uploader
}

func NewMaterialController(db *gorm.DB, uploader storage.Uploader) *MaterialController {
	return &MaterialController{DB: db, Uploader: uploader}
}

// GetAll lista materiais com filtros de categoria/tipo/plano e paginação.
func (ctrl *MaterialController) GetAll(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MaterialModel{})
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("material_category = ?", cat)
	}
	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		q = q.Where("material_type = ?", typ)
	}
	if plan := strings.TrimSpace(c.Query("plan_level")); plan != "" {
		q = q.Where("material_plan_level = ?", plan)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar materiais")
	}

	var materials []model.MaterialModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&materials).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar materiais")
	}

	pagination := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "", materials, &pagination)
}

// GetByID devolve um material.
func (ctrl *MaterialController) GetByID(c *fiber.Ctx) error {
	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", c.Params("id")).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Material não encontrado")
	}
	return helpers.JsonOK(c, "", material)
}

// Access incrementa o contador de acesso e devolve a URL do arquivo.
// O incremento é atômico no banco (UPDATE ... SET n = n + 1).
func (ctrl *MaterialController) Access(c *fiber.Ctx) error {
	id := c.Params("id")

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Material não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar material")
	}

	if err := ctrl.DB.Model(&model.MaterialModel{}).
		Where("material_id = ?", id).
		UpdateColumn("material_access_count", gorm.Expr("material_access_count + 1")).Error; err != nil {
		log.Println("[WARN] Falha ao incrementar acesso (não fatal):", err)
	}

	return helpers.JsonOK(c, "", fiber.Map{"file_url": material.MaterialFileURL})
}

// Create cadastra um material; o arquivo pode vir por multipart ("file",
// "thumbnail") ou como URL já hospedada no corpo JSON.
func (ctrl *MaterialController) Create(c *fiber.Ctx) error {
	var req dto.CreateMaterialRequest

	isMultipart := strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
	if isMultipart {
		req.Title = c.FormValue("title")
		req.Description = c.FormValue("description")
		req.Category = c.FormValue("category")
		req.Type = c.FormValue("type")
		req.PlanLevel = c.FormValue("plan_level", "basic")
	} else if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	if isMultipart {
		if file, err := c.FormFile("file"); err == nil {
			url, uerr := ctrl.Uploader.UploadFile("materials", file)
			if uerr != nil {
				log.Println("[ERROR] Upload de material:", uerr)
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha no upload do arquivo")
			}
			req.FileURL = url
		}
		if thumb, err := c.FormFile("thumbnail"); err == nil {
			url, uerr := ctrl.Uploader.UploadFile("materials/thumbnails", thumb)
			if uerr != nil {
				log.Println("[ERROR] Upload de thumbnail:", uerr)
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha no upload da thumbnail")
			}
			req.Thumbnail = &url
		}
	}

	if handled, err := helpers.ValidateStruct(c, req); handled {
		return err
	}
	if req.FileURL == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Material precisa de arquivo ou file_url")
	}

	material := model.MaterialModel{
		MaterialTitle:        req.Title,
		MaterialDescription:  req.Description,
		MaterialFileURL:      req.FileURL,
		MaterialThumbnailURL: req.Thumbnail,
		MaterialCategory:     req.Category,
		MaterialType:         req.Type,
		MaterialPlanLevel:    req.PlanLevel,
	}
	if err := ctrl.DB.Create(&material).Error; err != nil {
		log.Println("[ERROR] Falha ao criar material:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar material")
	}
	return helpers.JsonCreated(c, "Material criado", material)
}

// Update altera metadados do material.
func (ctrl *MaterialController) Update(c *fiber.Ctx) error {
	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", c.Params("id")).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Material não encontrado")
	}

	var req dto.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if handled, err := helpers.ValidateStruct(c, req); handled {
		return err
	}

	if req.Title != nil {
		material.MaterialTitle = *req.Title
	}
	if req.Description != nil {
		material.MaterialDescription = *req.Description
	}
	if req.Category != nil {
		material.MaterialCategory = *req.Category
	}
	if req.Type != nil {
		material.MaterialType = *req.Type
	}
	if req.PlanLevel != nil {
		material.MaterialPlanLevel = *req.PlanLevel
	}

	if err := ctrl.DB.Save(&material).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar material")
	}
	return helpers.JsonUpdated(c, "Material atualizado", material)
}

// Delete remove um material.
func (ctrl *MaterialController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.MaterialModel{}, "material_id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover material")
	}
	return helpers.JsonDeleted(c, "Material removido", fiber.Map{"material_id": id})
}
