package dto

// Seed de um módulo completo, usado pela recuperação do catálogo.
// Cada pergunta pertence explicitamente ao módulo que a declara.
type ModuleSeed struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	OrderNumber int            `json:"order_number" validate:"required,min=1"`
	Questions   []QuestionSeed `json:"questions" validate:"required,min=1,dive"`
}

type QuestionSeed struct {
	Text        string   `json:"text" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Required    bool     `json:"required"`
	OrderNumber int      `json:"order_number" validate:"required,min=1"`
	Hint        *string  `json:"hint,omitempty"`
	MaxOptions  *int     `json:"max_options,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type CatalogSeed struct {
	Modules []ModuleSeed `json:"modules" validate:"required,min=1,dive"`
}

// Requests do CRUD administrativo.
type CreateQuestionRequest struct {
	ModuleID    string   `json:"module_id" validate:"required,uuid"`
	Text        string   `json:"text" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=text email number url instagram textarea radio checkbox"`
	Required    bool     `json:"required"`
	OrderNumber int      `json:"order_number" validate:"required,min=1"`
	Hint        *string  `json:"hint,omitempty"`
	MaxOptions  *int     `json:"max_options,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type UpdateQuestionRequest struct {
	Text       *string `json:"text,omitempty"`
	Required   *bool   `json:"required,omitempty"`
	Hint       *string `json:"hint,omitempty"`
	MaxOptions *int    `json:"max_options,omitempty"`
}

type ReplaceOptionsRequest struct {
	Options []string `json:"options" validate:"required,min=1"`
}
