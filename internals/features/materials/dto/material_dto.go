package dto

type CreateMaterialRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=255"`
	Description string  `json:"description"`
	FileURL     string  `json:"file_url" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required,max=100"`
	Type        string  `json:"type" validate:"required,oneof=document video link other"`
	PlanLevel   string  `json:"plan_level" validate:"required,oneof=basic intermediate premium"`
	Thumbnail   *string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
}

type UpdateMaterialRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=document video link other"`
	PlanLevel   *string `json:"plan_level,omitempty" validate:"omitempty,oneof=basic intermediate premium"`
}
