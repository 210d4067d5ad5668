package database

import (
	"log"

	materialModel "sistema_mar_backend/internals/features/materials/model"
	catalogModel "sistema_mar_backend/internals/features/quiz/catalog/model"
	submissionModel "sistema_mar_backend/internals/features/quiz/submission/model"
	authModel "sistema_mar_backend/internals/features/users/auth/model"
	userModel "sistema_mar_backend/internals/features/users/user/model"
)

// Migrate aplica o schema via AutoMigrate. A ordem respeita as FKs.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&catalogModel.ModuleModel{},
		&catalogModel.QuestionModel{},
		&catalogModel.OptionModel{},
		&submissionModel.SubmissionModel{},
		&submissionModel.AnswerModel{},
		&submissionModel.ConsolidatedResponseModel{},
		&materialModel.MaterialModel{},
	)
	if err != nil {
		log.Fatalf("❌ Falha no AutoMigrate: %v", err)
	}
	log.Println("✅ Migrations aplicadas.")
}
