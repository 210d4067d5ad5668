package seeds

import (
	"context"
	"log"

	"gorm.io/gorm"

	"sistema_mar_backend/internals/features/quiz/catalog/service"
	quizSeed "sistema_mar_backend/internals/seeds/quiz"
)

// RunAllSeeds popula o banco com o catálogo oficial do diagnóstico.
// Usado em ambiente novo; em produção a recuperação é disparada pela
// rota administrativa.
func RunAllSeeds(db *gorm.DB) {
	seed, err := quizSeed.LoadCatalogSeed(quizSeed.DefaultSeedPath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler seed do catálogo: %v", err)
	}

	svc := service.NewRecoveryService(db)
	if err := svc.Rebuild(context.Background(), seed); err != nil {
		log.Fatalf("❌ Falha ao aplicar seed do catálogo: %v", err)
	}
	log.Println("✅ Seed do catálogo aplicado.")
}
