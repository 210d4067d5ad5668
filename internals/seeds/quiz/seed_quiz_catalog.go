package quiz

import (
	"encoding/json"
	"fmt"
	"os"

	"sistema_mar_backend/internals/features/quiz/catalog/dto"
)

// Caminho do seed oficial versionado no repositório.
const DefaultSeedPath = "internals/seeds/quiz/data_quiz_catalog.json"

// LoadCatalogSeed lê e decodifica o seed do catálogo. O vínculo
// pergunta→módulo é explícito no arquivo: cada pergunta vive dentro do
// módulo que a declara.
func LoadCatalogSeed(filePath string) (*dto.CatalogSeed, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("ler %s: %w", filePath, err)
	}

	var seed dto.CatalogSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", filePath, err)
	}
	return &seed, nil
}
