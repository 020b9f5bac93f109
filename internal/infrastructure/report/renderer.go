package report

import (
	"log"

	"insumos_limpeza/internal/domain/entities"
)

// Renderer produces the downloadable and e-mailed report documents.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) PDF(rec entities.CalculationRecord) ([]byte, error) {
	b, err := GeneratePDF(rec)
	if err != nil {
		log.Printf("[report][pdf] render failed id=%s err=%v", rec.ID, err)
		return nil, err
	}
	log.Printf("[report][pdf] rendered id=%s bytes=%d", rec.ID, len(b))
	return b, nil
}

func (r *Renderer) XLSX(rec entities.CalculationRecord) ([]byte, error) {
	b, err := GenerateXLSX(rec)
	if err != nil {
		log.Printf("[report][xlsx] render failed id=%s err=%v", rec.ID, err)
		return nil, err
	}
	log.Printf("[report][xlsx] rendered id=%s bytes=%d", rec.ID, len(b))
	return b, nil
}
