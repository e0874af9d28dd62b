package models

import "encoding/json"

// RecommendationSource distinguishes documents produced by the external
// model from documents synthesized by the deterministic fallback engine.
type RecommendationSource string

const (
	RecommendationByModel    RecommendationSource = "model"
	RecommendationByFallback RecommendationSource = "fallback"
)

// RecommendationDocument is the five-section report delivered to the
// client. The wire keys match the original RizoTipo report format, which
// the frontend already understands.
type RecommendationDocument struct {
	Secciones Secciones `json:"secciones"`
}

type Secciones struct {
	Resultados    Seccion `json:"A"`
	Lavado        Seccion `json:"B"`
	Tratamientos  Seccion `json:"C"`
	Definicion    Seccion `json:"D"`
	CuidadosExtra Seccion `json:"E"`
}

type Seccion struct {
	Titulo    string   `json:"titulo"`
	Contenido []string `json:"contenido"`
}

// Valid reports whether every section carries a title and at least one
// content line. Model output that fails this check is unusable.
func (document *RecommendationDocument) Valid() bool {
	sections := []Seccion{
		document.Secciones.Resultados,
		document.Secciones.Lavado,
		document.Secciones.Tratamientos,
		document.Secciones.Definicion,
		document.Secciones.CuidadosExtra,
	}
	for _, section := range sections {
		if section.Titulo == "" || len(section.Contenido) == 0 {
			return false
		}
	}
	return true
}

// Serialize renders the document as the opaque resultado_agente string
// returned at the HTTP boundary. Internal consumers keep the struct.
func (document *RecommendationDocument) Serialize() (string, error) {
	raw, err := json.Marshal(document)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
