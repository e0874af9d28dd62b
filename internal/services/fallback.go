package services

import (
	"fmt"
	"strings"

	"github.com/rizosfelices/rizotipo/internal/models"
)

// The fallback engine maps the raw questionnaire answers to a canned
// five-section report when the model's output is unusable. Matching is
// case-insensitive substring matching against the free text; anything
// that hits no marker lands on the default branch (the row with no
// markers, which must come last).
type fallbackBranch struct {
	markers []string
	lines   []string
}

var washBranches = []fallbackBranch{
	{
		markers: []string{"alta", "rapido", "diario"},
		lines: []string{
			"Tecnica CO-POO",
			"Acondicionador en medios y puntas",
			"Shampoo en raiz",
			"Enjuagar sin repetir acondicionador",
			"Frecuencia: diario o dia de por medio",
		},
	},
	{
		lines: []string{
			"Tecnica ASA",
			"Aplicar acondicionante",
			"Shampoo en raiz dos veces",
			"Acondicionador en medios y puntas",
			"Frecuencia: cada 3-4 dias",
		},
	},
}

var treatmentBranches = []fallbackBranch{
	{
		markers: []string{"baja", "no"},
		lines:   []string{"Pre-lavado obligatorio: mascarilla + crema 3 en 1 + aceite + Leavein 15 min antes de lavar"},
	},
	{
		lines: []string{"Mascarillas despues del shampoo, peinar 5-10 veces"},
	},
}

var stylingBranches = []fallbackBranch{
	{
		markers: []string{"ondulado"},
		lines:   []string{"Praying hands + scrunch intensivo, Gel en dos momentos"},
	},
	{
		markers: []string{"afro"},
		lines:   []string{"Pre-lavado obligatorio, Definicion rizo a rizo con Leavein + gel, Mantener cabello muy mojado"},
	},
	{
		lines: []string{"Definicion con cepillo por lineas, Rizo a rizo en coronilla y contornos"},
	},
}

func matchBranch(answer string, branches []fallbackBranch) []string {
	normalized := strings.ToLower(answer)
	for _, branch := range branches {
		for _, marker := range branch.markers {
			if strings.Contains(normalized, marker) {
				return branch.lines
			}
		}
		if len(branch.markers) == 0 {
			return branch.lines
		}
	}
	return nil
}

// FallbackRecommendation deterministically synthesizes the five-section
// report from the intake answers. It always produces a valid document.
func FallbackRecommendation(intake models.Intake) models.RecommendationDocument {
	washLines := append([]string{}, matchBranch(intake.Oiliness, washBranches)...)
	washLines = append(washLines, "Detox capilar mensual con shampoo Rizos Felices aplicado en cabello seco")

	treatmentLines := append([]string{}, matchBranch(intake.Plasticity, treatmentBranches)...)
	treatmentLines = append(treatmentLines,
		"Lavado normal",
		"Tratamientos nutritivos y fortalecedores",
	)

	stylingLines := append([]string{}, matchBranch(intake.Texture, stylingBranches)...)
	stylingLines = append(stylingLines, fmt.Sprintf("Usar productos adecuados para grosor %s", intake.Thickness))

	return models.RecommendationDocument{
		Secciones: models.Secciones{
			Resultados: models.Seccion{
				Titulo: "Resultados del Diagnostico",
				Contenido: []string{
					fmt.Sprintf("Plasticidad: %s", intake.Plasticity),
					fmt.Sprintf("Permeabilidad: %s", intake.Permeability),
					fmt.Sprintf("Densidad: %s", intake.Density),
					fmt.Sprintf("Porosidad: %s", intake.Porosity),
					fmt.Sprintf("Oleosidad: %s", intake.Oiliness),
					fmt.Sprintf("Grosor: %s", intake.Thickness),
					fmt.Sprintf("Textura: %s", intake.Texture),
				},
			},
			Lavado: models.Seccion{
				Titulo:    "Recomendaciones de Lavado",
				Contenido: washLines,
			},
			Tratamientos: models.Seccion{
				Titulo:    "Tratamientos",
				Contenido: treatmentLines,
			},
			Definicion: models.Seccion{
				Titulo:    "Definicion y Styling",
				Contenido: stylingLines,
			},
			CuidadosExtra: models.Seccion{
				Titulo: "Cuidados Extra",
				Contenido: []string{
					"Dormir con gorro de satin",
					"Hacer pina o usar rizo protector durante la noche",
				},
			},
		},
	}
}
