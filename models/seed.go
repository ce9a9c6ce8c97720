package models

// SeedSurvey describe una encuesta semilla antes de asignarle ids.
// También es la forma que acepta el archivo SEED_FILE (YAML).
type SeedSurvey struct {
	Name      string   `yaml:"name"`
	Channel   string   `yaml:"channel"`
	Validity  string   `yaml:"validity_period"`
	Status    string   `yaml:"status"`
	Questions []string `yaml:"questions"`
}

// DefaultSeed is the fixed survey set used to initialize empty or
// corrupted storage.
func DefaultSeed() []SeedSurvey {
	return []SeedSurvey{
		{
			Name:     "Satisfacción atención telefónica",
			Channel:  "Web + WhatsApp",
			Validity: "01/11/2025 - 30/11/2025",
			Status:   StatusActive,
			Questions: []string{
				"¿Qué tan satisfecho(a) estás con la atención recibida?",
				"¿El asesor resolvió tu necesidad?",
				"Comentarios adicionales",
			},
		},
		{
			Name:     "Satisfacción envío de productos",
			Channel:  "Web",
			Validity: "01/10/2025 - 31/10/2025",
			Status:   StatusClosed,
			Questions: []string{
				"¿Llegó el producto en buen estado?",
				"¿El tiempo de entrega fue adecuado?",
			},
		},
	}
}
