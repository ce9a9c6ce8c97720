package models

// Estados de una encuesta. El campo se tolera como texto libre en la
// entrada, pero el código sólo distingue Activa del resto.
const (
	StatusActive = "Activa"
	StatusClosed = "Cerrada"
)

type Survey struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Channel  string `json:"channel"`
	Validity string `json:"validity_period"`
	Status   string `json:"status"`
	// Questions nunca es nil: se normaliza al cargar y se inicializa
	// vacío al crear.
	Questions []Question `json:"questions"`
}

type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// IsActive reports whether the survey is offered to respondents.
func (s Survey) IsActive() bool {
	return s.Status == StatusActive
}

// Clone returns a deep copy of the survey. Question ids are copied as-is;
// the caller is responsible for reassigning them when duplicating.
func (s Survey) Clone() Survey {
	out := s
	out.Questions = make([]Question, len(s.Questions))
	copy(out.Questions, s.Questions)
	return out
}
