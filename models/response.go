package models

import "time"

// NoSurveyID se registra cuando una respuesta llega sin encuesta asociada.
// Se conserva la respuesta en lugar de descartarla.
const NoSurveyID = "sin-id"

type Response struct {
	ID string `json:"id"`
	// SurveyID es una referencia débil: la encuesta puede haber sido
	// eliminada después (no hay cascada).
	SurveyID     string    `json:"survey_id"`
	Timestamp    time.Time `json:"timestamp"`
	Satisfaction string    `json:"satisfaction"`
	Resolved     string    `json:"resolved"`
	Comments     string    `json:"comments"`
}
