package services

import (
	"strings"
	"time"

	"github.com/Alejomesa58/encuestas-poli/models"
	"github.com/Alejomesa58/encuestas-poli/storage"
	"github.com/Alejomesa58/encuestas-poli/utils"
)

// CollectorService recibe respuestas de encuestados. Es el único flujo que
// escribe en el store de respuestas; las respuestas nunca se editan ni se
// eliminan.
type CollectorService struct {
	store *storage.ResponseStore
	ids   utils.IDGenerator
	now   func() time.Time
}

func NewCollectorService(store *storage.ResponseStore, ids utils.IDGenerator) *CollectorService {
	return &CollectorService{store: store, ids: ids, now: time.Now}
}

// SelectTargetSurvey elige la encuesta que se ofrece al encuestado:
// la primera Activa en orden de colección; si ninguna está activa, la
// primera; con colección vacía no hay selección.
func SelectTargetSurvey(surveys []models.Survey) (models.Survey, bool) {
	if len(surveys) == 0 {
		return models.Survey{}, false
	}
	for _, sv := range surveys {
		if sv.IsActive() {
			return sv, true
		}
	}
	return surveys[0], true
}

// SubmitResponse siempre tiene éxito: no hay campos requeridos. Con
// surveyID vacío se registra el centinela sin-id en lugar de fallar,
// para conservar la respuesta.
func (s *CollectorService) SubmitResponse(surveyID, satisfaction, resolved, comments string) models.Response {
	if surveyID == "" {
		surveyID = models.NoSurveyID
	}
	r := models.Response{
		ID:           s.ids.NewID(),
		SurveyID:     surveyID,
		Timestamp:    s.now(),
		Satisfaction: satisfaction,
		Resolved:     resolved,
		Comments:     strings.TrimSpace(comments),
	}
	responses := s.store.Load()
	responses = append(responses, r)
	s.store.Save(responses)
	return r
}
