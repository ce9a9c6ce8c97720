package services

import (
	"strings"

	"github.com/Alejomesa58/encuestas-poli/models"
	"github.com/Alejomesa58/encuestas-poli/storage"
	"github.com/Alejomesa58/encuestas-poli/utils"
)

// AdminService es el único flujo que muta la colección de encuestas.
// Cada operación carga la colección, la modifica en memoria y persiste
// inmediatamente. Actuar sobre un id que ya no existe es un no-op
// silencioso: en un modelo mono-usuario la causa más probable es una
// vista desactualizada.
type AdminService struct {
	store *storage.SurveyStore
	ids   utils.IDGenerator
}

func NewAdminService(store *storage.SurveyStore, ids utils.IDGenerator) *AdminService {
	return &AdminService{store: store, ids: ids}
}

// ListSurveys devuelve la colección completa.
func (s *AdminService) ListSurveys() []models.Survey {
	return s.store.Load()
}

// GetSurvey busca una encuesta por id. ok=false si no existe.
func (s *AdminService) GetSurvey(id string) (models.Survey, bool) {
	for _, sv := range s.store.Load() {
		if sv.ID == id {
			return sv, true
		}
	}
	return models.Survey{}, false
}

// CreateSurvey valida nombre y vigencia (no vacíos tras recortar espacios),
// asigna un id nuevo y agrega la encuesta con preguntas vacías.
func (s *AdminService) CreateSurvey(name, channel, validity, status string) (models.Survey, error) {
	name = strings.TrimSpace(name)
	validity = strings.TrimSpace(validity)
	if name == "" || validity == "" {
		return models.Survey{}, validationErr("completa el nombre y la vigencia")
	}

	sv := models.Survey{
		ID:        s.ids.NewID(),
		Name:      name,
		Channel:   channel,
		Validity:  validity,
		Status:    status,
		Questions: []models.Question{},
	}
	surveys := s.store.Load()
	surveys = append(surveys, sv)
	s.store.Save(surveys)
	return sv, nil
}

// UpdateSurvey aplica los mismos requisitos de validación que CreateSurvey.
// Si el id no existe la llamada no crea nada: devuelve ok=false sin error.
func (s *AdminService) UpdateSurvey(id, name, channel, validity, status string) (models.Survey, bool, error) {
	name = strings.TrimSpace(name)
	validity = strings.TrimSpace(validity)
	if name == "" || validity == "" {
		return models.Survey{}, false, validationErr("completa el nombre y la vigencia")
	}

	surveys := s.store.Load()
	for i := range surveys {
		if surveys[i].ID != id {
			continue
		}
		surveys[i].Name = name
		surveys[i].Channel = channel
		surveys[i].Validity = validity
		surveys[i].Status = status
		s.store.Save(surveys)
		return surveys[i], true, nil
	}
	return models.Survey{}, false, nil
}

// DuplicateSurvey produce una copia profunda: id nuevo para la encuesta y
// para cada pregunta (el texto se conserva), nombre con sufijo " (copia)".
// Id inexistente: no-op.
func (s *AdminService) DuplicateSurvey(id string) (models.Survey, bool) {
	surveys := s.store.Load()
	for _, sv := range surveys {
		if sv.ID != id {
			continue
		}
		dup := sv.Clone()
		dup.ID = s.ids.NewID()
		dup.Name = sv.Name + " (copia)"
		for i := range dup.Questions {
			dup.Questions[i].ID = s.ids.NewID()
		}
		surveys = append(surveys, dup)
		s.store.Save(surveys)
		return dup, true
	}
	return models.Survey{}, false
}

// DeleteSurvey quita la encuesta y persiste. No toca las respuestas: las
// que referencian el id eliminado quedan colgantes.
func (s *AdminService) DeleteSurvey(id string) bool {
	surveys := s.store.Load()
	kept := surveys[:0]
	found := false
	for _, sv := range surveys {
		if sv.ID == id {
			found = true
			continue
		}
		kept = append(kept, sv)
	}
	if !found {
		return false
	}
	s.store.Save(kept)
	return true
}

// AddQuestion agrega una pregunta al final de la secuencia de la encuesta
// (el orden es el orden de inserción).
func (s *AdminService) AddQuestion(surveyID, text string) (models.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Question{}, validationErr("escribe el texto de la pregunta")
	}

	surveys := s.store.Load()
	for i := range surveys {
		if surveys[i].ID != surveyID {
			continue
		}
		q := models.Question{ID: s.ids.NewID(), Text: text}
		surveys[i].Questions = append(surveys[i].Questions, q)
		s.store.Save(surveys)
		return q, nil
	}
	return models.Question{}, validationErr("no se encontró la encuesta seleccionada")
}

// RemoveQuestion es idempotente: si la encuesta o la pregunta no existen
// es un no-op.
func (s *AdminService) RemoveQuestion(surveyID, questionID string) bool {
	surveys := s.store.Load()
	for i := range surveys {
		if surveys[i].ID != surveyID {
			continue
		}
		for j, q := range surveys[i].Questions {
			if q.ID == questionID {
				surveys[i].Questions = append(surveys[i].Questions[:j], surveys[i].Questions[j+1:]...)
				s.store.Save(surveys)
				return true
			}
		}
		return false
	}
	return false
}
