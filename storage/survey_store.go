package storage

import (
	"encoding/json"
	"log/slog"

	"github.com/Alejomesa58/encuestas-poli/models"
	"github.com/Alejomesa58/encuestas-poli/utils"
)

const surveysKey = "surveys_v1"

// SurveyStore persiste la colección completa de encuestas bajo una sola
// clave del medio kv. Es el único componente que escribe esa clave.
type SurveyStore struct {
	kv   KV
	ids  utils.IDGenerator
	seed []models.SeedSurvey
}

func NewSurveyStore(kv KV, ids utils.IDGenerator, seed []models.SeedSurvey) *SurveyStore {
	if seed == nil {
		seed = models.DefaultSeed()
	}
	return &SurveyStore{kv: kv, ids: ids, seed: seed}
}

// Load devuelve las encuestas persistidas. Si no hay datos, o los datos no
// son un arreglo bien formado de encuestas, inicializa el medio con las
// encuestas semilla y devuelve ese conjunto (los ids de la semilla quedan
// persistidos, estables entre cargas). Una encuesta sin preguntas se
// normaliza a secuencia vacía; esta condición nunca falla.
func (s *SurveyStore) Load() []models.Survey {
	raw, ok, err := s.kv.Get(surveysKey)
	if err != nil {
		slog.Warn("no se pudieron leer las encuestas, usando semilla", "error", err)
		return s.resetToSeed()
	}
	if !ok {
		return s.resetToSeed()
	}

	var surveys []models.Survey
	if err := json.Unmarshal(raw, &surveys); err != nil {
		slog.Warn("encuestas persistidas malformadas, usando semilla", "error", err)
		return s.resetToSeed()
	}
	for i := range surveys {
		if surveys[i].Questions == nil {
			surveys[i].Questions = []models.Question{}
		}
	}
	return surveys
}

// Save reemplaza la colección persistida. Un fallo de escritura se registra
// y se ignora: el estado en memoria sigue siendo la fuente de verdad.
func (s *SurveyStore) Save(surveys []models.Survey) {
	raw, err := json.Marshal(surveys)
	if err != nil {
		slog.Warn("no se pudieron serializar las encuestas", "error", err)
		return
	}
	if err := s.kv.Set(surveysKey, raw); err != nil {
		slog.Warn("no se pudieron guardar las encuestas", "error", err)
	}
}

func (s *SurveyStore) resetToSeed() []models.Survey {
	surveys := make([]models.Survey, 0, len(s.seed))
	for _, seed := range s.seed {
		sv := models.Survey{
			ID:        s.ids.NewID(),
			Name:      seed.Name,
			Channel:   seed.Channel,
			Validity:  seed.Validity,
			Status:    seed.Status,
			Questions: make([]models.Question, 0, len(seed.Questions)),
		}
		for _, text := range seed.Questions {
			sv.Questions = append(sv.Questions, models.Question{ID: s.ids.NewID(), Text: text})
		}
		surveys = append(surveys, sv)
	}
	s.Save(surveys)
	return surveys
}
