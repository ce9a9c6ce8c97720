package storage

import (
	"encoding/json"
	"log/slog"

	"github.com/Alejomesa58/encuestas-poli/models"
)

const responsesKey = "responses_v1"

// ResponseStore persiste las respuestas. A diferencia de las encuestas, los
// datos malformados no se reparan: se descartan a favor de una colección
// vacía y no se re-persiste nada.
type ResponseStore struct {
	kv KV
}

func NewResponseStore(kv KV) *ResponseStore {
	return &ResponseStore{kv: kv}
}

func (s *ResponseStore) Load() []models.Response {
	raw, ok, err := s.kv.Get(responsesKey)
	if err != nil {
		slog.Warn("no se pudieron leer las respuestas", "error", err)
		return []models.Response{}
	}
	if !ok {
		return []models.Response{}
	}
	var responses []models.Response
	if err := json.Unmarshal(raw, &responses); err != nil {
		slog.Warn("respuestas persistidas malformadas, descartando", "error", err)
		return []models.Response{}
	}
	return responses
}

func (s *ResponseStore) Save(responses []models.Response) {
	raw, err := json.Marshal(responses)
	if err != nil {
		slog.Warn("no se pudieron serializar las respuestas", "error", err)
		return
	}
	if err := s.kv.Set(responsesKey, raw); err != nil {
		slog.Warn("no se pudieron guardar las respuestas", "error", err)
	}
}
