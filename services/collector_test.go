package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Alejomesa58/encuestas-poli/models"
	"github.com/Alejomesa58/encuestas-poli/storage"
)

func newCollector(t *testing.T) (*CollectorService, *storage.ResponseStore) {
	t.Helper()
	kv := storage.NewFileKV(filepath.Join(t.TempDir(), "store.json"))
	store := storage.NewResponseStore(kv)
	return NewCollectorService(store, &seqIDs{prefix: "resp"}), store
}

func TestSelectTargetSurvey(t *testing.T) {
	active := func(id string) models.Survey {
		return models.Survey{ID: id, Status: models.StatusActive, Questions: []models.Question{}}
	}
	closed := func(id string) models.Survey {
		return models.Survey{ID: id, Status: models.StatusClosed, Questions: []models.Question{}}
	}

	tests := []struct {
		name    string
		surveys []models.Survey
		wantID  string
		wantOK  bool
	}{
		{"empty collection", nil, "", false},
		{"first active wins", []models.Survey{closed("a"), active("b"), active("c")}, "b", true},
		{"all active takes first", []models.Survey{active("a"), active("b")}, "a", true},
		{"none active falls back to first", []models.Survey{closed("a"), closed("b")}, "a", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := SelectTargetSurvey(test.surveys)
			if ok != test.wantOK {
				t.Fatalf("ok=%v, want %v", ok, test.wantOK)
			}
			if ok && got.ID != test.wantID {
				t.Errorf("selected %s, want %s", got.ID, test.wantID)
			}
		})
	}
}

func TestSubmitResponse(t *testing.T) {
	collector, store := newCollector(t)
	fixed := time.Date(2025, 11, 12, 9, 0, 0, 0, time.UTC)
	collector.now = func() time.Time { return fixed }

	r := collector.SubmitResponse("s1", "5", "Sí", "  todo bien  ")
	if r.ID == "" {
		t.Fatal("response without id")
	}
	if r.SurveyID != "s1" || r.Satisfaction != "5" || r.Resolved != "Sí" {
		t.Errorf("fields not recorded: %+v", r)
	}
	if r.Comments != "todo bien" {
		t.Errorf("comments not trimmed: %q", r.Comments)
	}
	if !r.Timestamp.Equal(fixed) {
		t.Errorf("timestamp %s, want %s", r.Timestamp, fixed)
	}

	persisted := store.Load()
	if len(persisted) != 1 || persisted[0].ID != r.ID {
		t.Errorf("response not persisted: %v", persisted)
	}
}

func TestSubmitResponseWithoutSurveyRecordsSentinel(t *testing.T) {
	collector, store := newCollector(t)

	r := collector.SubmitResponse("", "3", "No", "")
	if r.SurveyID != models.NoSurveyID {
		t.Errorf("expected sentinel %q, got %q", models.NoSurveyID, r.SurveyID)
	}
	if len(store.Load()) != 1 {
		t.Error("response without survey id was dropped")
	}
}

func TestSubmitResponseAppends(t *testing.T) {
	collector, store := newCollector(t)

	first := collector.SubmitResponse("s1", "1", "No", "")
	second := collector.SubmitResponse("s1", "5", "Sí", "")

	got := store.Load()
	if len(got) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Error("responses not appended in order")
	}
}
