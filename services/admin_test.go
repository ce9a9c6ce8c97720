package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Alejomesa58/encuestas-poli/models"
	"github.com/Alejomesa58/encuestas-poli/storage"
)

// seqIDs produce ids deterministas para los tests.
type seqIDs struct {
	prefix string
	n      int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%02d", s.prefix, s.n)
}

// emptySeed evita que el store siembre encuestas por defecto en los tests
// que quieren partir de una colección conocida.
var emptySeed = []models.SeedSurvey{}

func newAdmin(t *testing.T) *AdminService {
	t.Helper()
	kv := storage.NewFileKV(filepath.Join(t.TempDir(), "store.json"))
	store := storage.NewSurveyStore(kv, &seqIDs{prefix: "id"}, emptySeed)
	return NewAdminService(store, &seqIDs{prefix: "adm"})
}

func TestCreateSurveyValidation(t *testing.T) {
	tests := []struct {
		name     string
		survey   string
		validity string
		wantErr  bool
	}{
		{"both present", "Encuesta", "01/01 - 31/01", false},
		{"empty name", "", "01/01 - 31/01", true},
		{"empty validity", "Encuesta", "", true},
		{"whitespace name", "   ", "01/01 - 31/01", true},
		{"whitespace validity", "Encuesta", "\t ", true},
		{"both empty", "", "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			admin := newAdmin(t)
			_, err := admin.CreateSurvey(test.survey, "Web", test.validity, models.StatusActive)
			if test.wantErr {
				if !IsValidation(err) {
					t.Errorf("expected validation error, got %v", err)
				}
				if len(admin.ListSurveys()) != 0 {
					t.Error("failed create must not change state")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateSurveyRetrievableWithEmptyQuestions(t *testing.T) {
	admin := newAdmin(t)

	sv, err := admin.CreateSurvey("Atención en tienda", "Web", "01/12/2025 - 31/12/2025", models.StatusActive)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sv.ID == "" {
		t.Fatal("created survey has no id")
	}

	got, ok := admin.GetSurvey(sv.ID)
	if !ok {
		t.Fatal("created survey not retrievable by id")
	}
	if got.Questions == nil || len(got.Questions) != 0 {
		t.Errorf("expected empty question sequence, got %v", got.Questions)
	}
	if got.Name != "Atención en tienda" {
		t.Errorf("unexpected name %q", got.Name)
	}
}

func TestUpdateSurvey(t *testing.T) {
	admin := newAdmin(t)
	sv, _ := admin.CreateSurvey("Original", "Web", "01/01 - 31/01", models.StatusActive)

	got, ok, err := admin.UpdateSurvey(sv.ID, "Editada", "Web + WhatsApp", "01/02 - 28/02", models.StatusClosed)
	if err != nil || !ok {
		t.Fatalf("update failed: ok=%v err=%v", ok, err)
	}
	if got.Name != "Editada" || got.Status != models.StatusClosed {
		t.Errorf("update not applied: %+v", got)
	}

	// Un id inexistente es un no-op silencioso y nunca crea
	_, ok, err = admin.UpdateSurvey("no-such", "Otra", "Web", "01/03 - 31/03", models.StatusActive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("update on missing id reported success")
	}
	if n := len(admin.ListSurveys()); n != 1 {
		t.Errorf("update created a survey: %d in collection", n)
	}
}

func TestDuplicateSurvey(t *testing.T) {
	admin := newAdmin(t)
	sv, _ := admin.CreateSurvey("Encuesta base", "Web", "01/01 - 31/01", models.StatusActive)
	q1, _ := admin.AddQuestion(sv.ID, "¿Pregunta uno?")
	q2, _ := admin.AddQuestion(sv.ID, "¿Pregunta dos?")

	dup, ok := admin.DuplicateSurvey(sv.ID)
	if !ok {
		t.Fatal("duplicate failed")
	}
	if dup.ID == sv.ID {
		t.Error("duplicate shares the original id")
	}
	if dup.Name != "Encuesta base (copia)" {
		t.Errorf("unexpected duplicate name %q", dup.Name)
	}
	if len(dup.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(dup.Questions))
	}
	if dup.Questions[0].Text != "¿Pregunta uno?" || dup.Questions[1].Text != "¿Pregunta dos?" {
		t.Error("question texts not preserved")
	}
	seen := map[string]bool{q1.ID: true, q2.ID: true}
	for _, q := range dup.Questions {
		if seen[q.ID] {
			t.Errorf("question id %s not fresh", q.ID)
		}
		seen[q.ID] = true
	}

	// El original no cambió
	orig, _ := admin.GetSurvey(sv.ID)
	if len(orig.Questions) != 2 || orig.Questions[0].ID != q1.ID {
		t.Error("original mutated by duplication")
	}

	if _, ok := admin.DuplicateSurvey("no-such"); ok {
		t.Error("duplicate of missing id reported success")
	}
}

func TestDeleteSurvey(t *testing.T) {
	admin := newAdmin(t)
	sv, _ := admin.CreateSurvey("Para borrar", "Web", "01/01 - 31/01", models.StatusActive)

	if !admin.DeleteSurvey(sv.ID) {
		t.Fatal("delete failed")
	}
	if _, ok := admin.GetSurvey(sv.ID); ok {
		t.Error("survey still present after delete")
	}
	// Segunda llamada: no-op
	if admin.DeleteSurvey(sv.ID) {
		t.Error("second delete reported success")
	}
}

func TestAddQuestion(t *testing.T) {
	admin := newAdmin(t)
	sv, _ := admin.CreateSurvey("Con preguntas", "Web", "01/01 - 31/01", models.StatusActive)

	tests := []struct {
		name     string
		surveyID string
		text     string
		wantErr  bool
	}{
		{"ok", sv.ID, "¿Todo bien?", false},
		{"empty text", sv.ID, "", true},
		{"whitespace text", sv.ID, "   ", true},
		{"missing survey", "no-such", "¿Hola?", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := admin.AddQuestion(test.surveyID, test.text)
			if test.wantErr != (err != nil) {
				t.Errorf("AddQuestion(%q, %q) err=%v", test.surveyID, test.text, err)
			}
		})
	}

	got, _ := admin.GetSurvey(sv.ID)
	if len(got.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got.Questions))
	}
}

func TestAddQuestionKeepsInsertionOrder(t *testing.T) {
	admin := newAdmin(t)
	sv, _ := admin.CreateSurvey("Orden", "Web", "01/01 - 31/01", models.StatusActive)

	texts := []string{"Primera", "Segunda", "Tercera"}
	for _, text := range texts {
		if _, err := admin.AddQuestion(sv.ID, text); err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
	}

	got, _ := admin.GetSurvey(sv.ID)
	for i, q := range got.Questions {
		if q.Text != texts[i] {
			t.Errorf("position %d: got %q want %q", i, q.Text, texts[i])
		}
	}
}

func TestRemoveQuestionIdempotent(t *testing.T) {
	admin := newAdmin(t)
	sv, _ := admin.CreateSurvey("Con preguntas", "Web", "01/01 - 31/01", models.StatusActive)
	q, _ := admin.AddQuestion(sv.ID, "¿Se elimina?")

	if !admin.RemoveQuestion(sv.ID, q.ID) {
		t.Fatal("remove failed")
	}
	got, _ := admin.GetSurvey(sv.ID)
	if len(got.Questions) != 0 {
		t.Errorf("question still present: %v", got.Questions)
	}

	// Repetir la misma llamada es un no-op sin error
	if admin.RemoveQuestion(sv.ID, q.ID) {
		t.Error("second remove reported a change")
	}
	if admin.RemoveQuestion("no-such", q.ID) {
		t.Error("remove on missing survey reported a change")
	}
}
