package edit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fdk/internal/model"
)

type fakeATCStore struct {
	files map[string]model.ATCFile
}

func newFakeATCStore() *fakeATCStore {
	return &fakeATCStore{files: make(map[string]model.ATCFile)}
}

func (f *fakeATCStore) ReadATC(aircraft string) (model.ATCFile, error) {
	return f.files[aircraft], nil
}

func (f *fakeATCStore) WriteATC(aircraft string, file model.ATCFile) error {
	f.files[aircraft] = file
	return nil
}

func taxiRequest() model.Template {
	return model.Template{
		Name:  "taxi request",
		Stage: "Taxi",
		CN:    "地面，请求滑行",
		EN:    "ground, request taxi",
	}
}

func TestAddTemplateValidation(t *testing.T) {
	st := newFakeATCStore()

	tpl := taxiRequest()
	tpl.Name = "  "
	if err := AddTemplate(st, "c172", tpl); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}

	tpl = taxiRequest()
	tpl.CN, tpl.EN = "", " "
	if err := AddTemplate(st, "c172", tpl); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}

	if err := AddTemplate(st, "c172", taxiRequest()); err != nil {
		t.Fatalf("AddTemplate: %v", err)
	}
	if err := AddTemplate(st, "c172", taxiRequest()); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}

	// Same name in a different stage is fine.
	other := taxiRequest()
	other.Stage = "Departure"
	if err := AddTemplate(st, "c172", other); err != nil {
		t.Fatalf("AddTemplate: %v", err)
	}
}

func TestUpdateTemplateKeepsName(t *testing.T) {
	st := newFakeATCStore()
	if err := AddTemplate(st, "c172", taxiRequest()); err != nil {
		t.Fatalf("AddTemplate: %v", err)
	}
	upd := model.Template{Name: "renamed", Stage: "Taxi", EN: "ground, taxi with information alpha"}
	if err := UpdateTemplate(st, "c172", "Taxi", "taxi request", upd); err != nil {
		t.Fatalf("UpdateTemplate: %v", err)
	}
	got := st.files["c172"].Templates[0]
	if got.Name != "taxi request" {
		t.Fatalf("name = %q, the name must not change", got.Name)
	}
	if got.EN != upd.EN {
		t.Fatalf("en = %q, want %q", got.EN, upd.EN)
	}

	if err := UpdateTemplate(st, "c172", "Taxi", "missing", upd); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("err = %v, want ErrTemplateNotFound", err)
	}
}

func TestUpdateTemplateStageMoveChecksDuplicates(t *testing.T) {
	st := newFakeATCStore()
	if err := AddTemplate(st, "c172", taxiRequest()); err != nil {
		t.Fatalf("AddTemplate: %v", err)
	}
	other := taxiRequest()
	other.Stage = "Departure"
	if err := AddTemplate(st, "c172", other); err != nil {
		t.Fatalf("AddTemplate: %v", err)
	}
	upd := model.Template{Stage: "Departure", EN: "request taxi"}
	if err := UpdateTemplate(st, "c172", "Taxi", "taxi request", upd); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
}

func TestRemoveTemplate(t *testing.T) {
	st := newFakeATCStore()
	if err := AddTemplate(st, "c172", taxiRequest()); err != nil {
		t.Fatalf("AddTemplate: %v", err)
	}
	if err := RemoveTemplate(st, "c172", "Taxi", "taxi request"); err != nil {
		t.Fatalf("RemoveTemplate: %v", err)
	}
	if got := len(st.files["c172"].Templates); got != 0 {
		t.Fatalf("templates left = %d, want 0", got)
	}
	if err := RemoveTemplate(st, "c172", "Taxi", "taxi request"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("err = %v, want ErrTemplateNotFound", err)
	}
}

func TestTemplatesForStage(t *testing.T) {
	f := model.ATCFile{Templates: []model.Template{
		{Name: "a", Stage: "Taxi", EN: "x"},
		{Name: "b", Stage: "Departure", EN: "y"},
		{Name: "c", Stage: "Taxi", EN: "z"},
	}}
	got := TemplatesForStage(f, "Taxi")
	want := []model.Template{f.Templates[0], f.Templates[2]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("templates mismatch (-want +got):\n%s", diff)
	}
}
