package edit

import (
	"errors"
	"fmt"
	"strings"

	"fdk/internal/model"
)

var (
	// ErrEmptyName rejects a template without a name.
	ErrEmptyName = errors.New("template name cannot be empty")
	// ErrEmptyContent rejects a template with neither CN nor EN content.
	ErrEmptyContent = errors.New("template needs CN or EN content")
	// ErrDuplicateName rejects a second template with the same name within
	// one stage.
	ErrDuplicateName = errors.New("template name already used in this stage")
	// ErrTemplateNotFound is returned when no template matches the given
	// stage and name.
	ErrTemplateNotFound = errors.New("template not found")
)

// ATCStore is the slice of the data layer the template operations need.
type ATCStore interface {
	ReadATC(aircraft string) (model.ATCFile, error)
	WriteATC(aircraft string, f model.ATCFile) error
}

func validateTemplate(tpl model.Template) error {
	if strings.TrimSpace(tpl.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(tpl.CN) == "" && strings.TrimSpace(tpl.EN) == "" {
		return ErrEmptyContent
	}
	return nil
}

func findTemplate(f model.ATCFile, stage, name string) int {
	for i, tpl := range f.Templates {
		if tpl.Stage == stage && tpl.Name == name {
			return i
		}
	}
	return -1
}

// AddTemplate validates and appends a template to the aircraft's ATC file.
func AddTemplate(st ATCStore, aircraft string, tpl model.Template) error {
	if err := validateTemplate(tpl); err != nil {
		return err
	}
	f, err := st.ReadATC(aircraft)
	if err != nil {
		return fmt.Errorf("load atc for %q: %w", aircraft, err)
	}
	if findTemplate(f, tpl.Stage, tpl.Name) >= 0 {
		return ErrDuplicateName
	}
	f.Templates = append(f.Templates, tpl)
	return st.WriteATC(aircraft, f)
}

// UpdateTemplate replaces the stage assignment and content of the template
// identified by stage and name. The name itself is immutable; moving the
// template to a stage that already has a template of that name is rejected.
func UpdateTemplate(st ATCStore, aircraft, stage, name string, upd model.Template) error {
	upd.Name = name
	if err := validateTemplate(upd); err != nil {
		return err
	}
	f, err := st.ReadATC(aircraft)
	if err != nil {
		return fmt.Errorf("load atc for %q: %w", aircraft, err)
	}
	i := findTemplate(f, stage, name)
	if i < 0 {
		return ErrTemplateNotFound
	}
	if upd.Stage != stage && findTemplate(f, upd.Stage, name) >= 0 {
		return ErrDuplicateName
	}
	f.Templates[i] = upd
	return st.WriteATC(aircraft, f)
}

// RemoveTemplate deletes the template identified by stage and name.
func RemoveTemplate(st ATCStore, aircraft, stage, name string) error {
	f, err := st.ReadATC(aircraft)
	if err != nil {
		return fmt.Errorf("load atc for %q: %w", aircraft, err)
	}
	i := findTemplate(f, stage, name)
	if i < 0 {
		return ErrTemplateNotFound
	}
	f.Templates = append(f.Templates[:i], f.Templates[i+1:]...)
	return st.WriteATC(aircraft, f)
}

// TemplatesForStage filters an ATC file down to one stage, preserving order.
func TemplatesForStage(f model.ATCFile, stage string) []model.Template {
	var out []model.Template
	for _, tpl := range f.Templates {
		if tpl.Stage == stage {
			out = append(out, tpl)
		}
	}
	return out
}
