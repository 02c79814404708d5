package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Checklist is one aircraft's full checklist document, as persisted in
// checklists/<aircraft>/checklist.json.
type Checklist struct {
	Stages []Stage `json:"stages"`
}

type Stage struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is one checklist line. Level encodes nesting: an item at level L is a
// child of the nearest preceding item with a lower level (level 0 = root).
type Item struct {
	Text     string `json:"text"`
	Level    int    `json:"level"`
	Optional bool   `json:"optional"`
}

// UnmarshalJSON accepts both the current object form and the legacy bare-string
// form ("Flaps up" == {"text":"Flaps up","level":0,"optional":false}).
func (it *Item) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*it = Item{Text: s}
		return nil
	}
	type alias Item
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*it = Item(a)
	return nil
}

func (c Checklist) StageNames() []string {
	out := make([]string, 0, len(c.Stages))
	for _, st := range c.Stages {
		out = append(out, st.Name)
	}
	return out
}

// StageIndex returns the index of the stage with the given name (case-sensitive).
func (c Checklist) StageIndex(name string) (int, bool) {
	for i := range c.Stages {
		if c.Stages[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// ATCFile is one aircraft's ATC phraseology document, as persisted in
// atc/<aircraft>/atc.json.
type ATCFile struct {
	Templates []Template `json:"templates"`
}

// Template is one ATC phraseology entry. Names are unique within
// (aircraft, stage); CN/EN hold the two language renderings.
type Template struct {
	Name  string `json:"name"`
	Stage string `json:"stage"`
	CN    string `json:"cn"`
	EN    string `json:"en"`
}

type Event struct {
	ID       string    `json:"id"`
	TS       time.Time `json:"ts"`
	Type     string    `json:"type"`
	EntityID string    `json:"entityId"`
	Payload  any       `json:"payload"`
}
