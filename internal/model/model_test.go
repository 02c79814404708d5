package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestItemUnmarshalLegacyString(t *testing.T) {
	raw := `{"stages":[{"name":"Preflight","items":["master on",{"text":"strobes","level":1,"optional":true}]}]}`
	var doc Checklist
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Checklist{Stages: []Stage{{
		Name: "Preflight",
		Items: []Item{
			{Text: "master on"},
			{Text: "strobes", Level: 1, Optional: true},
		},
	}}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("doc mismatch (-want +got):\n%s", diff)
	}
}

func TestChecklistRoundTrip(t *testing.T) {
	doc := Checklist{Stages: []Stage{{
		Name:  "Taxi",
		Items: []Item{{Text: "taxi light on", Level: 0}},
	}}}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Checklist
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("doc mismatch (-want +got):\n%s", diff)
	}
}

func TestStageIndex(t *testing.T) {
	doc := Checklist{Stages: []Stage{{Name: "Preflight"}, {Name: "Taxi"}}}
	if i, ok := doc.StageIndex("Taxi"); !ok || i != 1 {
		t.Fatalf("StageIndex(Taxi) = %d, %v", i, ok)
	}
	if _, ok := doc.StageIndex("Cruise"); ok {
		t.Fatal("StageIndex(Cruise) should miss")
	}
}
