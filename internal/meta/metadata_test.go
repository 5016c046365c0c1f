package meta

import (
	"strings"
	"testing"
)

func TestMetadata_StableJSON(t *testing.T) {
	m := New(map[string]string{"b": "2", "a": "1", "c": "3"})
	b1, err := m.MarshalStableJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b1) != `{"a":"1","b":"2","c":"3"}` {
		t.Fatalf("unexpected encoding: %s", b1)
	}
	var back Metadata
	if err := back.UnmarshalJSON(b1); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	b2, _ := back.MarshalStableJSON()
	if string(b1) != string(b2) {
		t.Fatalf("round trip not stable: %s vs %s", b1, b2)
	}
}

func TestMetadata_Validate(t *testing.T) {
	ok := New(map[string]string{"channel": "phone"})
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid metadata rejected: %v", err)
	}
	tooMany := Metadata{}
	for i := 0; i < MaxPairs+1; i++ {
		tooMany[strings.Repeat("k", i+1)] = "v"
	}
	if err := tooMany.Validate(); err == nil {
		t.Fatalf("expected pair-count error")
	}
	longVal := New(map[string]string{"k": strings.Repeat("x", MaxValLen+1)})
	if err := longVal.Validate(); err == nil {
		t.Fatalf("expected value-length error")
	}
}

func TestMetadata_NullUnmarshal(t *testing.T) {
	var m Metadata
	if err := m.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("null: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("null should decode to empty map")
	}
}
