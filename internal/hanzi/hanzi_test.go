package hanzi

import "testing"

func TestIdentifierScripts(t *testing.T) {
	id, err := NewIdentifier()
	if err != nil {
		t.Fatalf("NewIdentifier: %v", err)
	}
	tests := []struct {
		r    rune
		want Script
	}{
		{'国', SimplifiedOnly},
		{'國', TraditionalOnly},
		{'发', SimplifiedOnly},
		{'中', Shared},
		{'人', Shared},
		{'a', NotHan},
	}
	for _, tt := range tests {
		if got := id.Script(tt.r); got != tt.want {
			t.Errorf("Script(%q) = %s, want %s", tt.r, got, tt.want)
		}
	}
	if !id.IsTraditionalOnly('國') || id.IsSimplifiedOnly('國') {
		t.Fatal("國 should be traditional only")
	}
}

func TestIdentifierMergedCharactersAreShared(t *testing.T) {
	id, err := NewIdentifier()
	if err != nil {
		t.Fatalf("NewIdentifier: %v", err)
	}
	for _, r := range "干后里台云" {
		if id.IsSimplifiedOnly(r) {
			t.Errorf("%q counted as simplified only", r)
		}
	}
	for _, r := range "国发这们" {
		if !id.IsSimplifiedOnly(r) {
			t.Errorf("%q should stay simplified only", r)
		}
	}
}

func TestConverterRoundTrip(t *testing.T) {
	toTrad, err := NewConverter(ToTraditional)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	got, err := toTrad.Convert("中国")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "中國" {
		t.Fatalf("Convert(中国) = %q, want 中國", got)
	}

	toSimp, err := NewConverter(ToSimplified)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	got, err = toSimp.Convert("中國")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "中国" {
		t.Fatalf("Convert(中國) = %q, want 中国", got)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ToTraditional {
		t.Fatalf("ParseMode(\"\") = %q, %v", m, err)
	}
	if m, err := ParseMode("cht2chs"); err != nil || m != ToSimplified {
		t.Fatalf("ParseMode(cht2chs) = %q, %v", m, err)
	}
	if _, err := ParseMode("s2t"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
