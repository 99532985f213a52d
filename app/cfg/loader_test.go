package cfg

import (
	"testing"
)

func TestResolveMode_DefaultIsRender(t *testing.T) {
	raw := &rawCfg{}

	mode, err := resolveMode(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mode != ModeRender {
		t.Errorf("Expected render mode by default, got %s", mode)
	}
}

func TestResolveMode_Count(t *testing.T) {
	raw := &rawCfg{Count: true}

	mode, err := resolveMode(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mode != ModeCount {
		t.Errorf("Expected count mode, got %s", mode)
	}
}

func TestResolveMode_ListValues(t *testing.T) {
	raw := &rawCfg{ListValues: "group-title"}

	mode, err := resolveMode(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mode != ModeListValues {
		t.Errorf("Expected list-values mode, got %s", mode)
	}
}

func TestResolveMode_MutuallyExclusive(t *testing.T) {
	raw := &rawCfg{Count: true, ListValues: "group-title"}

	if _, err := resolveMode(raw); err == nil {
		t.Fatal("Expected an error for conflicting mode flags")
	}

	raw = &rawCfg{Count: true, Serve: true}
	if _, err := resolveMode(raw); err == nil {
		t.Fatal("Expected an error for --count with --serve")
	}
}

func TestResolveMode_OutputRequiresRender(t *testing.T) {
	raw := &rawCfg{Count: true, Output: "out.m3u"}

	if _, err := resolveMode(raw); err == nil {
		t.Fatal("Expected an error for --output combined with --count")
	}
}

func TestResolveMode_OutputWithRender(t *testing.T) {
	raw := &rawCfg{Output: "out.m3u"}

	mode, err := resolveMode(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mode != ModeRender {
		t.Errorf("Expected render mode, got %s", mode)
	}
}
