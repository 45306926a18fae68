package main

import (
	"strings"
	"testing"
)

func TestParseDegrees(t *testing.T) {
	if v, ok := parseDegrees(" 135.5 "); !ok || v != 135.5 {
		t.Errorf("parseDegrees(135.5) = %v, %v", v, ok)
	}
	if v, ok := parseDegrees("-90"); !ok || v != -90 {
		t.Errorf("parseDegrees(-90) = %v, %v", v, ok)
	}
	if _, ok := parseDegrees(""); ok {
		t.Error("empty field should not parse")
	}
	if _, ok := parseDegrees("pi/2"); ok {
		t.Error("symbolic input should not parse")
	}
}

func TestParseRadius(t *testing.T) {
	if v, ok := parseRadius("0.7"); !ok || v != 0.7 {
		t.Errorf("parseRadius(0.7) = %v, %v", v, ok)
	}
	if _, ok := parseRadius("1.2"); ok {
		t.Error("radius above 1 should be rejected")
	}
	if _, ok := parseRadius("-0.1"); ok {
		t.Error("negative radius should be rejected")
	}
}

func TestCollectParams(t *testing.T) {
	fields := []string{
		"0", "0", "0", "0", "1",
		"30", "90", "45", "60", "0.8",
	}
	angles, targets, msg := collectParams(2, fields)
	if msg != "" {
		t.Fatalf("unexpected message: %s", msg)
	}
	if angles[1].Phi != 30 || angles[1].Theta != 90 {
		t.Errorf("qubit 1 angles = %+v", angles[1])
	}
	if targets[1].Phi != 45 || targets[1].Theta != 60 || targets[1].Radius != 0.8 {
		t.Errorf("qubit 1 target = %+v", targets[1])
	}
}

func TestCollectParamsBadField(t *testing.T) {
	fields := []string{"0", "0", "0", "0", "2"}
	_, _, msg := collectParams(1, fields)
	if !strings.Contains(msg, "qubit 0") || !strings.Contains(msg, "radius") {
		t.Errorf("expected a radius message naming qubit 0, got %q", msg)
	}
}
