package combat

import (
	"testing"

	"github.com/samdwyer/rubycrawl/internal/markup"
)

func TestDescribeMonsterHealth(t *testing.T) {
	tests := []struct {
		health int
		want   string
	}{
		{15, "bulky"},
		{13, "bulky"},
		{12, "athletic"},
		{8, "athletic"},
		{7, "scrawny"},
		{5, "scrawny"},
	}
	for _, tt := range tests {
		if got := markup.Strip(DescribeMonsterHealth(tt.health)); got != tt.want {
			t.Errorf("DescribeMonsterHealth(%d) = %q, want %q", tt.health, got, tt.want)
		}
	}
}

func TestDescribeMonsterAttack(t *testing.T) {
	tests := []struct {
		attack int
		want   string
	}{
		{6, "aggressive"},
		{5, "aggressive"},
		{4, "lively"},
		{3, "lively"},
		{2, "weak"},
		{1, "weak"},
	}
	for _, tt := range tests {
		if got := markup.Strip(DescribeMonsterAttack(tt.attack)); got != tt.want {
			t.Errorf("DescribeMonsterAttack(%d) = %q, want %q", tt.attack, got, tt.want)
		}
	}
}

func TestDescribeCondition(t *testing.T) {
	tests := []struct {
		health   int
		isPlayer bool
		want     string
		color    string
	}{
		{10, true, "strong", markup.Green},
		{10, false, "strong", markup.Red},
		{5, true, "weak", markup.Red},
		{7, false, "weak", markup.Red},
		{4, true, "badly hurt", markup.Red},
		{-2, false, "badly hurt", markup.Green},
	}
	for _, tt := range tests {
		got := DescribeCondition(tt.health, tt.isPlayer)
		spans := markup.Parse(got)
		if len(spans) != 1 || spans[0].Text != tt.want || spans[0].Color != tt.color {
			t.Errorf("DescribeCondition(%d, %v) = %q, want %q in %s", tt.health, tt.isPlayer, got, tt.want, tt.color)
		}
	}
}

func TestDescribeHit(t *testing.T) {
	tests := []struct {
		damage int
		want   string
	}{
		{12, "legendary hit"},
		{11, "legendary hit"},
		{10, "crushing blow"},
		{8, "crushing blow"},
		{7, "solid strike"},
		{5, "solid strike"},
		{4, "glancing hit"},
		{1, "glancing hit"},
	}
	for _, tt := range tests {
		if got := markup.Strip(DescribeHit(tt.damage)); got != tt.want {
			t.Errorf("DescribeHit(%d) = %q, want %q", tt.damage, got, tt.want)
		}
	}
}

func TestModeLabels(t *testing.T) {
	labels := ModeLabels()
	if len(labels) != 2 {
		t.Fatalf("ModeLabels() returned %d labels", len(labels))
	}
	if markup.Strip(labels[0]) != "Calculated Attack" || markup.Strip(labels[1]) != "Wild Frenzy" {
		t.Errorf("unexpected labels %q", labels)
	}
}
