// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"
)

func TestAbnormalRatio(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"empty", "", 0},
		{"clean chinese", "负责战斗系统的设计与实现", 0},
		{"clean english", "Implemented the combat system in C#.", 0},
		{"all garbage", "◊◊◊◊", 1},
	}
	for _, tt := range tests {
		if got := AbnormalRatio(tt.in); got != tt.want {
			t.Errorf("AbnormalRatio(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCleanGarbleThresholdIsStrict(t *testing.T) {
	// 3 abnormal runes in 10 sits exactly at the threshold and passes.
	atBoundary := "abcdefg◊◊◊"
	if _, garbled := Clean(atBoundary); garbled {
		t.Errorf("Clean(%q) flagged garbled at exactly 30%%", atBoundary)
	}

	// 31 in 100 crosses it.
	over := strings.Repeat("a", 69) + strings.Repeat("◊", 31)
	if _, garbled := Clean(over); !garbled {
		t.Error("Clean() did not flag 31% abnormal input as garbled")
	}
}

func TestCleanStripsExtractionNoise(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"control chars", "abc\x01\x02def", "abc def"},
		{"latin1 pairs", "dataÃ©store", "data store"},
		{"replacement runs", "res���ume", "res ume"},
		{"isolated consonants dropped", "m k hello a I ok", "hello a I ok"},
		{"symbol run collapsed", "skill %%%% tree", "skill tree"},
		{"whitespace collapsed", "  spaced \t out\n text ", "spaced out text"},
		{"clean text untouched", "熟悉Unity和C#开发", "熟悉Unity和C#开发"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Clean(tt.in)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanAlwaysRunsOnGarbledInput(t *testing.T) {
	in := strings.Repeat("�", 8) + "残留文本片段依然需要输出清理后的结果"
	got, garbled := Clean(in)
	if !garbled {
		t.Fatal("Clean() did not flag replacement-run input as garbled")
	}
	if strings.Contains(got, "�") {
		t.Errorf("Clean() left replacement characters in output: %q", got)
	}
}

func TestUsable(t *testing.T) {
	if Usable("too short") {
		t.Error("Usable() accepted a fragment below the minimum length")
	}
	if !Usable(strings.Repeat("字", 20)) {
		t.Error("Usable() rejected a 20-rune fragment")
	}
}
