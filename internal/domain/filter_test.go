package domain

import (
	"reflect"
	"testing"
)

func TestPathFilterMatches(t *testing.T) {
	tests := []struct {
		name   string
		filter PathFilter
		path   string
		want   bool
	}{
		{"empty filter keeps everything", PathFilter{}, "tokens/colors.json", true},
		{"exclude exact", PathFilter{Exclude: []string{".DS_Store"}}, ".DS_Store", false},
		{"exclude segment", PathFilter{Exclude: []string{"node_modules"}}, "node_modules/pkg/index.js", false},
		{"exclude prefix", PathFilter{Exclude: []string{".git"}}, ".git/config", false},
		{"exclude glob", PathFilter{Exclude: []string{"*.tmp"}}, "build/cache.tmp", false},
		{"include prefix", PathFilter{Include: []string{"tokens"}}, "tokens/colors.json", true},
		{"include miss", PathFilter{Include: []string{"tokens"}}, "docs/readme.md", false},
		{"exclude wins over include", PathFilter{Include: []string{"tokens"}, Exclude: []string{"tokens/private.json"}}, "tokens/private.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.path); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilterApply(t *testing.T) {
	filter := PathFilter{Include: []string{"tokens"}, Exclude: []string{".DS_Store"}}
	paths := []string{"tokens/colors.json", ".DS_Store", "docs/readme.md", "tokens/spacing.json"}

	got := filter.Apply(paths)
	want := []string{"tokens/colors.json", "tokens/spacing.json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestPathFilterApplyPreservesOrder(t *testing.T) {
	filter := PathFilter{Exclude: []string{"b.json"}}
	paths := []string{"c.json", "a.json", "b.json"}

	got := filter.Apply(paths)
	want := []string{"c.json", "a.json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}
