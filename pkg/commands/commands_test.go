package commands

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{"no args", nil, Options{}},
		{"path", []string{"a.ppm"}, Options{Path: "a.ppm"}},
		{"stdin dash", []string{"-"}, Options{Path: "-"}},
		{"sleep", []string{"a.ppm", "-s", "5"}, Options{Path: "a.ppm", Timeout: 5 * time.Second}},
		{"sleep on stdin", []string{"-", "-s", "1"}, Options{Path: "-", Timeout: time.Second}},
		{"zero sleep", []string{"a.ppm", "-s", "0"}, Options{Path: "a.ppm"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := [][]string{
		{"a", "b", "c", "d"},
		{"a", "-s"},
		{"a", "-x", "5"},
		{"a", "-s", "five"},
		{"a", "-s", "-1"},
		{"a", "b"},
	}
	for _, args := range tests {
		_, err := Parse(args)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("%q: got %v, want ErrUsage", args, err)
		}
	}
}
