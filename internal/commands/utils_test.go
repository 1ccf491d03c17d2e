package commands

import (
	"errors"
	"reflect"
	"testing"

	"github.com/muzaffarov/splitbill/internal/session"
)

func TestParseMemberIndexes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"comma separated", "1, 2, 4", []int{0, 1, 3}},
		{"free text", "участники 1 и 3", []int{0, 2}},
		{"duplicates dropped", "2, 2, 2", []int{1}},
		{"zero ignored", "0", nil},
		{"empty", "", nil},
		{"no numbers", "все", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMemberIndexes(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseMemberIndexes(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseServicePct(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"integer", "10", "10", false},
		{"dot decimal", "12.5", "12.5", false},
		{"comma decimal", "12,5", "12.5", false},
		{"padded", " 15 ", "15", false},
		{"garbage", "abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseServicePct(tt.in)
			if tt.wantErr {
				if !errors.Is(err, session.ErrBadServicePct) {
					t.Errorf("parseServicePct(%q) error = %v, want ErrBadServicePct", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseServicePct(%q) error = %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("parseServicePct(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
