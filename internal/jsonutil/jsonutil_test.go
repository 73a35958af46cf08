package jsonutil

import (
	"encoding/json"
	"testing"
)

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"object", `{"width":10}`, false},
		{"empty object", `{}`, false},
		{"array", `[1,2]`, true},
		{"null", `null`, true},
		{"number", `7`, true},
		{"truncated", `{"width":`, true},
		{"trailing data", `{"width":10} {}`, true},
		{"overflowing number", `{"width":1e400}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeObject([]byte(tt.data), "settings")
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeObject(%s) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
			if !tt.wantErr && m == nil {
				t.Errorf("DecodeObject(%s) returned nil map", tt.data)
			}
		})
	}
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{
		"str":  "#ff0000",
		"num":  42.0,
		"bool": true,
		"nil":  nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"str", "#ff0000"},
		{"num", ""},
		{"bool", ""},
		{"nil", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetString(m, tt.key); got != tt.want {
				t.Errorf("GetString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetStringOr(t *testing.T) {
	m := map[string]interface{}{
		"str":   "#00ff00",
		"blank": "   ",
		"num":   42.0,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"str", "#00ff00"},
		{"blank", "#ffffff"},
		{"num", "#ffffff"},
		{"missing", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetStringOr(m, tt.key, "#ffffff"); got != tt.want {
				t.Errorf("GetStringOr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetInt(t *testing.T) {
	m := map[string]interface{}{
		"whole":    10.0,
		"fraction": 10.5,
		"string":   " 25 ",
		"garbage":  "ten",
		"bool":     true,
		"huge":     1e12,
		"number":   json.Number("30"),
		"overflow": json.Number("1e400"),
		"numfrac":  json.Number("2.5"),
	}

	tests := []struct {
		key    string
		want   int
		wantOK bool
	}{
		{"whole", 10, true},
		{"fraction", 0, false},
		{"string", 25, true},
		{"garbage", 0, false},
		{"bool", 0, false},
		{"huge", 0, false},
		{"number", 30, true},
		{"overflow", 0, false},
		{"numfrac", 0, false},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := GetInt(m, tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("GetInt(%q) = (%d, %v), want (%d, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
