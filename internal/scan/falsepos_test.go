package scan

import "testing"

func TestIsLikelyFalsePositive(t *testing.T) {
	tests := []struct {
		matched string
		want    bool
	}{
		{`apiKey = "YOUR_API_KEY"`, true},
		{`apiKey = "example-key-123"`, true},
		{`token = "TEST_TOKEN"`, true},
		{`secret = "mock-secret"`, true},
		{`password = "dummy"`, true},
		{`key = "placeholder"`, true},
		{`key = "..."`, true},
		{`key = "***"`, true},
		{`key = "TODO"`, true},
		{`key = "fixme later"`, true},
		{`apiKey = "zq8Hr2LmPw5vKd3N"`, false},
		{`secret = "prod-8821-hv"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.matched, func(t *testing.T) {
			if got := IsLikelyFalsePositive(tt.matched); got != tt.want {
				t.Errorf("IsLikelyFalsePositive(%q) = %v, want %v", tt.matched, got, tt.want)
			}
		})
	}
}

func TestIsLikelyFalsePositive_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"ExAmPlE", "MOCK", "Your_Key", "ToDo"} {
		if !IsLikelyFalsePositive(s) {
			t.Errorf("IsLikelyFalsePositive(%q) = false, want true", s)
		}
	}
}
