package gemini

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		errText  string
		expected string
	}{
		{"quota", "Quota exceeded for today", MsgHighDemand},
		{"rate limit", "rate LIMIT reached for model", MsgHighDemand},
		{"timeout", "request timeout after 30s", MsgTimedOut},
		{"deadline", "context deadline exceeded", MsgTimedOut},
		{"api key", "API key not valid. Please pass a valid API key.", MsgConfigIssue},
		{"network", "network is unreachable", MsgConnectivity},
		{"connection", "connection refused", MsgConnectivity},
		{"unmatched", "candidate blocked due to safety", MsgGeneric},
		{"empty text", "", MsgGeneric},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(errors.New(tc.errText))
			if got != tc.expected {
				t.Errorf("Classify(%q) = %q, want %q", tc.errText, got, tc.expected)
			}
		})
	}
}

func TestClassify_QuotaWinsOverLaterCategories(t *testing.T) {
	// Keyword sets are tested in order; an error mentioning both quota and
	// timeout must land in the high-demand category.
	got := Classify(errors.New("quota check timeout"))
	if got != MsgHighDemand {
		t.Errorf("Expected high-demand message, got %q", got)
	}
}

func TestClassify_APIAloneIsNotConfigIssue(t *testing.T) {
	// "api" must co-occur with "key" to count as a configuration issue.
	got := Classify(errors.New("api returned an unexpected payload"))
	if got != MsgGeneric {
		t.Errorf("Expected generic message, got %q", got)
	}
}
