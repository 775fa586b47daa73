package cache

import (
	"strings"
	"testing"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		expectedKey string
	}{
		{
			name:        "extractor content",
			serviceName: "extractor",
			objectType:  "content",
			identifier:  "abc123",
			expectedKey: "wikiquiz:extractor:content:abc123",
		},
		{
			name:        "quiz record",
			serviceName: "quiz",
			objectType:  "record",
			identifier:  "01HXYZ",
			expectedKey: "wikiquiz:quiz:record:01HXYZ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestContentKey(t *testing.T) {
	key := ContentKey("https://en.wikipedia.org/wiki/Alan_Turing")
	if !strings.HasPrefix(key, "wikiquiz:extractor:content:") {
		t.Errorf("ContentKey() = %v, unexpected prefix", key)
	}
	if strings.Contains(key, "/") {
		t.Errorf("ContentKey() = %v, raw URL characters leaked into key", key)
	}

	other := ContentKey("https://en.wikipedia.org/wiki/Go_(programming_language)")
	if key == other {
		t.Error("ContentKey() produced the same key for different URLs")
	}
}
