package classify

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		confName    string
		description string
		expected    string
	}{
		{
			name:     "ai conference",
			confName: "Applied Machine Learning Days",
			expected: "ai",
		},
		{
			name:        "devops over web when stronger",
			confName:    "KubeCon",
			description: "kubernetes, cloud infrastructure and platform engineering",
			expected:    "devops",
		},
		{
			name:     "security conference",
			confName: "AppSec Europe",
			expected: "security",
		},
		{
			name:     "nothing matches",
			confName: "Annual Gathering",
			expected: GeneralDomain,
		},
		{
			name:     "empty name",
			confName: "",
			expected: GeneralDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, _ := Classify(tt.confName, tt.description)
			if domain != tt.expected {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.confName, tt.description, domain, tt.expected)
			}
		})
	}
}

func TestClassifySubDomains(t *testing.T) {
	domain, subDomains := Classify("Machine Learning for Web Security", "")

	if domain == GeneralDomain {
		t.Fatal("expected a matched domain")
	}
	for _, sub := range subDomains {
		if sub == domain {
			t.Errorf("primary domain %q repeated in sub-domains %v", domain, subDomains)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 20; i++ {
		d1, s1 := Classify("DevOps and Security Days", "")
		d2, s2 := Classify("DevOps and Security Days", "")
		if d1 != d2 || !reflect.DeepEqual(s1, s2) {
			t.Fatal("Classify must be deterministic for identical input")
		}
	}
}

func TestExtractTags(t *testing.T) {
	tags := ExtractTags("ReactConf: TypeScript and GraphQL in practice", "")

	expected := []string{"react", "typescript", "graphql"}
	if !reflect.DeepEqual(tags, expected) {
		t.Errorf("ExtractTags = %v, want %v", tags, expected)
	}
}

func TestExtractTagsNoDuplicates(t *testing.T) {
	tags := ExtractTags("React react REACTJS", "react.js everywhere")

	count := 0
	for _, tag := range tags {
		if tag == "react" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("react appears %d times, want 1", count)
	}
}

func TestExtractTagsNoMatch(t *testing.T) {
	if tags := ExtractTags("Annual Gathering", ""); len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}

func TestDetectFinancialAid(t *testing.T) {
	tests := []struct {
		name        string
		description string
		available   bool
		types       []string
	}{
		{
			name:        "travel grants",
			description: "We offer travel grants and diversity scholarship programmes.",
			available:   true,
			types:       []string{"other", "travel"},
		},
		{
			name:        "accommodation support",
			description: "Speakers receive accommodation support.",
			available:   true,
			types:       []string{"accommodation"},
		},
		{
			name:        "no aid",
			description: "A regular conference about databases.",
			available:   false,
			types:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aid := DetectFinancialAid("", tt.description)
			if aid.Available != tt.available {
				t.Errorf("Available = %v, want %v", aid.Available, tt.available)
			}
			if !reflect.DeepEqual(aid.Types, tt.types) {
				t.Errorf("Types = %v, want %v", aid.Types, tt.types)
			}
		})
	}
}
