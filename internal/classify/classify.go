// Package classify assigns domains, technology tags, and financial aid
// hints to conferences by keyword matching. Everything here is a pure
// lookup: total functions, no I/O, deterministic output.
package classify

import (
	"sort"
	"strings"
)

// GeneralDomain is the fallback when no keyword matches.
const GeneralDomain = "general"

// domainKeywords scores conference text against each domain. More keyword
// hits means a stronger claim on the primary domain.
var domainKeywords = map[string][]string{
	"ai": {
		"artificial intelligence", "ai", "machine learning", "ml", "deep learning",
		"neural networks", "chatgpt", "gpt", "llm", "large language models",
		"natural language processing", "nlp", "computer vision", "data science",
	},
	"web": {
		"web development", "frontend", "backend", "full stack", "javascript",
		"react", "vue", "angular", "node", "nextjs", "next.js", "typescript",
		"css", "html", "web technologies",
	},
	"mobile": {
		"mobile", "ios", "android", "swift", "kotlin", "react native", "flutter",
		"mobile development", "app development",
	},
	"devops": {
		"devops", "kubernetes", "docker", "cloud", "aws", "azure", "gcp",
		"infrastructure", "ci/cd", "site reliability", "sre", "platform",
	},
	"security": {
		"security", "cybersecurity", "infosec", "penetration testing", "ethical hacking",
		"appsec", "application security", "privacy", "compliance",
	},
	"data": {
		"data engineering", "data science", "big data", "analytics", "database",
		"sql", "nosql", "data pipeline", "etl", "data warehouse",
	},
	"gaming": {
		"gaming", "game development", "game design", "unity", "unreal",
		"game engine", "esports",
	},
	"blockchain": {
		"blockchain", "crypto", "web3", "ethereum", "bitcoin", "defi",
		"nft", "smart contracts", "solidity",
	},
	"ux": {
		"ux", "user experience", "ui", "user interface", "design thinking",
		"usability", "user research", "interaction design", "product design",
	},
	"opensource": {
		"open source", "opensource", "foss", "linux", "gnu", "community",
	},
}

// tagKeywords maps technology tags to trigger words. Kept as an ordered
// slice so tag detection order is stable across runs.
var tagKeywords = []struct {
	tag      string
	keywords []string
}{
	{"react", []string{"react", "reactjs", "react.js"}},
	{"vue", []string{"vue", "vuejs", "vue.js"}},
	{"angular", []string{"angular"}},
	{"typescript", []string{"typescript"}},
	{"javascript", []string{"javascript", "ecmascript"}},
	{"python", []string{"python", "django", "flask", "fastapi"}},
	{"rust", []string{"rust", "rustlang"}},
	{"go", []string{"golang", " go "}},
	{"java", []string{"java", "jvm", "spring"}},
	{"kotlin", []string{"kotlin"}},
	{"swift", []string{"swift", "swiftui"}},
	{"kubernetes", []string{"kubernetes", "k8s"}},
	{"docker", []string{"docker", "container"}},
	{"aws", []string{"aws", "amazon web services"}},
	{"graphql", []string{"graphql"}},
	{"api", []string{"api", "rest", "restful"}},
	{"microservices", []string{"microservices", "micro-services"}},
	{"testing", []string{"testing", "qa", "quality assurance", "tdd"}},
	{"performance", []string{"performance", "optimization"}},
	{"accessibility", []string{"accessibility", "a11y"}},
}

// financialAidKeywords signal speaker support programmes.
var financialAidKeywords = []string{
	"scholarship", "travel grant", "travel grants", "financial aid",
	"financial assistance", "diversity scholarship", "diversity grant",
	"stipend", "speaker support", "travel support", "accommodation support",
	"opportunity grant", "diversity fund", "inclusion",
}

// Classify scores the conference name and description against every domain
// and returns the best-scoring domain plus the remaining matched domains as
// sub-domains. Ties break alphabetically so output is deterministic. Returns
// "general" and no sub-domains when nothing matches.
func Classify(name, description string) (string, []string) {
	text := strings.ToLower(name + " " + description)

	scores := make(map[string]int)
	for domain, keywords := range domainKeywords {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > 0 {
			scores[domain] = score
		}
	}

	if len(scores) == 0 {
		return GeneralDomain, nil
	}

	matched := make([]string, 0, len(scores))
	for domain := range scores {
		matched = append(matched, domain)
	}
	sort.Slice(matched, func(i, j int) bool {
		if scores[matched[i]] != scores[matched[j]] {
			return scores[matched[i]] > scores[matched[j]]
		}
		return matched[i] < matched[j]
	})

	return matched[0], matched[1:]
}

// ExtractTags returns the technology tags detected in the conference text,
// in detection order with no duplicates.
func ExtractTags(name, description string) []string {
	text := strings.ToLower(name + " " + description)

	var tags []string
	for _, entry := range tagKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}
	return tags
}

// AidTypes describes the kinds of speaker support a conference offers.
type AidTypes struct {
	Available bool
	Types     []string
}

// DetectFinancialAid scans conference text for speaker support signals and
// classifies them into travel, accommodation, ticket, stipend, or other.
func DetectFinancialAid(name, description string) AidTypes {
	text := strings.ToLower(name + " " + description)

	var types []string
	seen := make(map[string]bool)
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}

	for _, kw := range financialAidKeywords {
		if !strings.Contains(text, kw) {
			continue
		}
		switch {
		case strings.Contains(kw, "travel"):
			add("travel")
		case strings.Contains(kw, "accommodation"):
			add("accommodation")
		case strings.Contains(kw, "ticket"):
			add("ticket")
		case strings.Contains(kw, "stipend"):
			add("stipend")
		default:
			add("other")
		}
	}

	return AidTypes{Available: len(types) > 0, Types: types}
}
