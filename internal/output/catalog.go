package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/confscout/confscout/internal/conference"
)

// CatalogStats summarizes the flat catalog document.
type CatalogStats struct {
	Total            int            `json:"total"`
	OpenCFPs         int            `json:"openCfps"`
	WithFinancialAid int            `json:"withFinancialAid"`
	ByContinent      map[string]int `json:"byContinent"`
}

// DomainInfo is the display metadata for one domain in the catalog.
type DomainInfo struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	ConferenceCount int    `json:"conferenceCount"`
}

// CatalogDocument is the flat catalog output file.
type CatalogDocument struct {
	LastUpdated string                   `json:"lastUpdated"`
	Stats       CatalogStats             `json:"stats"`
	Domains     []DomainInfo             `json:"domains"`
	Conferences []*conference.Conference `json:"conferences"`
}

// domainCatalog is the fixed display metadata per domain slug.
var domainCatalog = map[string]DomainInfo{
	"ai":       {Slug: "ai", Name: "AI & Machine Learning", Description: "Artificial intelligence, machine learning, and data science", Icon: "🤖", Color: "#8B5CF6"},
	"web":      {Slug: "web", Name: "Web Development", Description: "Frontend, backend, and full-stack web development", Icon: "🌐", Color: "#3B82F6"},
	"mobile":   {Slug: "mobile", Name: "Mobile Development", Description: "iOS, Android, and cross-platform mobile apps", Icon: "📱", Color: "#10B981"},
	"devops":   {Slug: "devops", Name: "DevOps & Cloud", Description: "Infrastructure, CI/CD, and cloud platforms", Icon: "☁️", Color: "#F59E0B"},
	"security": {Slug: "security", Name: "Security", Description: "Application security, cryptography, and privacy", Icon: "🔒", Color: "#EF4444"},
	"data":     {Slug: "data", Name: "Data Engineering", Description: "Databases, pipelines, and analytics", Icon: "📊", Color: "#06B6D4"},
	"software": {Slug: "software", Name: "Software Engineering", Description: "Languages, architecture, and engineering practice", Icon: "⚙️", Color: "#6366F1"},
	"design":   {Slug: "design", Name: "Design & UX", Description: "Product design, UX research, and accessibility", Icon: "🎨", Color: "#EC4899"},
	"product":  {Slug: "product", Name: "Product & Leadership", Description: "Product management and engineering leadership", Icon: "🧭", Color: "#84CC16"},
	"academic": {Slug: "academic", Name: "Academic", Description: "Peer-reviewed computer science venues", Icon: "🎓", Color: "#A855F7"},
	"general":  {Slug: "general", Name: "General", Description: "Multi-topic and community conferences", Icon: "🎪", Color: "#64748B"},
}

// BuildCatalog assembles the catalog document from enriched conferences.
// Domains appear sorted by conference count descending, slug ascending on
// ties; domains with no conferences are omitted.
func BuildCatalog(confs []*conference.Conference, lastUpdated string) *CatalogDocument {
	stats := CatalogStats{ByContinent: make(map[string]int)}
	counts := make(map[string]int)

	for _, c := range confs {
		stats.Total++
		if c.HasOpenCFP() {
			stats.OpenCFPs++
		}
		if c.FinancialAid != nil && c.FinancialAid.Available {
			stats.WithFinancialAid++
		}
		if c.Continent != "" {
			stats.ByContinent[c.Continent]++
		}
		if c.Domain != "" {
			counts[c.Domain]++
		}
	}

	var domains []DomainInfo
	for slug, count := range counts {
		info, ok := domainCatalog[slug]
		if !ok {
			info = DomainInfo{Slug: slug, Name: slug}
		}
		info.ConferenceCount = count
		domains = append(domains, info)
	}
	sort.Slice(domains, func(i, j int) bool {
		if domains[i].ConferenceCount != domains[j].ConferenceCount {
			return domains[i].ConferenceCount > domains[j].ConferenceCount
		}
		return domains[i].Slug < domains[j].Slug
	})

	return &CatalogDocument{
		LastUpdated: lastUpdated,
		Stats:       stats,
		Domains:     domains,
		Conferences: confs,
	}
}

// WriteCatalog writes the catalog document.
func WriteCatalog(path string, doc *CatalogDocument) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
