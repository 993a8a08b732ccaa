// Package geo resolves (city, country) pairs to coordinates for the world
// map. A static table covers common conference cities without any API
// dependency; a persistent cache and an optional Nominatim client handle the
// rest.
package geo

import (
	"sort"
	"strings"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// cityCoords covers cities that host the bulk of listed conferences.
var cityCoords = map[string]Coordinates{
	// Europe
	"paris":      {48.8566, 2.3522},
	"london":     {51.5074, -0.1278},
	"berlin":     {52.5200, 13.4050},
	"amsterdam":  {52.3676, 4.9041},
	"barcelona":  {41.3851, 2.1734},
	"madrid":     {40.4168, -3.7038},
	"lisbon":     {38.7223, -9.1393},
	"vienna":     {48.2082, 16.3738},
	"zurich":     {47.3769, 8.5417},
	"geneva":     {46.2044, 6.1432},
	"brussels":   {50.8503, 4.3517},
	"copenhagen": {55.6761, 12.5683},
	"stockholm":  {59.3293, 18.0686},
	"oslo":       {59.9139, 10.7522},
	"helsinki":   {60.1699, 24.9384},
	"prague":     {50.0755, 14.4378},
	"warsaw":     {52.2297, 21.0122},
	"dublin":     {53.3498, -6.2603},
	"milan":      {45.4642, 9.1900},
	"rome":       {41.9028, 12.4964},
	"munich":     {48.1351, 11.5820},
	"lyon":       {45.7640, 4.8357},
	"toulouse":   {43.6047, 1.4442},
	"grenoble":   {45.1885, 5.7245},
	"nantes":     {47.2184, -1.5536},
	"bordeaux":   {44.8378, -0.5792},
	"sofia":      {42.6977, 23.3219},
	"athens":     {37.9838, 23.7275},
	"krakow":     {50.0647, 19.9450},

	// North America
	"san francisco": {37.7749, -122.4194},
	"new york":      {40.7128, -74.0060},
	"los angeles":   {34.0522, -118.2437},
	"seattle":       {47.6062, -122.3321},
	"austin":        {30.2672, -97.7431},
	"chicago":       {41.8781, -87.6298},
	"boston":        {42.3601, -71.0589},
	"denver":        {39.7392, -104.9903},
	"las vegas":     {36.1699, -115.1398},
	"portland":      {45.5051, -122.6750},
	"toronto":       {43.6532, -79.3832},
	"montreal":      {45.5017, -73.5673},
	"vancouver":     {49.2827, -123.1207},

	// Asia Pacific
	"tokyo":     {35.6762, 139.6503},
	"singapore": {1.3521, 103.8198},
	"bangalore": {12.9716, 77.5946},
	"mumbai":    {19.0760, 72.8777},
	"delhi":     {28.7041, 77.1025},
	"sydney":    {-33.8688, 151.2093},
	"melbourne": {-37.8136, 144.9631},
	"seoul":     {37.5665, 126.9780},
	"shanghai":  {31.2304, 121.4737},
	"hong kong": {22.3193, 114.1694},
	"bangkok":   {13.7563, 100.5018},
	"jakarta":   {-6.2088, 106.8456},

	// South America
	"sao paulo":    {-23.5505, -46.6333},
	"buenos aires": {-34.6037, -58.3816},
	"santiago":     {-33.4489, -70.6693},

	// Africa
	"cape town": {-33.9249, 18.4241},
	"lagos":     {6.5244, 3.3792},
	"nairobi":   {-1.2921, 36.8219},

	// Middle East
	"dubai":    {25.2048, 55.2708},
	"tel aviv": {32.0853, 34.7818},
}

// countryCoords holds country centroids used when the city is unknown.
var countryCoords = map[string]Coordinates{
	"usa":            {37.0902, -95.7129},
	"united states":  {37.0902, -95.7129},
	"uk":             {55.3781, -3.4360},
	"united kingdom": {55.3781, -3.4360},
	"germany":        {51.1657, 10.4515},
	"france":         {46.2276, 2.2137},
	"spain":          {40.4637, -3.7492},
	"italy":          {41.8719, 12.5674},
	"netherlands":    {52.1326, 5.2913},
	"belgium":        {50.5039, 4.4699},
	"switzerland":    {46.8182, 8.2275},
	"austria":        {47.5162, 14.5501},
	"poland":         {51.9194, 19.1451},
	"sweden":         {60.1282, 18.6435},
	"norway":         {60.4720, 8.4689},
	"denmark":        {56.2639, 9.5018},
	"finland":        {61.9241, 25.7482},
	"canada":         {56.1304, -106.3468},
	"australia":      {-25.2744, 133.7751},
	"japan":          {36.2048, 138.2529},
	"india":          {20.5937, 78.9629},
	"singapore":      {1.3521, 103.8198},
	"brazil":         {-14.2350, -51.9253},
	"mexico":         {23.6345, -102.5528},
}

// countryContinents maps countries to continents for the by-continent stats.
var countryContinents = map[string]string{
	"U.S.A.": "North America", "USA": "North America", "United States": "North America",
	"Canada": "North America", "Mexico": "North America",
	"Brazil": "South America", "Argentina": "South America", "Chile": "South America",
	"Colombia": "South America", "Peru": "South America",
	"U.K.": "Europe", "UK": "Europe", "United Kingdom": "Europe",
	"Germany": "Europe", "France": "Europe", "Netherlands": "Europe",
	"Spain": "Europe", "Italy": "Europe", "Poland": "Europe", "Sweden": "Europe",
	"Norway": "Europe", "Denmark": "Europe", "Finland": "Europe", "Austria": "Europe",
	"Belgium": "Europe", "Switzerland": "Europe", "Portugal": "Europe",
	"Czech Republic": "Europe", "Ireland": "Europe", "Greece": "Europe",
	"Romania": "Europe", "Hungary": "Europe", "Croatia": "Europe", "Serbia": "Europe",
	"Slovenia": "Europe", "Slovakia": "Europe", "Estonia": "Europe", "Latvia": "Europe",
	"Lithuania": "Europe", "Ukraine": "Europe", "Russia": "Europe",
	"India": "Asia", "Japan": "Asia", "China": "Asia", "South Korea": "Asia",
	"Singapore": "Asia", "Thailand": "Asia", "Vietnam": "Asia", "Malaysia": "Asia",
	"Indonesia": "Asia", "Philippines": "Asia", "Taiwan": "Asia", "Hong Kong": "Asia",
	"Israel": "Asia", "UAE": "Asia", "United Arab Emirates": "Asia", "Turkey": "Asia",
	"Australia": "Oceania", "New Zealand": "Oceania",
	"South Africa": "Africa", "Kenya": "Africa", "Nigeria": "Africa", "Egypt": "Africa",
}

// Sorted key lists make partial matching deterministic.
var (
	cityNames    = sortedKeys(cityCoords)
	countryNames = sortedKeys(countryCoords)
)

func sortedKeys(m map[string]Coordinates) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LookupStatic resolves a location from the static tables: exact city,
// partial city match, country centroid, partial country match, in that
// order. Returns false when nothing matches.
func LookupStatic(city, country string) (Coordinates, bool) {
	cityLower := strings.ToLower(strings.TrimSpace(city))
	countryLower := strings.ToLower(strings.TrimSpace(country))

	if coords, ok := cityCoords[cityLower]; ok {
		return coords, true
	}

	if cityLower != "" {
		for _, known := range cityNames {
			if strings.Contains(cityLower, known) || strings.Contains(known, cityLower) {
				return cityCoords[known], true
			}
		}
	}

	if coords, ok := countryCoords[countryLower]; ok {
		return coords, true
	}

	if countryLower != "" {
		for _, known := range countryNames {
			if strings.Contains(countryLower, known) {
				return countryCoords[known], true
			}
		}
	}

	return Coordinates{}, false
}

// Continent maps a country name to its continent, or "Other" when unknown.
func Continent(country string) string {
	if c, ok := countryContinents[country]; ok {
		return c
	}
	return "Other"
}
