// Package content holds the static descriptive text shown by the about page.
package content

// Entry is a titled paragraph
type Entry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Section groups entries under a heading
type Section struct {
	Key     string  `json:"key" yaml:"key"`
	Heading string  `json:"heading" yaml:"heading"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Sections returns the about page content in display order
func Sections() []Section {
	return []Section{
		{
			Key:     "how-it-works",
			Heading: "How This Works",
			Entries: []Entry{
				{"View Media", "Browse the collection of movies and shows with the list command."},
				{"Filter and Sort", "Use filters and sorting options to find media by genre, title, rating and more."},
				{"Add Media", "Add your own favorite movies or shows with the create command."},
				{"Edit and Delete", "Change or remove entries with the update and delete commands."},
				{"Generate Random Media", "Feeling adventurous? Run generate to have the backend invent new titles."},
			},
		},
		{
			Key:     "backend-endpoints",
			Heading: "Backend Endpoints",
			Entries: []Entry{
				{"Media List Endpoint", "GET /api/media returns the list of movies and shows, optionally filtered and sorted."},
				{"Media Details Endpoint", "GET /api/media/:id returns a single media item by its unique ID."},
				{"Add Media Endpoint", "POST /api/media adds a new media item to the collection."},
				{"Edit Media Endpoint", "PATCH /api/media/:id updates title, description, genres, rating or status."},
				{"Delete Media Endpoint", "DELETE /api/media/:id removes a media item."},
				{"Random Media Generator Endpoint", "GET /api/generate-media/:n generates n random movie and show suggestions."},
				{"Health Endpoint", "GET /api/health reports whether the server is running and its uptime."},
			},
		},
		{
			Key:     "client",
			Heading: "This Client",
			Entries: []Entry{
				{"Single Endpoint", "Every command talks to one configurable base address; set api.url or MEDIASHELF_API_URL."},
				{"Output Formats", "Results render as a table, JSON or YAML with the --output flag."},
			},
		},
	}
}

// Lookup returns the section with the given key
func Lookup(key string) (Section, bool) {
	for _, s := range Sections() {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}
