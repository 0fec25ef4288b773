package mediaapi

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// MediaStatus represents the viewing status of a media item
type MediaStatus string

const (
	StatusWatching    MediaStatus = "Watching"
	StatusWatched     MediaStatus = "Watched"
	StatusDropped     MediaStatus = "Dropped"
	StatusOnHold      MediaStatus = "OnHold"
	StatusPlanToWatch MediaStatus = "PlanToWatch"
)

// MediaStatuses lists every status accepted by the backend
var MediaStatuses = []MediaStatus{
	StatusWatching,
	StatusWatched,
	StatusDropped,
	StatusOnHold,
	StatusPlanToWatch,
}

// ParseMediaStatus matches s case-insensitively, ignoring '-', '_' and spaces
func ParseMediaStatus(s string) (MediaStatus, error) {
	normalized := normalizeEnum(s)
	for _, status := range MediaStatuses {
		if normalizeEnum(string(status)) == normalized {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown media status %q", s)
}

// MediaType represents the kind of media
type MediaType string

const (
	TypeMovie MediaType = "Movie"
	TypeShow  MediaType = "Show"
)

// ParseMediaType matches s case-insensitively
func ParseMediaType(s string) (MediaType, error) {
	switch normalizeEnum(s) {
	case "movie":
		return TypeMovie, nil
	case "show", "tv":
		return TypeShow, nil
	}
	return "", fmt.Errorf("unknown media type %q", s)
}

// IsMovie checks if the media type is a movie
func (mt MediaType) IsMovie() bool {
	return mt == TypeMovie
}

func normalizeEnum(s string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
}

// Media represents a catalog entry
type Media struct {
	// ID is either a plain string or a {"$oid": "..."} object
	ID          any         `json:"_id,omitempty" yaml:"_id,omitempty"`
	Title       string      `json:"title" yaml:"title" validate:"required"`
	Description string      `json:"description" yaml:"description"`
	Genres      []string    `json:"genres" yaml:"genres"`
	Rating      float64     `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Status      MediaStatus `json:"status" yaml:"status" validate:"required,oneof=Watching Watched Dropped OnHold PlanToWatch"`
	Type        MediaType   `json:"type" yaml:"type" validate:"required,oneof=Movie Show"`
}

// IDString returns the identifier in a form usable in a URL path
func (m *Media) IDString() string {
	switch id := m.ID.(type) {
	case nil:
		return ""
	case string:
		return id
	case map[string]any:
		if oid, ok := id["$oid"].(string); ok {
			return oid
		}
	}
	return fmt.Sprint(m.ID)
}

// HasGenre checks whether the item carries genre, ignoring case
func (m *Media) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// MediaUpdate is a partial update; nil fields are not sent
type MediaUpdate struct {
	Title       *string      `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string      `json:"description,omitempty"`
	Genres      []string     `json:"genres,omitempty"`
	Rating      *float64     `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Status      *MediaStatus `json:"status,omitempty" validate:"omitempty,oneof=Watching Watched Dropped OnHold PlanToWatch"`
}

// IsEmpty reports whether the update carries no field
func (u *MediaUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Genres == nil && u.Rating == nil && u.Status == nil
}

// GenericResponse is the status/message envelope used by the health endpoint
type GenericResponse struct {
	Status  string `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// MediaList is the list endpoint envelope
type MediaList struct {
	Status  string  `json:"status"`
	Results int     `json:"results"`
	Media   []Media `json:"media"`
}

// SingleMedia is the detail endpoint envelope
type SingleMedia struct {
	Status string `json:"status"`
	Data   struct {
		Media Media `json:"media"`
	} `json:"data"`
}

// Decode converts a decoded JSON document into a typed value using the
// json struct tags of out.
func Decode(doc any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(doc); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
