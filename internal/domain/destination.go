package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Photo is an ordered media entry on a record.
type Photo struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

const maxCaptionLen = 200

// Coordinates pins a destination on the map. Lat and lon are pointers so a
// half-filled pair can be rejected instead of silently defaulting to 0.
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Destination is a place record. The typed fields are the core schema; any
// additional top-level JSON keys a client sends are preserved in Extra.
type Destination struct {
	ID          string
	Name        string
	Country     string
	Description string
	ImageURL    string
	Coordinates *Coordinates
	Photos      []Photo
	Language    *LanguageMap
	Extra       map[string]json.RawMessage

	// HotelsCount is a read-time aggregation (hotels whose destinationId
	// points here). Never stored; set by the service on reads.
	HotelsCount *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

var destinationKeys = keySet(
	"id", "name", "country", "description", "imageUrl", "coordinates",
	"photos", "language", "hotelsCount", "createdAt", "updatedAt",
)

type destinationJSON struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Country     string       `json:"country"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Photos      []Photo      `json:"photos"`
	Language    *LanguageMap `json:"language,omitempty"`
	HotelsCount *int64       `json:"hotelsCount,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (d Destination) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Extra)+11)
	for k, v := range d.Extra {
		out[k] = v
	}
	core, err := json.Marshal(destinationJSON{
		ID:          d.ID,
		Name:        d.Name,
		Country:     d.Country,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Coordinates: d.Coordinates,
		Photos:      emptyIfNil(d.Photos),
		Language:    d.Language,
		HotelsCount: d.HotelsCount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	var coreMap map[string]json.RawMessage
	if err := json.Unmarshal(core, &coreMap); err != nil {
		return nil, err
	}
	// core fields win over same-named extras
	for k, v := range coreMap {
		out[k] = v
	}
	return json.Marshal(out)
}

func (d *Destination) UnmarshalJSON(data []byte) error {
	var core destinationJSON
	if err := json.Unmarshal(data, &core); err != nil {
		return err
	}
	extra, err := extraFields(data, destinationKeys)
	if err != nil {
		return err
	}
	*d = Destination{
		ID:          core.ID,
		Name:        core.Name,
		Country:     core.Country,
		Description: core.Description,
		ImageURL:    core.ImageURL,
		Coordinates: core.Coordinates,
		Photos:      core.Photos,
		Language:    core.Language,
		Extra:       extra,
		HotelsCount: core.HotelsCount,
		CreatedAt:   core.CreatedAt,
		UpdatedAt:   core.UpdatedAt,
	}
	return nil
}

// LocalizedName resolves the display name for code with root fallback.
func (d Destination) LocalizedName(code Lang) string {
	return d.Language.Resolve(code, FieldName, d.Name)
}

// LocalizedDescription resolves the display description for code.
func (d Destination) LocalizedDescription(code Lang) string {
	return d.Language.Resolve(code, FieldDescription, d.Description)
}

// CheckLatitude and CheckLongitude are shared by Validate and the API-handler
// boundary so both layers reject identical inputs with identical messages.
func CheckLatitude(v float64) error {
	if v < -90 || v > 90 {
		return validationf("coordinates.lat must be between -90 and 90")
	}
	return nil
}

func CheckLongitude(v float64) error {
	if v < -180 || v > 180 {
		return validationf("coordinates.lon must be between -180 and 180")
	}
	return nil
}

func validatePhotos(photos []Photo) error {
	for _, p := range photos {
		if strings.TrimSpace(p.URL) == "" {
			return validationf("photo url is required")
		}
		if len(p.Caption) > maxCaptionLen {
			return validationf("photo caption cannot exceed %d characters", maxCaptionLen)
		}
	}
	return nil
}

// Validate checks required fields and numeric bounds on the record as it
// would be persisted.
func (d Destination) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Country) == "" {
		missing = append(missing, "country")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return validationf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if c := d.Coordinates; c != nil {
		if c.Lat == nil || c.Lon == nil {
			return validationf("coordinates require both lat and lon")
		}
		if err := CheckLatitude(*c.Lat); err != nil {
			return err
		}
		if err := CheckLongitude(*c.Lon); err != nil {
			return err
		}
	}
	return validatePhotos(d.Photos)
}

// DestinationPatch is a partial destination document as sent by a client.
// nil pointers mean "key absent: keep the stored value". A JSON null is
// decoded to nil as well, so null never wipes existing data.
type DestinationPatch struct {
	Name        *string
	Country     *string
	Description *string
	ImageURL    *string
	Coordinates *Coordinates
	Photos      []Photo
	Language    *LanguageMap
	Extra       map[string]json.RawMessage
}

type destinationPatchJSON struct {
	Name        *string      `json:"name"`
	Country     *string      `json:"country"`
	Description *string      `json:"description"`
	ImageURL    *string      `json:"imageUrl"`
	Coordinates *Coordinates `json:"coordinates"`
	Photos      []Photo      `json:"photos"`
	Language    *LanguageMap `json:"language"`
}

func (p *DestinationPatch) UnmarshalJSON(data []byte) error {
	var core destinationPatchJSON
	if err := json.Unmarshal(data, &core); err != nil {
		return err
	}
	extra, err := extraFields(data, destinationKeys)
	if err != nil {
		return err
	}
	*p = DestinationPatch{
		Name:        core.Name,
		Country:     core.Country,
		Description: core.Description,
		ImageURL:    core.ImageURL,
		Coordinates: core.Coordinates,
		Photos:      core.Photos,
		Language:    core.Language,
		Extra:       extra,
	}
	return nil
}

// Apply overlays the provided fields onto d. Absent keys leave d untouched;
// dynamic fields merge key-by-key.
func (p DestinationPatch) Apply(d *Destination) {
	if p.Name != nil {
		d.Name = strings.TrimSpace(*p.Name)
	}
	if p.Country != nil {
		d.Country = strings.TrimSpace(*p.Country)
	}
	if p.Description != nil {
		d.Description = strings.TrimSpace(*p.Description)
	}
	if p.ImageURL != nil {
		d.ImageURL = strings.TrimSpace(*p.ImageURL)
	}
	if p.Coordinates != nil {
		d.Coordinates = p.Coordinates
	}
	if p.Photos != nil {
		d.Photos = p.Photos
	}
	if p.Language != nil {
		d.Language = p.Language
	}
	d.Extra = mergeExtras(d.Extra, p.Extra)
}

// NewDestination builds a record from a create payload, rejecting it when a
// required field is absent or blank.
func NewDestination(p DestinationPatch) (Destination, error) {
	var d Destination
	p.Apply(&d)
	if err := d.Validate(); err != nil {
		return Destination{}, err
	}
	return d, nil
}
