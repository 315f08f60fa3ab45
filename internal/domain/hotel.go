package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// RoomType is one bookable room category of a hotel.
type RoomType struct {
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Facilities []string `json:"facilities,omitempty"`
}

// NearbyAttraction is a point of interest near a hotel; distance is free text
// ("300 m", "10 min walk") exactly as entered.
type NearbyAttraction struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

// DestinationRef is the reduced destination view attached to hotel reads.
type DestinationRef struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Country     string       `json:"country"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Language    *LanguageMap `json:"language,omitempty"`
}

// Hotel is an accommodation record linked to one Destination via
// DestinationID. The reference is not enforced by the store: a destination
// delete leaves its hotels in place, and an orphaned DestinationID simply
// yields no attached view on reads.
type Hotel struct {
	ID            string
	DestinationID string
	Name          string
	Description   string
	Address       string

	Stars         int
	Rating        float64
	PriceFrom     float64
	PricePerNight *float64 // legacy price field, used by the filter path

	RoomTypes         []RoomType
	NearbyAttractions []NearbyAttraction
	Amenities         []string

	ImageURL string
	Photos   []Photo
	Language *LanguageMap
	Extra    map[string]json.RawMessage

	// Destination is attached at read time when the caller asks for it.
	// Never stored.
	Destination *DestinationRef

	CreatedAt time.Time
	UpdatedAt time.Time
}

var hotelKeys = keySet(
	"id", "destinationId", "name", "description", "address", "stars", "rating",
	"priceFrom", "pricePerNight", "roomTypes", "nearbyAttractions", "amenities",
	"imageUrl", "photos", "language", "destination", "createdAt", "updatedAt",
)

type hotelJSON struct {
	ID                string             `json:"id"`
	DestinationID     string             `json:"destinationId"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Address           string             `json:"address"`
	Stars             int                `json:"stars"`
	Rating            float64            `json:"rating"`
	PriceFrom         float64            `json:"priceFrom"`
	PricePerNight     *float64           `json:"pricePerNight,omitempty"`
	RoomTypes         []RoomType         `json:"roomTypes"`
	NearbyAttractions []NearbyAttraction `json:"nearbyAttractions"`
	Amenities         []string           `json:"amenities"`
	ImageURL          string             `json:"imageUrl,omitempty"`
	Photos            []Photo            `json:"photos"`
	Language          *LanguageMap       `json:"language,omitempty"`
	Destination       *DestinationRef    `json:"destination,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

func (h Hotel) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(h.Extra)+18)
	for k, v := range h.Extra {
		out[k] = v
	}
	core, err := json.Marshal(hotelJSON{
		ID:                h.ID,
		DestinationID:     h.DestinationID,
		Name:              h.Name,
		Description:       h.Description,
		Address:           h.Address,
		Stars:             h.Stars,
		Rating:            h.Rating,
		PriceFrom:         h.PriceFrom,
		PricePerNight:     h.PricePerNight,
		RoomTypes:         emptyIfNil(h.RoomTypes),
		NearbyAttractions: emptyIfNil(h.NearbyAttractions),
		Amenities:         emptyIfNil(h.Amenities),
		ImageURL:          h.ImageURL,
		Photos:            emptyIfNil(h.Photos),
		Language:          h.Language,
		Destination:       h.Destination,
		CreatedAt:         h.CreatedAt,
		UpdatedAt:         h.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	var coreMap map[string]json.RawMessage
	if err := json.Unmarshal(core, &coreMap); err != nil {
		return nil, err
	}
	for k, v := range coreMap {
		out[k] = v
	}
	return json.Marshal(out)
}

func (h *Hotel) UnmarshalJSON(data []byte) error {
	var core hotelJSON
	if err := json.Unmarshal(data, &core); err != nil {
		return err
	}
	extra, err := extraFields(data, hotelKeys)
	if err != nil {
		return err
	}
	*h = Hotel{
		ID:                core.ID,
		DestinationID:     core.DestinationID,
		Name:              core.Name,
		Description:       core.Description,
		Address:           core.Address,
		Stars:             core.Stars,
		Rating:            core.Rating,
		PriceFrom:         core.PriceFrom,
		PricePerNight:     core.PricePerNight,
		RoomTypes:         core.RoomTypes,
		NearbyAttractions: core.NearbyAttractions,
		Amenities:         core.Amenities,
		ImageURL:          core.ImageURL,
		Photos:            core.Photos,
		Language:          core.Language,
		Extra:             extra,
		Destination:       core.Destination,
		CreatedAt:         core.CreatedAt,
		UpdatedAt:         core.UpdatedAt,
	}
	return nil
}

// LocalizedName resolves the display name for code with root fallback.
func (h Hotel) LocalizedName(code Lang) string {
	return h.Language.Resolve(code, FieldName, h.Name)
}

// LocalizedDescription resolves the display description for code.
func (h Hotel) LocalizedDescription(code Lang) string {
	return h.Language.Resolve(code, FieldDescription, h.Description)
}

// Ref returns the reduced view attached to hotel reads.
func (d Destination) Ref() *DestinationRef {
	return &DestinationRef{
		ID:          d.ID,
		Name:        d.Name,
		Country:     d.Country,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Language:    d.Language,
	}
}

// Bound checks shared by Hotel.Validate and the API-handler boundary, so the
// two layers reject identical inputs with identical messages.

func CheckStars(v int) error {
	if v < 1 || v > 5 {
		return validationf("stars must be between 1 and 5")
	}
	return nil
}

func CheckRating(v float64) error {
	if v < 0 || v > 5 {
		return validationf("rating must be between 0 and 5")
	}
	return nil
}

func CheckPriceFrom(v float64) error {
	if v < 0 {
		return validationf("priceFrom must be zero or positive")
	}
	return nil
}

func CheckPricePerNight(v float64) error {
	if v < 0 {
		return validationf("pricePerNight must be zero or positive")
	}
	return nil
}

// Validate checks required fields and numeric bounds on the record as it
// would be persisted.
func (h Hotel) Validate() error {
	var missing []string
	if strings.TrimSpace(h.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(h.DestinationID) == "" {
		missing = append(missing, "destinationId")
	}
	if strings.TrimSpace(h.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(h.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return validationf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if err := CheckStars(h.Stars); err != nil {
		return err
	}
	if err := CheckRating(h.Rating); err != nil {
		return err
	}
	if err := CheckPriceFrom(h.PriceFrom); err != nil {
		return err
	}
	if h.PricePerNight != nil {
		if err := CheckPricePerNight(*h.PricePerNight); err != nil {
			return err
		}
	}
	for _, rt := range h.RoomTypes {
		if strings.TrimSpace(rt.Name) == "" {
			return validationf("roomTypes.name is required")
		}
		if rt.Price < 0 {
			return validationf("roomTypes.price must be zero or positive")
		}
	}
	for _, na := range h.NearbyAttractions {
		if strings.TrimSpace(na.Name) == "" || strings.TrimSpace(na.Distance) == "" {
			return validationf("nearbyAttractions entries require name and distance")
		}
	}
	return validatePhotos(h.Photos)
}

// HotelPatch is a partial hotel document as sent by a client. nil pointers
// mean "key absent: keep the stored value"; a JSON null decodes to nil too,
// so null never wipes existing data.
type HotelPatch struct {
	Name              *string
	DestinationID     *string
	Description       *string
	Address           *string
	Stars             *int
	Rating            *float64
	PriceFrom         *float64
	PricePerNight     *float64
	RoomTypes         []RoomType
	NearbyAttractions []NearbyAttraction
	Amenities         []string
	ImageURL          *string
	Photos            []Photo
	Language          *LanguageMap
	Extra             map[string]json.RawMessage
}

type hotelPatchJSON struct {
	Name              *string            `json:"name"`
	DestinationID     *string            `json:"destinationId"`
	Description       *string            `json:"description"`
	Address           *string            `json:"address"`
	Stars             *int               `json:"stars"`
	Rating            *float64           `json:"rating"`
	PriceFrom         *float64           `json:"priceFrom"`
	PricePerNight     *float64           `json:"pricePerNight"`
	RoomTypes         []RoomType         `json:"roomTypes"`
	NearbyAttractions []NearbyAttraction `json:"nearbyAttractions"`
	Amenities         []string           `json:"amenities"`
	ImageURL          *string            `json:"imageUrl"`
	Photos            []Photo            `json:"photos"`
	Language          *LanguageMap       `json:"language"`
}

func (p *HotelPatch) UnmarshalJSON(data []byte) error {
	var core hotelPatchJSON
	if err := json.Unmarshal(data, &core); err != nil {
		return err
	}
	extra, err := extraFields(data, hotelKeys)
	if err != nil {
		return err
	}
	*p = HotelPatch{
		Name:              core.Name,
		DestinationID:     core.DestinationID,
		Description:       core.Description,
		Address:           core.Address,
		Stars:             core.Stars,
		Rating:            core.Rating,
		PriceFrom:         core.PriceFrom,
		PricePerNight:     core.PricePerNight,
		RoomTypes:         core.RoomTypes,
		NearbyAttractions: core.NearbyAttractions,
		Amenities:         core.Amenities,
		ImageURL:          core.ImageURL,
		Photos:            core.Photos,
		Language:          core.Language,
		Extra:             extra,
	}
	return nil
}

// Apply overlays the provided fields onto h. Absent keys leave h untouched;
// dynamic fields merge key-by-key.
func (p HotelPatch) Apply(h *Hotel) {
	if p.Name != nil {
		h.Name = strings.TrimSpace(*p.Name)
	}
	if p.DestinationID != nil {
		h.DestinationID = strings.TrimSpace(*p.DestinationID)
	}
	if p.Description != nil {
		h.Description = strings.TrimSpace(*p.Description)
	}
	if p.Address != nil {
		h.Address = strings.TrimSpace(*p.Address)
	}
	if p.Stars != nil {
		h.Stars = *p.Stars
	}
	if p.Rating != nil {
		h.Rating = *p.Rating
	}
	if p.PriceFrom != nil {
		h.PriceFrom = *p.PriceFrom
	}
	if p.PricePerNight != nil {
		v := *p.PricePerNight
		h.PricePerNight = &v
	}
	if p.RoomTypes != nil {
		h.RoomTypes = p.RoomTypes
	}
	if p.NearbyAttractions != nil {
		h.NearbyAttractions = p.NearbyAttractions
	}
	if p.Amenities != nil {
		h.Amenities = p.Amenities
	}
	if p.ImageURL != nil {
		h.ImageURL = strings.TrimSpace(*p.ImageURL)
	}
	if p.Photos != nil {
		h.Photos = p.Photos
	}
	if p.Language != nil {
		h.Language = p.Language
	}
	h.Extra = mergeExtras(h.Extra, p.Extra)
}

// NewHotel builds a record from a create payload. Numeric required fields are
// presence-checked on the patch because a typed zero cannot be told apart
// from an absent key once applied.
func NewHotel(p HotelPatch) (Hotel, error) {
	var missing []string
	if p.Name == nil {
		missing = append(missing, "name")
	}
	if p.DestinationID == nil {
		missing = append(missing, "destinationId")
	}
	if p.Description == nil {
		missing = append(missing, "description")
	}
	if p.Address == nil {
		missing = append(missing, "address")
	}
	if p.Stars == nil {
		missing = append(missing, "stars")
	}
	if p.Rating == nil {
		missing = append(missing, "rating")
	}
	if p.PriceFrom == nil {
		missing = append(missing, "priceFrom")
	}
	if len(missing) > 0 {
		return Hotel{}, validationf("missing required fields: %s", strings.Join(missing, ", "))
	}
	var h Hotel
	p.Apply(&h)
	if err := h.Validate(); err != nil {
		return Hotel{}, err
	}
	return h, nil
}
