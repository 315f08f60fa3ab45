package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func f64p(v float64) *float64 { return &v }

func TestNewDestinationMissingFields(t *testing.T) {
	_, err := NewDestination(DestinationPatch{Name: strp("Rome")})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "missing required fields: country, description", ValidationMessage(err))
}

func TestNewDestinationBlankCountsAsMissing(t *testing.T) {
	_, err := NewDestination(DestinationPatch{
		Name:        strp("  "),
		Country:     strp("Italy"),
		Description: strp("Eternal City"),
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "missing required fields: name", ValidationMessage(err))
}

func TestNewDestinationTrimsStrings(t *testing.T) {
	d, err := NewDestination(DestinationPatch{
		Name:        strp("  Rome "),
		Country:     strp(" Italy"),
		Description: strp("Eternal City"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rome", d.Name)
	assert.Equal(t, "Italy", d.Country)
}

func TestDestinationCoordinateBounds(t *testing.T) {
	base := DestinationPatch{
		Name:        strp("Rome"),
		Country:     strp("Italy"),
		Description: strp("Eternal City"),
	}

	base.Coordinates = &Coordinates{Lat: f64p(91), Lon: f64p(12.5)}
	_, err := NewDestination(base)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "coordinates.lat must be between -90 and 90", ValidationMessage(err))

	base.Coordinates = &Coordinates{Lat: f64p(41.9), Lon: f64p(-181)}
	_, err = NewDestination(base)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "coordinates.lon must be between -180 and 180", ValidationMessage(err))

	base.Coordinates = &Coordinates{Lat: f64p(41.9)}
	_, err = NewDestination(base)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "coordinates require both lat and lon", ValidationMessage(err))

	base.Coordinates = &Coordinates{Lat: f64p(41.9), Lon: f64p(12.5)}
	_, err = NewDestination(base)
	assert.NoError(t, err)
}

func TestDestinationPhotoValidation(t *testing.T) {
	base := DestinationPatch{
		Name:        strp("Rome"),
		Country:     strp("Italy"),
		Description: strp("Eternal City"),
	}

	base.Photos = []Photo{{URL: " "}}
	_, err := NewDestination(base)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "photo url is required", ValidationMessage(err))

	long := make([]byte, maxCaptionLen+1)
	for i := range long {
		long[i] = 'x'
	}
	base.Photos = []Photo{{URL: "https://x/p.jpg", Caption: string(long)}}
	_, err = NewDestination(base)
	require.ErrorIs(t, err, ErrValidation)
}

func TestDestinationPatchRoundTripsExtras(t *testing.T) {
	var p DestinationPatch
	payload := `{
		"name": "Rome", "country": "Italy", "description": "Eternal City",
		"region": "Lazio", "tags": ["history", "food"]
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &p))

	d, err := NewDestination(p)
	require.NoError(t, err)
	require.Contains(t, d.Extra, "region")
	require.Contains(t, d.Extra, "tags")

	out, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &got))
	assert.JSONEq(t, `"Lazio"`, string(got["region"]))
	assert.JSONEq(t, `["history","food"]`, string(got["tags"]))
	assert.JSONEq(t, `"Rome"`, string(got["name"]))
}

func TestDestinationMarshalCoreWinsOverExtra(t *testing.T) {
	d := Destination{
		Name: "Rome", Country: "Italy", Description: "Eternal City",
		Extra: map[string]json.RawMessage{"name": json.RawMessage(`"Shadow"`)},
	}
	out, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &got))
	assert.JSONEq(t, `"Rome"`, string(got["name"]))
}

func TestDestinationPatchNullDoesNotWipe(t *testing.T) {
	var p DestinationPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name": null, "country": "Japan"}`), &p))
	assert.Nil(t, p.Name)
	require.NotNil(t, p.Country)

	d := Destination{Name: "Tokyo", Country: "JP", Description: "Metropolis"}
	p.Apply(&d)
	assert.Equal(t, "Tokyo", d.Name)
	assert.Equal(t, "Japan", d.Country)
}

func TestDestinationPatchMergesExtras(t *testing.T) {
	d := Destination{
		Name: "Tokyo", Country: "Japan", Description: "Metropolis",
		Extra: map[string]json.RawMessage{
			"region":   json.RawMessage(`"Kanto"`),
			"timezone": json.RawMessage(`"JST"`),
		},
	}
	var p DestinationPatch
	require.NoError(t, json.Unmarshal([]byte(`{"region": "Kantō", "currency": "JPY"}`), &p))
	p.Apply(&d)

	assert.JSONEq(t, `"Kantō"`, string(d.Extra["region"]))
	assert.JSONEq(t, `"JST"`, string(d.Extra["timezone"]))
	assert.JSONEq(t, `"JPY"`, string(d.Extra["currency"]))
}

func TestDestinationMarshalEmitsEmptyPhotos(t *testing.T) {
	out, err := json.Marshal(Destination{Name: "Rome", Country: "Italy", Description: "x"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"photos":[]`)
}
