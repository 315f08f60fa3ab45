package main

import "travelhub/internal/domain"

func str(s string) *string     { return &s }
func f64(v float64) *float64   { return &v }
func intp(v int) *int          { return &v }
func coord(v float64) *float64 { return &v }

type seedHotel struct {
	destination string // destination seed name, resolved to an id at run time
	patch       domain.HotelPatch
}

var seedDestinations = []domain.DestinationPatch{
	{
		Name:        str("Paris"),
		Country:     str("France"),
		Description: str("The city of light, home of the Louvre and the Eiffel Tower."),
		ImageURL:    str("https://images.example.com/destinations/paris.jpg"),
		Coordinates: &domain.Coordinates{Lat: coord(48.8566), Lon: coord(2.3522)},
		Photos: []domain.Photo{
			{URL: "https://images.example.com/destinations/paris-1.jpg", Caption: "Eiffel Tower at dusk"},
			{URL: "https://images.example.com/destinations/paris-2.jpg", Caption: "Seine riverbank"},
		},
		Language: &domain.LanguageMap{
			AR: &domain.LanguageContent{Name: "باريس", Description: "مدينة النور، موطن اللوفر وبرج إيفل."},
		},
	},
	{
		Name:        str("Tokyo"),
		Country:     str("Japan"),
		Description: str("A dense metropolis mixing neon districts with quiet shrines."),
		ImageURL:    str("https://images.example.com/destinations/tokyo.jpg"),
		Coordinates: &domain.Coordinates{Lat: coord(35.6762), Lon: coord(139.6503)},
		Language: &domain.LanguageMap{
			AR: &domain.LanguageContent{Name: "طوكيو", Description: "مدينة كبرى تمزج أحياء النيون بالمعابد الهادئة."},
		},
	},
	{
		Name:        str("Cairo"),
		Country:     str("Egypt"),
		Description: str("The Nile capital, gateway to the pyramids of Giza."),
		ImageURL:    str("https://images.example.com/destinations/cairo.jpg"),
		Coordinates: &domain.Coordinates{Lat: coord(30.0444), Lon: coord(31.2357)},
		Language: &domain.LanguageMap{
			AR: &domain.LanguageContent{Name: "القاهرة", Description: "عاصمة النيل وبوابة أهرامات الجيزة."},
		},
	},
}

var seedHotels = []seedHotel{
	{
		destination: "Paris",
		patch: domain.HotelPatch{
			Name:          str("Hotel Lumière"),
			Description:   str("Boutique hotel two blocks from the Louvre."),
			Address:       str("12 Rue de Rivoli, 75001 Paris"),
			Stars:         intp(4),
			Rating:        f64(4.6),
			PriceFrom:     f64(180),
			PricePerNight: f64(210),
			Amenities:     []string{"WiFi", "Breakfast", "Bar"},
			RoomTypes: []domain.RoomType{
				{Name: "Double", Price: 210, Facilities: []string{"WiFi", "Minibar"}},
				{Name: "Suite", Price: 380, Facilities: []string{"WiFi", "Minibar", "Balcony"}},
			},
			NearbyAttractions: []domain.NearbyAttraction{
				{Name: "Louvre Museum", Distance: "400 m"},
				{Name: "Notre-Dame", Distance: "1.2 km"},
			},
			Language: &domain.LanguageMap{
				AR: &domain.LanguageContent{Name: "فندق لوميير", Description: "فندق بوتيكي على بعد خطوات من اللوفر."},
			},
		},
	},
	{
		destination: "Paris",
		patch: domain.HotelPatch{
			Name:          str("Le Jardin du Marais"),
			Description:   str("Quiet courtyard hotel in the Marais district."),
			Address:       str("5 Rue des Archives, 75004 Paris"),
			Stars:         intp(3),
			Rating:        f64(4.2),
			PriceFrom:     f64(120),
			PricePerNight: f64(140),
			Amenities:     []string{"WiFi", "Garden"},
		},
	},
	{
		destination: "Tokyo",
		patch: domain.HotelPatch{
			Name:          str("Shinjuku Sky Hotel"),
			Description:   str("High-rise rooms over the west Shinjuku skyline."),
			Address:       str("2-7-1 Nishi-Shinjuku, Tokyo"),
			Stars:         intp(5),
			Rating:        f64(4.8),
			PriceFrom:     f64(250),
			PricePerNight: f64(320),
			Amenities:     []string{"WiFi", "Pool", "Gym", "Onsen"},
			RoomTypes: []domain.RoomType{
				{Name: "City View Twin", Price: 320, Facilities: []string{"WiFi", "City view"}},
			},
			Language: &domain.LanguageMap{
				AR: &domain.LanguageContent{Name: "فندق شينجوكو سكاي"},
			},
		},
	},
	{
		destination: "Cairo",
		patch: domain.HotelPatch{
			Name:          str("Nile Terrace Hotel"),
			Description:   str("River-facing terraces a short drive from Giza."),
			Address:       str("Corniche El Nil, Cairo"),
			Stars:         intp(4),
			Rating:        f64(4.4),
			PriceFrom:     f64(90),
			PricePerNight: f64(110),
			Amenities:     []string{"WiFi", "Pool", "Breakfast"},
			NearbyAttractions: []domain.NearbyAttraction{
				{Name: "Egyptian Museum", Distance: "2 km"},
				{Name: "Giza Pyramids", Distance: "15 km"},
			},
			Language: &domain.LanguageMap{
				AR: &domain.LanguageContent{Name: "فندق شرفة النيل", Description: "شرفات مطلة على النيل على مسافة قصيرة من الجيزة."},
			},
		},
	},
}
