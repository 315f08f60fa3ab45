package mysql

const destinationColumns = `
  id, name, country, description, image_url,
  coordinates, photos, language, extras, created_at, updated_at`

const insertDestinationSQL = `
INSERT INTO destinations
  (id, name, country, description, image_url, coordinates, photos, language, extras, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateDestinationSQL = `
UPDATE destinations SET
  name        = ?,
  country     = ?,
  description = ?,
  image_url   = ?,
  coordinates = ?,
  photos      = ?,
  language    = ?,
  extras      = ?,
  updated_at  = ?
WHERE id = ?
`

const getDestinationSQL = `
SELECT` + destinationColumns + `
FROM destinations
WHERE id = ?
`

// seq is the insertion counter; every list query breaks created_at ties with
// seq ASC so same-timestamp records always come back in insertion order.
const listDestinationsSQL = `
SELECT` + destinationColumns + `
FROM destinations
ORDER BY created_at DESC, seq ASC
`

const deleteDestinationSQL = `DELETE FROM destinations WHERE id = ?`

const hotelColumns = `
  id, destination_id, name, description, address,
  stars, rating, price_from, price_per_night,
  room_types, nearby_attractions, amenities,
  image_url, photos, language, extras, created_at, updated_at`

const insertHotelSQL = `
INSERT INTO hotels
  (id, destination_id, name, description, address,
   stars, rating, price_from, price_per_night,
   room_types, nearby_attractions, amenities,
   image_url, photos, language, extras, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateHotelSQL = `
UPDATE hotels SET
  destination_id     = ?,
  name               = ?,
  description        = ?,
  address            = ?,
  stars              = ?,
  rating             = ?,
  price_from         = ?,
  price_per_night    = ?,
  room_types         = ?,
  nearby_attractions = ?,
  amenities          = ?,
  image_url          = ?,
  photos             = ?,
  language           = ?,
  extras             = ?,
  updated_at         = ?
WHERE id = ?
`

const getHotelSQL = `
SELECT` + hotelColumns + `
FROM hotels
WHERE id = ?
`

const listHotelsSQL = `
SELECT` + hotelColumns + `
FROM hotels
ORDER BY created_at DESC, seq ASC
`

const listHotelsByDestinationSQL = `
SELECT` + hotelColumns + `
FROM hotels
WHERE destination_id = ?
ORDER BY created_at DESC, seq ASC
`

// selectHotelsPrefix is the base of the dynamically assembled filter query.
const selectHotelsPrefix = `
SELECT` + hotelColumns + `
FROM hotels`

const deleteHotelSQL = `DELETE FROM hotels WHERE id = ?`

const countHotelsByDestinationSQL = `
SELECT COUNT(*) FROM hotels WHERE destination_id = ?
`

const countsByDestinationSQL = `
SELECT destination_id, COUNT(*) FROM hotels GROUP BY destination_id
`
