package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"travelhub/internal/domain"
)

// Documents are stored as one row per record: scalar core fields in typed
// columns (so ranges and sorts stay indexable), nested structures and the
// dynamic-field sidecar in JSON columns.

type rowScanner interface {
	Scan(dest ...any) error
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// jsonDoc marshals v for a JSON column.
func jsonDoc(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// jsonArr marshals a slice for a NOT NULL JSON column; nil becomes "[]".
func jsonArr[T any](s []T) (string, error) {
	if s == nil {
		s = []T{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ---------- destinations ----------

type DestinationRepo struct{ db *sql.DB }

func NewDestinationRepo(db *sql.DB) *DestinationRepo { return &DestinationRepo{db: db} }

func destinationArgs(d domain.Destination) ([]any, error) {
	var coords any
	var err error
	if d.Coordinates != nil {
		if coords, err = jsonDoc(d.Coordinates); err != nil {
			return nil, err
		}
	}
	photos, err := jsonArr(d.Photos)
	if err != nil {
		return nil, err
	}
	var lang any
	if d.Language != nil {
		if lang, err = jsonDoc(d.Language); err != nil {
			return nil, err
		}
	}
	var extras any
	if len(d.Extra) > 0 {
		if extras, err = jsonDoc(d.Extra); err != nil {
			return nil, err
		}
	}
	return []any{d.Name, d.Country, d.Description, nullStr(d.ImageURL), coords, photos, lang, extras}, nil
}

func (r *DestinationRepo) Insert(ctx context.Context, d domain.Destination) error {
	args, err := destinationArgs(d)
	if err != nil {
		return err
	}
	full := append([]any{d.ID}, args...)
	full = append(full, d.CreatedAt, d.UpdatedAt)
	_, err = r.db.ExecContext(ctx, insertDestinationSQL, full...)
	return err
}

func (r *DestinationRepo) Update(ctx context.Context, d domain.Destination) error {
	args, err := destinationArgs(d)
	if err != nil {
		return err
	}
	args = append(args, d.UpdatedAt, d.ID)
	_, err = r.db.ExecContext(ctx, updateDestinationSQL, args...)
	return err
}

func scanDestination(sc rowScanner) (domain.Destination, error) {
	var d domain.Destination
	var imageURL sql.NullString
	var coordsB, photosB, langB, extrasB []byte
	if err := sc.Scan(
		&d.ID, &d.Name, &d.Country, &d.Description, &imageURL,
		&coordsB, &photosB, &langB, &extrasB, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return domain.Destination{}, err
	}
	d.ImageURL = imageURL.String
	if len(coordsB) > 0 {
		if err := json.Unmarshal(coordsB, &d.Coordinates); err != nil {
			return domain.Destination{}, err
		}
	}
	if len(photosB) > 0 {
		if err := json.Unmarshal(photosB, &d.Photos); err != nil {
			return domain.Destination{}, err
		}
	}
	if len(langB) > 0 {
		if err := json.Unmarshal(langB, &d.Language); err != nil {
			return domain.Destination{}, err
		}
	}
	if len(extrasB) > 0 {
		if err := json.Unmarshal(extrasB, &d.Extra); err != nil {
			return domain.Destination{}, err
		}
	}
	return d, nil
}

func (r *DestinationRepo) Get(ctx context.Context, id string) (domain.Destination, error) {
	d, err := scanDestination(r.db.QueryRowContext(ctx, getDestinationSQL, id))
	if err == sql.ErrNoRows {
		return domain.Destination{}, domain.ErrNotFound
	}
	return d, err
}

func (r *DestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DestinationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteDestinationSQL, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---------- hotels ----------

type HotelRepo struct{ db *sql.DB }

func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

func hotelArgs(h domain.Hotel) ([]any, error) {
	roomTypes, err := jsonArr(h.RoomTypes)
	if err != nil {
		return nil, err
	}
	attractions, err := jsonArr(h.NearbyAttractions)
	if err != nil {
		return nil, err
	}
	amenities, err := jsonArr(h.Amenities)
	if err != nil {
		return nil, err
	}
	photos, err := jsonArr(h.Photos)
	if err != nil {
		return nil, err
	}
	var lang any
	if h.Language != nil {
		if lang, err = jsonDoc(h.Language); err != nil {
			return nil, err
		}
	}
	var extras any
	if len(h.Extra) > 0 {
		if extras, err = jsonDoc(h.Extra); err != nil {
			return nil, err
		}
	}
	return []any{
		h.DestinationID, h.Name, h.Description, h.Address,
		h.Stars, h.Rating, h.PriceFrom, nullF64(h.PricePerNight),
		roomTypes, attractions, amenities,
		nullStr(h.ImageURL), photos, lang, extras,
	}, nil
}

func (r *HotelRepo) Insert(ctx context.Context, h domain.Hotel) error {
	args, err := hotelArgs(h)
	if err != nil {
		return err
	}
	full := append([]any{h.ID}, args...)
	full = append(full, h.CreatedAt, h.UpdatedAt)
	_, err = r.db.ExecContext(ctx, insertHotelSQL, full...)
	return err
}

func (r *HotelRepo) Update(ctx context.Context, h domain.Hotel) error {
	args, err := hotelArgs(h)
	if err != nil {
		return err
	}
	args = append(args, h.UpdatedAt, h.ID)
	_, err = r.db.ExecContext(ctx, updateHotelSQL, args...)
	return err
}

func scanHotel(sc rowScanner) (domain.Hotel, error) {
	var h domain.Hotel
	var pricePerNight sql.NullFloat64
	var imageURL sql.NullString
	var roomTypesB, attractionsB, amenitiesB, photosB, langB, extrasB []byte
	if err := sc.Scan(
		&h.ID, &h.DestinationID, &h.Name, &h.Description, &h.Address,
		&h.Stars, &h.Rating, &h.PriceFrom, &pricePerNight,
		&roomTypesB, &attractionsB, &amenitiesB,
		&imageURL, &photosB, &langB, &extrasB, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return domain.Hotel{}, err
	}
	if pricePerNight.Valid {
		v := pricePerNight.Float64
		h.PricePerNight = &v
	}
	h.ImageURL = imageURL.String
	for _, col := range []struct {
		raw []byte
		dst any
	}{
		{roomTypesB, &h.RoomTypes},
		{attractionsB, &h.NearbyAttractions},
		{amenitiesB, &h.Amenities},
		{photosB, &h.Photos},
		{langB, &h.Language},
		{extrasB, &h.Extra},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return domain.Hotel{}, err
		}
	}
	return h, nil
}

func (r *HotelRepo) Get(ctx context.Context, id string) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, id))
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

func (r *HotelRepo) queryHotels(ctx context.Context, q string, args ...any) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HotelRepo) List(ctx context.Context) ([]domain.Hotel, error) {
	return r.queryHotels(ctx, listHotelsSQL)
}

func (r *HotelRepo) ListByDestination(ctx context.Context, destinationID string) ([]domain.Hotel, error) {
	return r.queryHotels(ctx, listHotelsByDestinationSQL, destinationID)
}

// sortColumns whitelists the filter's sortBy keys; an unknown key falls back
// to creation time, and nothing user-supplied ever reaches the ORDER BY
// clause verbatim.
var sortColumns = map[string]string{
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"name":          "name",
	"stars":         "stars",
	"rating":        "rating",
	"priceFrom":     "price_from",
	"pricePerNight": "price_per_night",
}

func sortColumn(key string) string {
	if col, ok := sortColumns[key]; ok {
		return col
	}
	return "created_at"
}

func sortDirection(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}

func (r *HotelRepo) Filter(ctx context.Context, q domain.HotelFilter) ([]domain.Hotel, error) {
	var where []string
	var args []any
	if q.DestinationID != nil {
		where = append(where, "destination_id = ?")
		args = append(args, *q.DestinationID)
	}
	if q.MinPrice != nil {
		where = append(where, "price_per_night >= ?")
		args = append(args, *q.MinPrice)
	}
	if q.MaxPrice != nil {
		where = append(where, "price_per_night <= ?")
		args = append(args, *q.MaxPrice)
	}
	if q.MinRating != nil {
		where = append(where, "rating >= ?")
		args = append(args, *q.MinRating)
	}
	if q.MaxRating != nil {
		where = append(where, "rating <= ?")
		args = append(args, *q.MaxRating)
	}
	if len(q.Amenities) > 0 {
		// set intersection: match when any requested amenity is stored
		wanted, err := jsonArr(q.Amenities)
		if err != nil {
			return nil, err
		}
		where = append(where, "JSON_OVERLAPS(amenities, CAST(? AS JSON))")
		args = append(args, wanted)
	}

	sqlStr := selectHotelsPrefix
	if len(where) > 0 {
		sqlStr += "\nWHERE " + strings.Join(where, " AND ")
	}
	sqlStr += "\nORDER BY " + sortColumn(q.SortBy) + " " + sortDirection(q.SortOrder) + ", seq ASC"
	return r.queryHotels(ctx, sqlStr, args...)
}

func (r *HotelRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteHotelSQL, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *HotelRepo) CountByDestination(ctx context.Context, destinationID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countHotelsByDestinationSQL, destinationID).Scan(&n)
	return n, err
}

func (r *HotelRepo) CountsByDestination(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, countsByDestinationSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var id string
		var n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}
