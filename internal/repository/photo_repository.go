package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
)

// PhotoRepo encapsulates queries on the `vehicle_photos` table.  Photos
// are stored as raw bytes; base64 encoding happens at the HTTP edge.
type PhotoRepo struct {
	db *sql.DB
}

// NewPhotoRepo constructs a PhotoRepo with the provided DB handle.
func NewPhotoRepo(db *sql.DB) *PhotoRepo {
	return &PhotoRepo{db: db}
}

// Create attaches a photo to a vehicle and populates its ID.
func (r *PhotoRepo) Create(ctx context.Context, p *model.Photo) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicle_photos (vehicle_id, image) VALUES (?, ?)`,
		p.VehicleID, p.Image)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// ListByVehicle returns all photos of a vehicle, oldest first.
func (r *PhotoRepo) ListByVehicle(ctx context.Context, vehicleID uint64) ([]*model.Photo, error) {
	const q = `SELECT id, vehicle_id, image, created_at
	           FROM vehicle_photos WHERE vehicle_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Photo
	for rows.Next() {
		p := new(model.Photo)
		if err := rows.Scan(&p.ID, &p.VehicleID, &p.Image, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CoversByVehicle returns the oldest photo of each requested vehicle
// keyed by vehicle id, in one query.  The catalog list uses it for
// cover images of the vehicles it is about to render; vehicles without
// a photo have no entry in the map.  An empty id list reads nothing.
func (r *PhotoRepo) CoversByVehicle(ctx context.Context, vehicleIDs []uint64) (map[uint64][]byte, error) {
	covers := make(map[uint64][]byte, len(vehicleIDs))
	if len(vehicleIDs) == 0 {
		return covers, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(vehicleIDs)), ",")
	q := `SELECT p.vehicle_id, p.image
		FROM vehicle_photos p
		JOIN (SELECT vehicle_id, MIN(id) AS id FROM vehicle_photos
		      WHERE vehicle_id IN (` + placeholders + `)
		      GROUP BY vehicle_id) first
		  ON first.id = p.id`
	args := make([]any, 0, len(vehicleIDs))
	for _, id := range vehicleIDs {
		args = append(args, id)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			vehicleID uint64
			image     []byte
		)
		if err := rows.Scan(&vehicleID, &image); err != nil {
			return nil, err
		}
		covers[vehicleID] = image
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return covers, nil
}
