package repository

import (
	"context"

	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/pkg/databases/mysql"
)

type RideRepository struct {
	DB mysql.DBInterface
}

func NewRideRepository(db mysql.DBInterface) *RideRepository {
	return &RideRepository{
		DB: db,
	}
}

func (r *RideRepository) History(ctx context.Context, userID string) ([]entity.RideHistory, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var rides []entity.RideHistory
	query := `
		SELECT
			id,
			ride_id,
			client_id,
			transporter_id,
			client_name,
			transporter_name,
			pickup,
			destination,
			price,
			distance,
			duration,
			vehicle_type,
			service_type,
			transport_type,
			status,
			rating,
			comment,
			rated_at,
			completed_at,
			created_at
		FROM ride_history
		WHERE client_id = ? OR transporter_id = ?
		ORDER BY created_at DESC
		LIMIT 50
	`

	err = db.SelectContext(ctx, &rides, query, userID, userID)
	if err != nil {
		return nil, err
	}

	return rides, nil
}

func (r *RideRepository) Insert(ctx context.Context, ride *entity.RideHistory) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ride_history (
			ride_id, client_id, transporter_id, client_name, transporter_name,
			pickup, destination, price, distance, duration,
			vehicle_type, service_type, transport_type, status, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.ExecContext(ctx, query,
		ride.RideID, ride.ClientID, ride.TransporterID, ride.ClientName, ride.TransporterName,
		ride.Pickup, ride.Destination, ride.Price, ride.Distance, ride.Duration,
		ride.VehicleType, ride.ServiceType, ride.TransportType, ride.Status, ride.CompletedAt,
	)
	return err
}

func (r *RideRepository) SetRating(ctx context.Context, rideID string, rating int, comment string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE ride_history
		SET rating = ?, comment = ?, rated_at = NOW()
		WHERE ride_id = ?
	`

	_, err = db.ExecContext(ctx, query, rating, comment, rideID)
	return err
}

func (r *RideRepository) Earnings(ctx context.Context, transporterID string) (*entity.EarningsSummary, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var summary entity.EarningsSummary
	query := `
		SELECT
			COUNT(*) AS total_rides,
			COALESCE(SUM(price), 0) AS total_earnings
		FROM ride_history
		WHERE transporter_id = ?
		AND status = 'completed'
	`

	err = db.GetContext(ctx, &summary, query, transporterID)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
