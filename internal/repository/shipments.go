package repository

import (
	"context"
	"time"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func (r *Repository) CreateShipment(shipment *domain.Shipment) error {
	query := `
		INSERT INTO shipments (tracking_code, carrier, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{shipment.TrackingCode, shipment.Carrier, shipment.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shipment.ID, &shipment.CreatedAt, &shipment.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShipmentByTrackingCode(code string) (*domain.Shipment, error) {
	query := `
		SELECT id, carrier, status, created_at, version
		FROM shipments WHERE tracking_code = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shipment := &domain.Shipment{
		TrackingCode: code,
	}

	dst := []any{&shipment.ID, &shipment.Carrier, &shipment.Status, &shipment.CreatedAt, &shipment.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, code).Scan(dst...); err != nil {
		return nil, err
	}

	eventsQuery := `
		SELECT id, location, description, occurred_at
		FROM shipment_events WHERE shipment_id = $1
		ORDER BY occurred_at, id
	`
	rows, err := r.dbpool.QueryContext(ctx, eventsQuery, shipment.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipment.Events = make([]domain.ShipmentEvent, 0)
	for rows.Next() {
		var event domain.ShipmentEvent
		dst := []any{&event.ID, &event.Location, &event.Description, &event.OccurredAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shipment.Events = append(shipment.Events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shipment, nil
}

// AddShipmentEvent appends a checkpoint and moves the shipment's status in
// the same transaction.
func (r *Repository) AddShipmentEvent(shipment *domain.Shipment, event *domain.ShipmentEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO shipment_events (shipment_id, location, description, occurred_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{shipment.ID, event.Location, event.Description, event.OccurredAt}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&event.ID); err != nil {
		return err
	}

	query = `
		UPDATE shipments
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`
	if err := tx.QueryRowContext(ctx, query, shipment.Status, shipment.ID, shipment.Version).Scan(&shipment.Version); err != nil {
		return err
	}

	return tx.Commit()
}
