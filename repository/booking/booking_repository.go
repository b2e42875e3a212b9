package booking

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/worksy/worksy-api/model"
)

var errNoConn = errors.New("database connection is not configured")

type SQL struct {
	conn *sqlx.DB
}

type BookingRepository interface {
	List(ctx context.Context, filter *model.BookingFilter) ([]model.BookingEntity, error)
	Get(ctx context.Context, id string) (*model.BookingEntity, error)
	Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error)
	Update(ctx context.Context, id string, upd *model.BookingUpdate, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

func NewBookingRepository(conn *sqlx.DB) BookingRepository {
	return &SQL{conn: conn}
}

const (
	bookingColumns = `id, service_id, customer_id, provider_id, customer_name, provider_name, service_title, price, scheduled_date, scheduled_time, address, phone, notes, status, created_at, updated_at`

	insertBookingQuery = `INSERT INTO bookings (` + bookingColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getBookingQuery    = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	listBookingsBase   = `SELECT ` + bookingColumns + ` FROM bookings WHERE true`
	deleteBookingQuery = `DELETE FROM bookings WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, filter *model.BookingFilter) ([]model.BookingEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	query := listBookingsBase
	args := make([]any, 0, 3)

	if filter.CustomerID != "" {
		query += " AND customer_id = ?"
		args = append(args, filter.CustomerID)
	}
	if filter.ProviderID != "" {
		query += " AND provider_id = ?"
		args = append(args, filter.ProviderID)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]model.BookingEntity, 0)
	for rows.Next() {
		var entity model.BookingEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		bookings = append(bookings, entity)
	}
	return bookings, rows.Err()
}

func (s *SQL) Get(ctx context.Context, id string) (*model.BookingEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	var entity model.BookingEntity
	if err := s.conn.QueryRowxContext(ctx, getBookingQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	data.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	data.CreatedAt = now
	data.UpdatedAt = now

	_, err := s.conn.ExecContext(ctx, insertBookingQuery,
		data.ID, data.ServiceID, data.CustomerID, data.ProviderID, data.CustomerName,
		data.ProviderName, data.ServiceTitle, data.Price, data.ScheduledDate, data.ScheduledTime,
		data.Address, data.Phone, data.Notes, data.Status, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, id string, upd *model.BookingUpdate, updatedAt time.Time) error {
	if s.conn == nil {
		return errNoConn
	}

	sets := make([]string, 0, 12)
	args := make([]any, 0, 13)

	if upd.ServiceID != nil {
		sets = append(sets, "service_id = ?")
		args = append(args, *upd.ServiceID)
	}
	if upd.CustomerName != nil {
		sets = append(sets, "customer_name = ?")
		args = append(args, *upd.CustomerName)
	}
	if upd.ProviderName != nil {
		sets = append(sets, "provider_name = ?")
		args = append(args, *upd.ProviderName)
	}
	if upd.ServiceTitle != nil {
		sets = append(sets, "service_title = ?")
		args = append(args, *upd.ServiceTitle)
	}
	if upd.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, float64(*upd.Price))
	}
	if upd.ScheduledDate != nil {
		sets = append(sets, "scheduled_date = ?")
		args = append(args, *upd.ScheduledDate)
	}
	if upd.ScheduledTime != nil {
		sets = append(sets, "scheduled_time = ?")
		args = append(args, *upd.ScheduledTime)
	}
	if upd.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *upd.Address)
	}
	if upd.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *upd.Phone)
	}
	if upd.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *upd.Notes)
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *upd.Status)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt, id)

	query := "UPDATE bookings SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	if s.conn == nil {
		return errNoConn
	}

	_, err := s.conn.ExecContext(ctx, deleteBookingQuery, id)
	return err
}
