package service

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

// listLimit caps every catalog listing regardless of filters.
const listLimit = 50

type SQL struct {
	conn *sqlx.DB
}

type ServiceRepository interface {
	List(ctx context.Context, filter *model.ServiceFilter) ([]model.ServiceEntity, error)
	Get(ctx context.Context, id string) (*model.ServiceEntity, error)
	Create(ctx context.Context, data *model.ServiceEntity) (*model.ServiceEntity, error)
	Update(ctx context.Context, id string, upd *model.ServiceUpdate, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

func NewServiceRepository(conn *sqlx.DB) ServiceRepository {
	return &SQL{conn: conn}
}

const (
	serviceColumns = `id, title, description, category, price, location, provider_id, provider_name, images, availability, rating, review_count, created_at, updated_at`

	insertServiceQuery = `INSERT INTO services (` + serviceColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getServiceQuery    = `SELECT ` + serviceColumns + ` FROM services WHERE id = ?`
	listServicesBase   = `SELECT ` + serviceColumns + ` FROM services WHERE true`
	deleteServiceQuery = `DELETE FROM services WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, filter *model.ServiceFilter) ([]model.ServiceEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	query := listServicesBase
	args := make([]any, 0, 5)

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.ProviderID != "" {
		query += " AND provider_id = ?"
		args = append(args, filter.ProviderID)
	}
	if filter.MinPrice != nil {
		query += " AND price >= ?"
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query += " AND price <= ?"
		args = append(args, *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		query += " AND rating >= ?"
		args = append(args, *filter.MinRating)
	}

	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, listLimit)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]model.ServiceEntity, 0)
	for rows.Next() {
		var entity model.ServiceEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		services = append(services, entity)
	}
	return services, rows.Err()
}

func (s *SQL) Get(ctx context.Context, id string) (*model.ServiceEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	var entity model.ServiceEntity
	if err := s.conn.QueryRowxContext(ctx, getServiceQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ServiceEntity) (*model.ServiceEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	data.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	data.CreatedAt = now
	data.UpdatedAt = now

	_, err := s.conn.ExecContext(ctx, insertServiceQuery,
		data.ID, data.Title, data.Description, data.Category, data.Price, data.Location,
		data.ProviderID, data.ProviderName, data.Images, data.Availability,
		data.Rating, data.ReviewCount, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, id string, upd *model.ServiceUpdate, updatedAt time.Time) error {
	if s.conn == nil {
		return errNoConn
	}

	sets := make([]string, 0, 11)
	args := make([]any, 0, 12)

	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *upd.Category)
	}
	if upd.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, float64(*upd.Price))
	}
	if upd.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *upd.Location)
	}
	if upd.ProviderName != nil {
		sets = append(sets, "provider_name = ?")
		args = append(args, *upd.ProviderName)
	}
	if upd.Images != nil {
		sets = append(sets, "images = ?")
		args = append(args, *upd.Images)
	}
	if upd.Availability != nil {
		sets = append(sets, "availability = ?")
		args = append(args, *upd.Availability)
	}
	if upd.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, float64(*upd.Rating))
	}
	if upd.ReviewCount != nil {
		sets = append(sets, "review_count = ?")
		args = append(args, int(*upd.ReviewCount))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt, id)

	query := "UPDATE services SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	if s.conn == nil {
		return errNoConn
	}

	_, err := s.conn.ExecContext(ctx, deleteServiceQuery, id)
	return err
}
