package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/worksy/worksy-api/model"
)

// ErrDuplicateEmail is returned when an insert violates the unique email
// index. Uniqueness lives in the datastore, not in a check-then-act query.
var ErrDuplicateEmail = errors.New("email already exists")

var errNoConn = errors.New("database connection is not configured")

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	List(ctx context.Context) ([]model.UserEntity, error)
	Get(ctx context.Context, id string) (*model.UserEntity, error)
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Update(ctx context.Context, id string, upd *model.UserUpdate, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (id, email, name, user_type, phone, address, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	getUserQuery    = `SELECT id, email, name, user_type, phone, address, created_at, updated_at FROM users WHERE id = ?`
	listUsersQuery  = `SELECT id, email, name, user_type, phone, address, created_at, updated_at FROM users`
	deleteUserQuery = `DELETE FROM users WHERE id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	rows, err := s.conn.QueryxContext(ctx, listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var entity model.UserEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		users = append(users, entity)
	}
	return users, rows.Err()
}

func (s *SQL) Get(ctx context.Context, id string) (*model.UserEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, getUserQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	data.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	data.CreatedAt = now
	data.UpdatedAt = now

	_, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.ID, data.Email, data.Name, data.UserType, data.Phone, data.Address, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, id string, upd *model.UserUpdate, updatedAt time.Time) error {
	if s.conn == nil {
		return errNoConn
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.UserType != nil {
		sets = append(sets, "user_type = ?")
		args = append(args, *upd.UserType)
	}
	if upd.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *upd.Phone)
	}
	if upd.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *upd.Address)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt, id)

	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	if s.conn == nil {
		return errNoConn
	}

	// Deleting an absent id is not an error at this layer.
	_, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	return err
}
