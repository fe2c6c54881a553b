package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of pgx used by Queries. *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries runs the user statements against a DBTX.
type Queries struct {
	db DBTX
}

// New returns Queries bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// UserRow is a row of the users table.
type UserRow struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
	CreatedAt    time.Time
}

const createUser = `INSERT INTO users (name, email, password_hash, avatar)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, password_hash, avatar, created_at`

// CreateUserParams are the inputs of CreateUser.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (UserRow, error) {
	row := q.db.QueryRow(ctx, createUser, arg.Name, arg.Email, arg.PasswordHash, arg.Avatar)
	return scanUser(row)
}

const getUserByEmail = `SELECT id, name, email, password_hash, avatar, created_at
FROM users
WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (UserRow, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByEmail, email))
}

const getUserByID = `SELECT id, name, email, password_hash, avatar, created_at
FROM users
WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (UserRow, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByID, id))
}

func scanUser(row pgx.Row) (UserRow, error) {
	var u UserRow
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Avatar,
		&u.CreatedAt,
	)
	return u, err
}
