package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/store"
)

// userSortColumns whitelists the columns a user listing may be sorted by.
// Requests naming anything else fall back to created_at, which also keeps
// user input out of the ORDER BY clause.
var userSortColumns = map[string]string{
	"login":      "login",
	"email":      "email",
	"firstname":  "firstname",
	"lastname":   "lastname",
	"created_at": "created_at",
}

// UserStore implements store.UserStore backed by PostgreSQL.
type UserStore struct {
	db store.DBTX
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore on the given database handle.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// WithTx returns a UserStore bound to the given transaction.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{db: tx}
}

const userColumns = `id, login, email, hashed_password, role, firstname, lastname,
	middle_name, gender, phone_number, birth_date, created_at, updated_at`

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: user has no hashed password", store.ErrInvalidEntity)
	}

	query := `
		INSERT INTO users (id, login, email, hashed_password, role, firstname,
			lastname, middle_name, gender, phone_number, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Login, user.Email, user.HashedPassword, string(user.Role),
		user.Firstname, user.Lastname, nullString(user.MiddleName),
		nullString(string(user.Gender)), nullString(user.PhoneNumber),
		nullTime(user.BirthDate), user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByLoginOrEmail implements store.UserStore.GetByLoginOrEmail.
func (s *UserStore) GetByLoginOrEmail(ctx context.Context, userData string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1 OR email = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, userData))
}

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context, page store.PageRequest) ([]*domain.User, error) {
	page = page.Normalize()
	column, ok := userSortColumns[page.SortBy]
	if !ok {
		column = "created_at"
	}

	query := fmt.Sprintf(
		`SELECT `+userColumns+` FROM users ORDER BY %s %s LIMIT $1 OFFSET $2`,
		column, sortDirection(page.SortOrder))

	rows, err := s.db.QueryContext(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// Update implements store.UserStore.Update.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE users
		SET login = $2, email = $3, hashed_password = $4, role = $5,
			firstname = $6, lastname = $7, middle_name = $8, gender = $9,
			phone_number = $10, birth_date = $11, updated_at = now()
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		user.ID, user.Login, user.Email, user.HashedPassword, string(user.Role),
		user.Firstname, user.Lastname, nullString(user.MiddleName),
		nullString(string(user.Gender)), nullString(user.PhoneNumber),
		nullTime(user.BirthDate))
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// Delete implements store.UserStore.Delete.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *UserStore) scanUser(row *sql.Row) (*domain.User, error) {
	user, err := scanUserRow(row)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUserRow(row rowScanner) (*domain.User, error) {
	var (
		user        domain.User
		role        string
		middleName  sql.NullString
		gender      sql.NullString
		phoneNumber sql.NullString
		birthDate   sql.NullTime
	)

	err := row.Scan(&user.ID, &user.Login, &user.Email, &user.HashedPassword,
		&role, &user.Firstname, &user.Lastname, &middleName, &gender,
		&phoneNumber, &birthDate, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	user.Role = domain.Role(role)
	user.MiddleName = middleName.String
	user.Gender = domain.Gender(gender.String)
	user.PhoneNumber = phoneNumber.String
	if birthDate.Valid {
		t := birthDate.Time
		user.BirthDate = &t
	}

	return &user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func sortDirection(order store.SortOrder) string {
	if order == store.SortDesc {
		return "DESC"
	}
	return "ASC"
}
