package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/khoahotran/user-registry/internal/domain/user"
	"github.com/khoahotran/user-registry/pkg/apperror"
	"github.com/khoahotran/user-registry/pkg/logger"
)

const usersTable = "users"

var psqlUser = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresUserRepo struct {
	db     DBTX
	logger logger.Logger
}

func NewPostgresUserRepo(db DBTX, logger logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: logger}
}

func (r *postgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query, args, err := psqlUser.
		Select("id", "name", "email", "phone", "address").
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build user query", err)
	}

	u := &user.User{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query user by email", err)
	}

	return u, nil
}

func (r *postgresUserRepo) Save(ctx context.Context, nu *user.NewUser) (*user.User, error) {
	query, args, err := psqlUser.
		Insert(usersTable).
		Columns("name", "email", "phone", "address").
		Values(nu.Name, nu.Email, nu.Phone, nu.Address).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build user insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, apperror.NewConflict("user", "email", nu.Email, err)
		}
		return nil, apperror.NewInternal("failed to insert user", err)
	}

	r.logger.Debug("User inserted", zap.Int64("user_id", id))
	return nu.ToUser(id), nil
}
