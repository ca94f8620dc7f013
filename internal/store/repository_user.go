// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// userRepository is the database/sql implementation of [UserRepository]
// working against the "users" table. Deleting a user also touches
// "user_todos".
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, "*userRepository.CreateUser", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Error().Str("func", "*userRepository.CreateUser").Msg("insert affected no rows")
		return ErrNothingAffected
	}

	return nil
}

func (r *userRepository) UpdateUserName(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserNameQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserName").Int64("user_id", user.ID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, "*userRepository.UpdateUserName", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug().Str("func", "*userRepository.UpdateUserName").Int64("user_id", user.ID).Msg("user not found")
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByID").
			Int64("user_id", userID).
			Str("classification", r.db.classify(err)).
			Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUserByIDQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UserExists").Int64("user_id", userID).Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	total, err := r.db.count(ctx, "*userRepository.UserExists", query, args...)
	if err != nil {
		return false, err
	}

	return total > 0, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.GetAllUsers").
			Str("classification", r.db.classify(err)).
			Msg("failed to execute query for getting all users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 50)

	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.ID, &user.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.GetAllUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.GetAllUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.count(ctx, "*userRepository.CountUsers", query, args...)
}

func (r *userRepository) DeleteUserCascade(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	deleteUserQuery, deleteUserArgs, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserCascade").Int64("user_id", userID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteTodosQuery, deleteTodosArgs, err := buildDeleteUserTodosQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserCascade").Int64("user_id", userID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserCascade").Int64("user_id", userID).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, deleteUserQuery, deleteUserArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUserCascade").
			Int64("user_id", userID).
			Str("classification", r.db.classify(err)).
			Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().Str("func", "*userRepository.DeleteUserCascade").Int64("user_id", userID).Msg("user not found")
		return ErrUserNotFound
	}

	todosResult, err := tx.ExecContext(ctx, deleteTodosQuery, deleteTodosArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUserCascade").
			Int64("user_id", userID).
			Str("classification", r.db.classify(err)).
			Msg("failed to delete user todos, rolling back")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*userRepository.DeleteUserCascade").Int64("user_id", userID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	deletedTodos, _ := todosResult.RowsAffected()
	log.Info().
		Str("func", "*userRepository.DeleteUserCascade").
		Int64("user_id", userID).
		Int64("deleted_todos", deletedTodos).
		Msg("user deleted")

	return nil
}
