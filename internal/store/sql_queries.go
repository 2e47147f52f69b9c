package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

const (
	createUser = `INSERT INTO users (id, username, password)
    VALUES ($1, $2, $3)
    RETURNING id, username, password, created_at;`

	findUserByUsername = `SELECT id, username, password, created_at
    FROM users
    WHERE username = $1;`
)

// psql is the statement builder configured for PostgreSQL-style
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertTodoQuery builds the INSERT for a new todo record.
// The inserted row is returned so callers can echo it back to the client.
func buildInsertTodoQuery(todo models.Todo) (string, []any, error) {
	query, args, err := psql.
		Insert(todo.TableName()).
		Columns("id", "user_id", "title", "progress", "date").
		Values(todo.ID, todo.UserID, todo.Title, todo.Progress, todo.Date).
		Suffix("RETURNING id, user_id, title, progress, date").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectTodoByIDQuery builds the lookup of a single todo by primary key.
func buildSelectTodoByIDQuery(id string) (string, []any, error) {
	query, args, err := psql.
		Select("id", "user_id", "title", "progress", "date").
		From("todos").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectUserTodosQuery builds the listing of all todos owned by a user,
// newest first.
func buildSelectUserTodosQuery(userID string) (string, []any, error) {
	query, args, err := psql.
		Select("id", "user_id", "title", "progress", "date").
		From("todos").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateTodoQuery builds the UPDATE for a todo's mutable fields.
// The updated row is returned so callers can echo it back to the client.
func buildUpdateTodoQuery(todo models.Todo) (string, []any, error) {
	query, args, err := psql.
		Update(todo.TableName()).
		Set("title", todo.Title).
		Set("progress", todo.Progress).
		Set("date", todo.Date).
		Where(sq.Eq{"id": todo.ID}).
		Suffix("RETURNING id, user_id, title, progress, date").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteTodoQuery builds the DELETE of a single todo by primary key.
func buildDeleteTodoQuery(id string) (string, []any, error) {
	query, args, err := psql.
		Delete("todos").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
