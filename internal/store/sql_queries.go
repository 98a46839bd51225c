package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared statement builder configured for PostgreSQL's $N
// placeholders. All repository queries are built through it so column lists
// stay in one place.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	usersTable    = "users"
	contactsTable = "contacts"
)

var (
	userColumns    = []string{"username", "password", "name", "token"}
	contactColumns = []string{"id", "username", "first_name", "last_name", "email", "phone"}
)

func insertUserQuery(username, password, name string) sq.InsertBuilder {
	return psql.Insert(usersTable).
		Columns("username", "password", "name").
		Values(username, password, name).
		Suffix("RETURNING username, password, name, token")
}

func countUsersByUsernameQuery(username string) sq.SelectBuilder {
	return psql.Select("COUNT(*)").
		From(usersTable).
		Where(sq.Eq{"username": username})
}

func selectUserQuery(where sq.Eq) sq.SelectBuilder {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(where)
}

func whereUsername(username string) sq.Eq {
	return sq.Eq{"username": username}
}

func whereToken(token string) sq.Eq {
	return sq.Eq{"token": token}
}

// updateUserQuery builds a partial UPDATE: only non-nil fields produce SET
// clauses. Callers must ensure at least one field is set.
func updateUserQuery(username string, name, password *string) sq.UpdateBuilder {
	builder := psql.Update(usersTable)

	if name != nil {
		builder = builder.Set("name", *name)
	}
	if password != nil {
		builder = builder.Set("password", *password)
	}

	return builder.
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING username, password, name, token")
}

func updateTokenQuery(username string, token any) sq.UpdateBuilder {
	return psql.Update(usersTable).
		Set("token", token).
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING username, password, name, token")
}

func insertContactQuery(username, firstName string, lastName, email, phone *string) sq.InsertBuilder {
	return psql.Insert(contactsTable).
		Columns("username", "first_name", "last_name", "email", "phone").
		Values(username, firstName, lastName, email, phone).
		Suffix("RETURNING id, username, first_name, last_name, email, phone")
}

func selectContactQuery(username string, contactID int64) sq.SelectBuilder {
	return psql.Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"id": contactID, "username": username})
}

func updateContactQuery(username string, contactID int64, firstName string, lastName, email, phone *string) sq.UpdateBuilder {
	return psql.Update(contactsTable).
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("email", email).
		Set("phone", phone).
		Where(sq.Eq{"id": contactID, "username": username}).
		Suffix("RETURNING id, username, first_name, last_name, email, phone")
}
