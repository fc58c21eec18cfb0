package db

import (
	_ "embed"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

// key in `settings` holding the student the app is currently signed in
// as; writes for any other student are discarded by the coordinator.
const ActiveStudentKey = "active_student"
