package migrations

import "embed"

// FS holds the SQL migrations of the campaign store, read by golang-migrate
// through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects.
const Version = 1
