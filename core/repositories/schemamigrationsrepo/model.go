package schemamigrationsrepo

import "time"

// SchemaMigration is one applied migration file as recorded by the
// migration runner.
type SchemaMigration struct {
	Version   string    `db:"version" json:"version"`
	Checksum  string    `db:"checksum" json:"checksum"`
	AppliedAt time.Time `db:"applied_at" json:"applied_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
