package migration

import "embed"

//go:embed scripts/mysql/*.sql scripts/sqlite/*.sql
var scriptsFS embed.FS

//go:embed seeds.yaml
var seedsYAML []byte

// SourceScriptsDir is where `migrate create` writes new scripts, relative to
// the repository root.
const SourceScriptsDir = "internal/infrastructure/migration/scripts"
