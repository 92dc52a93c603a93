package user

import (
	"embed"
	"io/fs"
)

var Migrations fs.ReadDirFS = migrationFiles

//go:embed *.sql
var migrationFiles embed.FS
