// migrate aplica el esquema SQL embebido en migrations/ sobre la base configurada.
//
// Uso: go run ./cmd/migrate [up|status]
// Por defecto ejecuta up.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/Rollstock-api/migrations"
	"github.com/jhoicas/Rollstock-api/pkg/config"
	"github.com/jhoicas/Rollstock-api/pkg/migrator"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	dsn := cfg.DB.ConnectionString()

	switch cmd {
	case "up":
		err = migrator.Up(dsn, migrations.FS)
	case "status":
		err = migrator.Status(dsn, migrations.FS)
	default:
		fmt.Fprintf(os.Stderr, "Comando desconocido %q (up|status)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Migraciones OK")
}
