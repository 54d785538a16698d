// seed_catalogo genera un script SQL para poblar el catálogo de comerciables
// a partir de un CSV exportado del sistema anterior de la clínica (separado
// por punto y coma, codificado en ISO-8859-1).
//
// Formato esperado por fila: tipo;nombre;precio_cup;costo
//
// Uso: go run ./cmd/seed_catalogo <clinica_id> [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalogo.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: seed_catalogo <clinica_id> [catalogo.csv]")
		os.Exit(1)
	}
	clinicaID := os.Args[1]
	csvPath := "catalogo.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El export del sistema anterior viene en Latin-1.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	type fila struct {
		tipo, nombre   string
		precio, costo  decimal.Decimal
	}
	var filas []fila
	descartadas := 0
	for _, rec := range records {
		if len(rec) < 4 {
			descartadas++
			continue
		}
		tipo := strings.ToLower(strings.TrimSpace(rec[0]))
		nombre := strings.TrimSpace(rec[1])
		if nombre == "" || !entity.TipoValido(tipo) {
			descartadas++
			continue
		}
		precio, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
		if err != nil {
			descartadas++
			continue
		}
		costo, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil {
			costo = decimal.Zero
		}
		filas = append(filas, fila{tipo: tipo, nombre: nombre, precio: precio, costo: costo})
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalogo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Catálogo inicial de comerciables (clinica %s)\n", clinicaID)
	fmt.Fprintf(out, "-- Generado desde %s\n\n", filepath.Base(csvPath))
	for _, fl := range filas {
		fmt.Fprintf(out,
			"INSERT INTO comerciables (id, clinica_id, tipo, nombre, descripcion, precio_cup, costo, activo, created_at, updated_at)\n"+
				"VALUES ('%s', '%s', '%s', '%s', '', %s, %s, true, now(), now())\nON CONFLICT (id) DO NOTHING;\n",
			uuid.New().String(), escapeSQL(clinicaID), fl.tipo, escapeSQL(fl.nombre),
			fl.precio.String(), fl.costo.String(),
		)
	}

	fmt.Printf("Generado %s: %d comerciables (%d filas descartadas)\n", outPath, len(filas), descartadas)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
