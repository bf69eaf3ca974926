// Package csvimport lectura de archivos CSV con cabecera (UTF-8, BOM opcional).
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrEmptyFile     = errors.New("el archivo CSV está vacío")
	ErrMissingColumn = errors.New("falta una columna obligatoria")
)

// Row fila de datos. Line cuenta la cabecera como fila 1 y omite las filas vacías.
type Row struct {
	Line   int
	fields map[string]string
}

// Get valor recortado de la columna; "" si la columna no existe.
func (r Row) Get(column string) string {
	return r.fields[column]
}

// Has indica si la columna existe en el archivo.
func (r Row) Has(column string) bool {
	_, ok := r.fields[column]
	return ok
}

// Table cabecera y filas de datos de un CSV.
type Table struct {
	Header []string
	Rows   []Row
}

// Read lee el CSV completo. Filas con todos los campos vacíos se descartan.
func Read(r io.Reader) (*Table, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(r, dec))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("leer cabecera CSV: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := &Table{Header: header}
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		if blank(rec) {
			continue
		}
		line++
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(rec) {
				fields[col] = strings.TrimSpace(rec[i])
			} else {
				fields[col] = ""
			}
		}
		t.Rows = append(t.Rows, Row{Line: line, fields: fields})
	}
	return t, nil
}

// Require verifica que existan las columnas.
func (t *Table) Require(columns ...string) error {
	present := make(map[string]bool, len(t.Header))
	for _, h := range t.Header {
		present[h] = true
	}
	var missing []string
	for _, c := range columns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// FirstColumn primera columna de names presente en la cabecera.
func (t *Table) FirstColumn(names ...string) (string, bool) {
	for _, n := range names {
		for _, h := range t.Header {
			if h == n {
				return n, true
			}
		}
	}
	return "", false
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
