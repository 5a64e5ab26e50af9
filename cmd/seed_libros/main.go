// seed_libros genera un script SQL que carga un catálogo CSV de libros para un usuario.
//
// Uso: go run ./cmd/seed_libros <libros.csv> <username> [salida.sql]
//
// Columnas del CSV (con encabezado): titulo, autor, anio_publicacion, genero, url, notas, etiquetas.
// Solo titulo y autor son obligatorias. Archivos exportados desde hojas de cálculo en
// ISO-8859-1 se convierten a UTF-8.
// Por defecto escribe seed_libros.sql en el directorio actual.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var columnas = []string{"titulo", "autor", "anio_publicacion", "genero", "url", "notas", "etiquetas"}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Uso: seed_libros <libros.csv> <username> [salida.sql]")
		os.Exit(2)
	}
	csvPath, username := os.Args[1], os.Args[2]
	outPath := "seed_libros.sql"
	if len(os.Args) > 3 {
		outPath = os.Args[3]
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	n, err := generar(decodificar(raw), username, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d libros para %s\n", outPath, n, username)
}

// decodificar devuelve un lector UTF-8: si el contenido no es UTF-8 válido se asume ISO-8859-1.
func decodificar(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

// generar escribe un INSERT por fila. El propietario se resuelve por username dentro del SQL.
func generar(in io.Reader, username string, out io.Writer) (int, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("encabezado: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range []string{"titulo", "autor"} {
		if _, ok := idx[req]; !ok {
			return 0, fmt.Errorf("falta la columna %q", req)
		}
	}

	fmt.Fprintf(out, "-- Catálogo de libros para %s\n", username)
	fmt.Fprintln(out, "-- Generado por cmd/seed_libros")
	fmt.Fprintln(out, "BEGIN;")

	n := 0
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("línea %d: %w", line, err)
		}
		campo := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if campo("titulo") == "" || campo("autor") == "" {
			fmt.Fprintf(os.Stderr, "línea %d omitida: titulo y autor son obligatorios\n", line)
			continue
		}
		anio := "NULL"
		if a := campo("anio_publicacion"); a != "" {
			v, err := strconv.Atoi(a)
			if err != nil {
				return n, fmt.Errorf("línea %d: anio_publicacion %q no es un entero", line, a)
			}
			anio = strconv.Itoa(v)
		}
		fmt.Fprintf(out,
			"INSERT INTO libros (%s, propietario_id)\nSELECT %s, %s, %s, %s, %s, %s, %s, id FROM users WHERE username = %s;\n",
			strings.Join(columnas, ", "),
			literal(campo("titulo")), literal(campo("autor")), anio,
			nullable(campo("genero")), nullable(campo("url")), nullable(campo("notas")), nullable(campo("etiquetas")),
			literal(username),
		)
		n++
	}
	fmt.Fprintln(out, "COMMIT;")
	return n, nil
}

func literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return literal(s)
}
