// seed_planilha genera un script SQL para cargar membros a partir de la planilla de la
// secretaría exportada como CSV (separador ';', como la exporta el Excel en pt-BR).
//
// Uso: go run ./cmd/seed_planilha membros.csv [saida.sql]
// El CSV puede venir en UTF-8 o en ISO-8859-1. Por defecto escribe seed_membros.sql.
// Los IDs se derivan del nombre y la fecha de nacimiento: volver a correr el script actualiza
// las mismas filas.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/pkg/textutil"
)

// memberNamespace espacio de nombres de los UUID v5 de membros importados.
var memberNamespace = uuid.MustParse("6f1c2a8e-3b4d-5e6f-8a9b-0c1d2e3f4a5b")

// columnas reconocidas (ya plegadas con textutil.Fold) → campo.
var headerAliases = map[string]string{
	"nome":               "nome",
	"nome completo":      "nome",
	"email":              "email",
	"e-mail":             "email",
	"telefone":           "telefone",
	"celular":            "telefone",
	"endereco":           "endereco",
	"rua":                "endereco",
	"bairro":             "bairro",
	"numero":             "numero",
	"n":                  "numero",
	"cidade":             "cidade",
	"estado":             "estado",
	"uf":                 "estado",
	"cep":                "cep",
	"cpf":                "cpf",
	"rg":                 "rg",
	"data de nascimento": "nascimento",
	"nascimento":         "nascimento",
	"estado civil":       "estado_civil",
	"profissao":          "profissao",
	"data de batismo":    "batismo",
	"batismo":            "batismo",
	"funcao":             "funcao",
	"funcao ministerial": "funcao",
	"cargo":              "funcao",
	"observacoes":        "observacoes",
	"obs":                "observacoes",
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_planilha membros.csv [saida.sql]")
		os.Exit(2)
	}
	outPath := "seed_membros.sql"
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	members, skipped, err := parseMembers(decode(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Procesar CSV: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, members, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d membros (%d filas sin nome omitidas)\n", outPath, len(members), skipped)
}

// decode devuelve el contenido como UTF-8. Si no es UTF-8 válido se asume ISO-8859-1.
func decode(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

// parseMembers lee la planilla. La primera fila es el encabezado; las columnas desconocidas
// se ignoran. Devuelve además la cantidad de filas omitidas por no tener nome.
func parseMembers(r io.Reader) ([]*entity.Member, int, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("encabezado: %w", err)
	}
	cols := make(map[string]int)
	for i, h := range header {
		if field, ok := headerAliases[textutil.Fold(strings.TrimSpace(h))]; ok {
			if _, dup := cols[field]; !dup {
				cols[field] = i
			}
		}
	}
	if _, ok := cols["nome"]; !ok {
		return nil, 0, fmt.Errorf("la planilla no tiene columna Nome")
	}

	var (
		members []*entity.Member
		skipped int
	)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(field string) string {
			i, ok := cols[field]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		name := strings.Join(strings.Fields(get("nome")), " ")
		if name == "" {
			skipped++
			continue
		}
		m := &entity.Member{
			FullName:        name,
			Email:           strings.ToLower(get("email")),
			Phone:           get("telefone"),
			Street:          get("endereco"),
			District:        get("bairro"),
			HouseNumber:     get("numero"),
			City:            get("cidade"),
			State:           strings.ToUpper(get("estado")),
			CEP:             textutil.OnlyDigits(get("cep")),
			CPF:             textutil.OnlyDigits(get("cpf")),
			RG:              get("rg"),
			BirthDate:       parseDate(get("nascimento")),
			MaritalStatus:   matchOption(entity.MaritalStatuses, get("estado_civil"), ""),
			Profession:      get("profissao"),
			BaptismDate:     parseDate(get("batismo")),
			MinisterialRole: matchOption(entity.MinisterialRoles, get("funcao"), "Membro"),
			Notes:           get("observacoes"),
			Active:          true,
		}
		m.ID = memberID(m)
		members = append(members, m)
	}
	return members, skipped, nil
}

func memberID(m *entity.Member) string {
	key := textutil.Fold(m.FullName)
	if m.BirthDate != nil {
		key += "|" + m.BirthDate.Format("2006-01-02")
	}
	return uuid.NewSHA1(memberNamespace, []byte(key)).String()
}

// parseDate acepta dd/mm/aaaa (formato de la planilla) y aaaa-mm-dd. Vacío o inválido → nil.
func parseDate(s string) *time.Time {
	for _, layout := range []string{"02/01/2006", "2/1/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// matchOption busca el valor en las opciones ignorando acentos y mayúsculas.
func matchOption(options []string, value, def string) string {
	v := textutil.Fold(strings.TrimSpace(value))
	for _, o := range options {
		if textutil.Fold(o) == v {
			return o
		}
	}
	return def
}

func writeSQL(w io.Writer, members []*entity.Member, now time.Time) error {
	var b strings.Builder
	b.WriteString("-- Membros importados de la planilla de la secretaría\n")
	fmt.Fprintf(&b, "-- Generado %s\n\n", now.Format(time.RFC3339))
	for _, m := range members {
		b.WriteString("INSERT INTO membros (id, nome_completo, email, telefone, endereco, bairro, numero_casa, cidade, estado, cep, cpf, rg, data_nascimento, estado_civil, profissao, data_batismo, funcao_ministerial, observacoes, ativo)\n")
		fmt.Fprintf(&b, "VALUES ('%s', %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, TRUE)\n",
			m.ID, quote(m.FullName), quote(m.Email), quote(m.Phone), quote(m.Street), quote(m.District),
			quote(m.HouseNumber), quote(m.City), quote(m.State), quote(m.CEP), quote(m.CPF), quote(m.RG),
			date(m.BirthDate), quote(m.MaritalStatus), quote(m.Profession), date(m.BaptismDate),
			quote(m.MinisterialRole), quote(m.Notes))
		b.WriteString("ON CONFLICT (id) DO UPDATE SET nome_completo = EXCLUDED.nome_completo, email = EXCLUDED.email, telefone = EXCLUDED.telefone, funcao_ministerial = EXCLUDED.funcao_ministerial, data_atualizacao = now();\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func date(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return "'" + t.Format("2006-01-02") + "'"
}
