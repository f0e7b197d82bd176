// Package pdf genera la versión imprimible de los documentos de la secretaría con Maroto v2.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización + dirección  │  Título + fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: texto de la carta / secciones / tabla del reporte  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: contacto de la secretaría                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/pkg/textutil"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorZebra   = &props.Color{Red: 238, Green: 243, Blue: 248}
	colorLight   = &props.Color{Red: 230, Green: 230, Blue: 230}
)

const (
	lineHeight  = 5.0
	letterWidth = 95 // caracteres por línea del cuerpo de la carta

	// Tamaño ID-1 (ISO/IEC 7810) de la carteirinha, en mm.
	cardWidth  = 85.6
	cardHeight = 53.98
	cardMargin = 3.0
	cardLine   = 4.0
)

// Header datos de la organización impresos en cada documento.
type Header struct {
	Organization string
	Address      string
	Phone        string
	Email        string
}

// MarotoRenderer implementa ports.DocumentRenderer.
type MarotoRenderer struct {
	header Header
}

var _ ports.DocumentRenderer = (*MarotoRenderer)(nil)

// NewMarotoRenderer construye el generador.
func NewMarotoRenderer(h Header) *MarotoRenderer { return &MarotoRenderer{header: h} }

// RenderPreachingLetter imprime el texto ya procesado de la carta, línea por línea.
func (g *MarotoRenderer) RenderPreachingLetter(_ context.Context, l *dto.PreachingLetterDTO) ([]byte, error) {
	m := g.newDocument("Carta de Recomendação")
	m.AddRows(g.headerRow("CARTA DE PREGAÇÃO", l.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(4))

	for _, para := range strings.Split(l.Text, "\n") {
		if strings.TrimSpace(para) == "" {
			m.AddRows(row.New(lineHeight / 2))
			continue
		}
		for _, ln := range wrapWords(para, letterWidth) {
			m.AddRows(row.New(lineHeight).Add(col.New(12).Add(
				text.New(ln, props.Text{Size: 10, Top: 0.5}),
			)))
		}
	}
	if l.Signature != "" {
		m.AddRows(row.New(lineHeight).Add(col.New(12).Add(
			text.New(l.Signature, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 0.5}),
		)))
	}
	m.AddRows(g.footerRows()...)
	return generate(m)
}

// RenderReassignment imprime el remanejamento en secciones de dos columnas.
func (g *MarotoRenderer) RenderReassignment(_ context.Context, d *dto.ReassignmentDTO) ([]byte, error) {
	m := g.newDocument("Remanejamento de Dirigente")
	m.AddRows(g.headerRow("REMANEJAMENTO DE DIRIGENTE", d.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	c := d.Church
	addr := c.Address
	m.AddRows(section("DADOS DA IPDA",
		kv("Nome", c.Name),
		kv("Endereço", joinNonEmpty(", ", addr.Street, addr.Number)),
		kv("Bairro", addr.District),
		kv("Cidade", joinNonEmpty(", ", addr.City, addr.State)),
		kv("CEP", addr.CEP),
		kv("Porte", c.Classification),
	)...)

	prop := []string{kv("Tipo", nonEmpty(d.Property.Type, "Não informado"))}
	switch d.Property.Type {
	case "Alugada":
		if d.Property.ContractExpiry != nil {
			prop = append(prop, kv("Contrato vence em", d.Property.ContractExpiry.Format("02/01/2006")))
		}
		if d.Property.Rent != nil {
			prop = append(prop, kv("Valor do Aluguel", textutil.FormatBRL(*d.Property.Rent)))
		}
	case "Própria":
		prop = append(prop, kv("Tem escritura", yesNo(d.Property.HasDeed)))
	}
	m.AddRows(section("IMÓVEL", prop...)...)

	m.AddRows(section("MOVIMENTO FINANCEIRO",
		kv("Entradas", textutil.FormatBRL(d.Financial.Income)),
		kv("Saídas", textutil.FormatBRL(d.Financial.Expenses)),
		kv("Saldo", textutil.FormatBRL(d.Financial.Balance)),
	)...)

	if cur := d.CurrentLeader; cur != nil {
		m.AddRows(section("DIRIGENTE ATUAL", leaderLines(*cur)...)...)
	}
	nl := leaderLines(d.NewLeader)
	nl = append(nl,
		kv("Distância da IPDA", d.DistanceKm.String()+" km"),
		kv("Recebe prebenda", yesNo(d.ReceivesStipend)),
	)
	if d.ReceivesStipend && d.StipendSince != "" {
		nl = append(nl, kv("Desde", d.StipendSince))
	}
	nl = append(nl, kv("Assume em", d.AssumptionDate))
	m.AddRows(section("NOVO DIRIGENTE", nl...)...)
	m.AddRows(section("MOTIVO", d.Reason)...)

	m.AddRows(row.New(8))
	m.AddRows(row.New(lineHeight).Add(col.New(12).Add(
		text.New(d.IssuedAt, props.Text{Size: 9, Align: align.Right, Color: colorGray}),
	)))
	m.AddRows(g.footerRows()...)
	return generate(m)
}

// RenderMemberCard imprime la carteirinha: frente en la primera página y verso en la segunda,
// ambas del tamaño de la tarjeta.
func (g *MarotoRenderer) RenderMemberCard(_ context.Context, c *dto.MemberCardDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(cardWidth, cardHeight).
		WithLeftMargin(cardMargin).WithRightMargin(cardMargin).
		WithTopMargin(cardMargin).WithBottomMargin(cardMargin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 6}).
		WithTitle("Carteirinha de Membro", true).
		WithAuthor(g.header.Organization, true).
		Build()
	m := maroto.New(cfg)

	org := strings.ToUpper(nonEmpty(c.Organization, g.header.Organization))
	white := props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorWhite}

	front := page.New().Add(
		row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(col.New(12).Add(
			text.New("IGREJA PENTECOSTAL", withTop(white, 0.8)),
			text.New("DEUS É AMOR", withTop(white, 4)),
		)),
		row.New(2),
		row.New(30).Add(
			col.New(3).WithStyle(&props.Cell{BorderType: border.Full, BorderColor: colorGray, BorderThickness: 0.2}).Add(
				text.New("FOTO", props.Text{Size: 6, Align: align.Center, Color: colorGray, Top: 13}),
			),
			col.New(9).Add(
				text.New(cardKV("NOME", c.Name), props.Text{Style: fontstyle.Bold, Size: 6, Left: 2, Top: 0}),
				text.New(cardKV("MATRÍCULA", c.Registration), props.Text{Size: 6, Left: 2, Top: 7}),
				text.New(cardKV("GRUPO", c.Group), props.Text{Size: 6, Left: 2, Top: 14}),
				text.New(cardKV("D. NASC.", c.BirthDate), props.Text{Size: 6, Left: 2, Top: 21}),
			),
		),
		row.New(6).WithStyle(&props.Cell{BackgroundColor: colorLight}).Add(col.New(12).Add(
			text.New(nonEmpty(strings.ToUpper(c.Church), org), props.Text{Style: fontstyle.Bold, Size: 6, Align: align.Center, Top: 1.5}),
		)),
	)

	back := page.New().Add(
		row.New(6).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(col.New(12).Add(
			text.New(org, withTop(white, 1.2)),
		)),
		cardRow(cardKV("ENDEREÇO", c.Street)),
		cardRow(cardKV("NÚMERO", c.HouseNumber), cardKV("BAIRRO", c.District)),
		cardRow(cardKV("CIDADE", c.City), cardKV("ESTADO", c.State)),
		cardRow(cardKV("ESTADO CIVIL", c.MaritalStatus)),
		cardRow(cardKV("DATA BATISMO", c.BaptismDate)),
		cardRow(cardKV("CPF", c.CPF), cardKV("RG", c.RG)),
		cardRow(cardKV("TELEFONE", c.Phone)),
		row.New(3),
		row.New(1).Add(col.New(2), col.New(8).Add(line.New(props.Line{Thickness: 0.2})), col.New(2)),
		row.New(cardLine).Add(col.New(12).Add(
			text.New("ASSINATURA DO PASTOR", props.Text{Style: fontstyle.Bold, Size: 6, Align: align.Center, Top: 0.5}),
		)),
	)

	m.AddPages(front, back)
	return generate(m)
}

// RenderMemberRecord imprime la ficha de cadastro en A4 con espacio para las firmas.
func (g *MarotoRenderer) RenderMemberRecord(_ context.Context, r *dto.MemberRecordDTO) ([]byte, error) {
	m := g.newDocument("Ficha de Cadastro de Membros")
	m.AddRows(g.headerRow("FICHA DE CADASTRO DE MEMBROS", r.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if r.Church != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New(r.Church, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 1}),
		)))
	}

	age := ""
	if r.BirthDate != "" {
		age = fmt.Sprintf("%d anos", r.Age)
	}
	m.AddRows(pairSection("DADOS PESSOAIS",
		[2]string{kv("Nome Completo", r.Name), ""},
		[2]string{kv("Endereço", r.Street), kv("Número", r.HouseNumber)},
		[2]string{kv("Bairro", r.District), kv("CEP", r.CEP)},
		[2]string{kv("Cidade", r.City), kv("Estado", r.State)},
		[2]string{kv("RG", r.RG), kv("CPF", r.CPF)},
		[2]string{kv("Data de Nascimento", r.BirthDate), kv("Idade", age)},
		[2]string{kv("Cidade de Nascimento", r.BirthCity), kv("Estado de Nascimento", r.BirthState)},
		[2]string{kv("Estado Civil", r.MaritalStatus), kv("Profissão", r.Profession)},
		[2]string{kv("Email", r.Email), kv("Telefone", r.Phone)},
	)...)
	m.AddRows(pairSection("DADOS MINISTERIAIS",
		[2]string{kv("Data de Batismo", r.BaptismDate), kv("Função Ministerial", r.MinisterialRole)},
	)...)

	for _, who := range []string{"ASSINATURA DO MEMBRO", "ASSINATURA DO PASTOR"} {
		m.AddRows(
			row.New(14),
			row.New(1).Add(col.New(3), col.New(6).Add(line.New(props.Line{Thickness: 0.3})), col.New(3)),
			row.New(lineHeight).Add(col.New(12).Add(
				text.New(who, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1}),
			)),
		)
	}

	m.AddRows(row.New(8))
	m.AddRows(row.New(lineHeight).Add(col.New(12).Add(
		text.New(joinNonEmpty(", ", r.IssuedPlace, r.IssuedAt), props.Text{Size: 9, Align: align.Right}),
	)))
	m.AddRows(g.footerRows()...)
	return generate(m)
}

// RenderReport imprime la tabla del reporte con cabecera coloreada y filas alternadas.
func (g *MarotoRenderer) RenderReport(_ context.Context, r *dto.ReportDTO) ([]byte, error) {
	m := g.newDocument(r.Title)
	m.AddRows(g.headerRow(strings.ToUpper(r.Title), r.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(3))

	widths := columnWidths(len(r.Columns))
	if len(widths) > 0 {
		head := make([]core.Col, 0, len(r.Columns))
		for i, c := range r.Columns {
			head = append(head, col.New(widths[i]).Add(text.New(c.Label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1, Right: 1,
			})))
		}
		m.AddRows(row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(head...))

		for n, values := range r.Rows {
			cells := make([]core.Col, 0, len(widths))
			for i := range widths {
				v := ""
				if i < len(values) {
					v = values[i]
				}
				cells = append(cells, col.New(widths[i]).Add(text.New(v, props.Text{Size: 8, Top: 1.5, Left: 1, Right: 1})))
			}
			rw := row.New(7).Add(cells...)
			if n%2 == 1 {
				rw = rw.WithStyle(&props.Cell{BackgroundColor: colorZebra})
			}
			m.AddRows(rw)
		}
	}
	if len(r.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhum registro encontrado.", props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 3}),
		)))
	}

	if len(r.Totals) > 0 {
		m.AddRows(line.NewRow(3, props.Line{Color: colorPrimary, Thickness: 0.3}))
		for _, k := range sortedKeys(r.Totals) {
			m.AddRows(row.New(lineHeight).Add(
				col.New(8).Add(text.New("Total "+k+":", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})),
				col.New(4).Add(text.New(r.Totals[k], props.Text{Size: 9, Align: align.Right, Right: 1})),
			))
		}
	}
	m.AddRows(g.footerRows()...)
	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoRenderer) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.header.Organization, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: organización + dirección (izq) y título + fecha (der).
func (g *MarotoRenderer) headerRow(title string, at time.Time) core.Row {
	if at.IsZero() {
		at = time.Now()
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(strings.ToUpper(g.header.Organization), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(g.header.Address, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em "+textutil.LongDatePT(at), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoRenderer) footerRows() []core.Row {
	contact := joinNonEmpty("   |   ", g.header.Phone, g.header.Email)
	if contact == "" {
		return nil
	}
	return []core.Row{
		row.New(6),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(lineHeight).Add(col.New(12).Add(
			text.New(contact, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
		)),
	}
}

// section: título en color y una línea por entrada.
func section(title string, lines ...string) []core.Row {
	rows := []core.Row{
		row.New(3),
		row.New(6).Add(col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, l := range lines {
		for _, w := range wrapWords(l, letterWidth) {
			rows = append(rows, row.New(lineHeight).Add(col.New(12).Add(
				text.New(w, props.Text{Size: 9, Left: 2, Top: 0.5}),
			)))
		}
	}
	return rows
}

// pairSection: como section pero en dos columnas; un segundo valor vacío ocupa la fila entera.
func pairSection(title string, pairs ...[2]string) []core.Row {
	rows := section(title)
	style := props.Text{Size: 9, Left: 2, Top: 0.5}
	for _, p := range pairs {
		if p[1] == "" {
			rows = append(rows, row.New(lineHeight+1).Add(col.New(12).Add(text.New(p[0], style))))
			continue
		}
		rows = append(rows, row.New(lineHeight+1).Add(
			col.New(6).Add(text.New(p[0], style)),
			col.New(6).Add(text.New(p[1], style)),
		))
	}
	return rows
}

// cardRow fila del verso de la carteirinha con uno o dos campos.
func cardRow(fields ...string) core.Row {
	style := props.Text{Size: 6, Top: 0.5}
	if len(fields) == 1 {
		return row.New(cardLine).Add(col.New(12).Add(text.New(fields[0], style)))
	}
	return row.New(cardLine).Add(
		col.New(6).Add(text.New(fields[0], style)),
		col.New(6).Add(text.New(fields[1], style)),
	)
}

func cardKV(k, v string) string { return k + ": " + v }

func withTop(t props.Text, top float64) props.Text {
	t.Top = top
	return t
}

func leaderLines(l dto.LeaderDTO) []string {
	out := []string{kv("Função", l.MinisterialRole), kv("Nome", l.Name)}
	for _, p := range [][2]string{
		{"Data de Batismo", l.BaptismDate}, {"RG", l.RG}, {"CPF", l.CPF},
		{"Telefone", l.Phone}, {"Email", l.Email},
	} {
		if p[1] != "" {
			out = append(out, kv(p[0], p[1]))
		}
	}
	return out
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func kv(k, v string) string { return k + ": " + nonEmpty(v, "-") }

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// columnWidths reparte las 12 columnas de la grilla; el resto va a la primera.
func columnWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > 12 {
		n = 12
	}
	w := make([]int, n)
	for i := range w {
		w[i] = 12 / n
	}
	w[0] += 12 % n
	return w
}

// wrapWords corta s en líneas de hasta n runas sin partir palabras (salvo palabras más largas que n).
func wrapWords(s string, n int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var (
		lines []string
		cur   []rune
	)
	for _, w := range words {
		rw := []rune(w)
		for len(rw) > n {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(rw[:n]))
			rw = rw[n:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, rw...)
		case len(cur)+1+len(rw) <= n:
			cur = append(cur, ' ')
			cur = append(cur, rw...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), rw...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
