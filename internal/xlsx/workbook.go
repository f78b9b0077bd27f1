// Package xlsx writes the flight log as a single-sheet Office Open XML
// workbook. The archive is a stored (uncompressed) ZIP with inline strings,
// which every spreadsheet application opens without a shared string table.
package xlsx

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mmynk/flightlog/internal/models"
)

// modified is stamped on every archive member so equal entries always
// produce identical bytes. It is the earliest time a ZIP entry can record.
var modified = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// SheetName is the name of the only worksheet.
const SheetName = "Flight Log"

// Header is the first row of the sheet.
var Header = []string{
	"Date",
	"Student",
	"Instructor",
	"Aircraft",
	"Type",
	"Exercise",
	"Takeoff",
	"Landing",
	"Total",
	"LandingType",
	"LandingCount",
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`

const workbookXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets><sheet name="` + SheetName + `" sheetId="1" r:id="rId1"/></sheets>
</workbook>`

const workbookRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`

// Filename returns the download name for a month (YYYY-MM). An empty month
// names the full export.
func Filename(month string) string {
	if month == "" {
		return "flight-log.xlsx"
	}
	return "flight-log-" + month + ".xlsx"
}

// Row renders an entry as the cell values of one sheet row.
func Row(e *models.FlightEntry) []string {
	return []string{
		e.Date,
		e.Student,
		e.Instructor,
		e.Aircraft,
		e.FlightType.Label(),
		e.Exercise,
		e.TakeoffTime,
		e.LandingTime,
		e.TotalFlightTime,
		e.LandingType.Label(),
		strconv.FormatInt(e.LandingCount, 10),
	}
}

// Build returns the workbook for entries as bytes.
func Build(entries []*models.FlightEntry) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes entries, in order, as a workbook on w. No entries yields a
// sheet with only the header row.
func Write(w io.Writer, entries []*models.FlightEntry) error {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, Header)
	for _, e := range entries {
		rows = append(rows, Row(e))
	}

	z := newStoredZip(w, modified)
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(rootRelsXML)},
		{"xl/workbook.xml", []byte(workbookXML)},
		{"xl/_rels/workbook.xml.rels", []byte(workbookRelsXML)},
		{"xl/worksheets/sheet1.xml", sheetXML(rows)},
	}
	for _, p := range parts {
		if err := z.add(p.name, p.data); err != nil {
			return err
		}
	}
	return z.close()
}

func sheetXML(rows [][]string) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>`)
	for i, row := range rows {
		r := i + 1
		fmt.Fprintf(&b, `<row r="%d">`, r)
		for j, v := range row {
			fmt.Fprintf(&b, `<c r="%s%d" t="inlineStr"><is><t xml:space="preserve">%s</t></is></c>`, column(j), r, escape(v))
		}
		b.WriteString(`</row>`)
	}
	b.WriteString(`</sheetData></worksheet>`)
	return []byte(b.String())
}

// column returns the spreadsheet letters for a zero-based column index.
func column(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape makes s safe as XML character data. Invalid UTF-8 becomes U+FFFD
// and characters outside the XML 1.0 Char production are dropped.
func escape(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, func(r rune) bool { return !xmlChar(r) }) < 0 {
		return escaper.Replace(s)
	}
	var b strings.Builder
	for _, r := range s {
		// range yields utf8.RuneError for each invalid byte, which is itself
		// a legal XML character.
		if xmlChar(r) {
			b.WriteRune(r)
		}
	}
	return escaper.Replace(b.String())
}

func xmlChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= utf8.MaxRune:
		return true
	}
	return false
}
