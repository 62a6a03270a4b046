package normalize

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"

	"stowsort/internal/model"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "full.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Bay 10"))
	f.SetCellValue("Bay 10", "A1", "CONT ID")
	f.SetCellValue("Bay 10", "B1", "STOWAGE")
	f.SetCellValue("Bay 10", "A2", "ABCD1234567")
	f.SetCellValue("Bay 10", "B2", "020304")
	_, err := f.NewSheet("Notes")
	require.NoError(t, err)
	f.SetCellValue("Notes", "B3", " remark ")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	set, err := Load(path, Options{})
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	first := set.First()
	assert.Equal(t, "Bay 10", first.Name)
	assert.Equal(t, "ABCD1234567", first.Cell(1, 0))
	assert.Equal(t, "020304", first.Cell(1, 1))

	notes := set.Sheets[1]
	assert.Equal(t, "Notes", notes.Name)
	assert.Equal(t, "remark", notes.Cell(2, 1))
	assert.Equal(t, "", notes.Cell(0, 0))
}

func TestLoadCSVWithSemicolons(t *testing.T) {
	path := writeFile(t, "export.csv", []byte("CONT ID;STOWAGE\nABCD1234567;02.03.04\n\"EFGH7654321\";\n"))

	set, err := Load(path, Options{})
	require.NoError(t, err)

	g := set.First()
	assert.Equal(t, "export", g.Name)
	assert.Equal(t, "02.03.04", g.Cell(1, 1))
	assert.Equal(t, "EFGH7654321", g.Cell(2, 0))
	assert.Equal(t, "", g.Cell(2, 1))
}

func TestLoadCSVLegacyEncoding(t *testing.T) {
	encoded, err := korean.EUCKR.NewEncoder().String("CONT ID,STOWAGE,비고\nABCD1234567,020304,냉동\n")
	require.NoError(t, err)
	path := writeFile(t, "legacy.csv", []byte(encoded))

	set, err := Load(path, Options{Encodings: []string{"utf-8", "euc-kr"}})
	require.NoError(t, err)

	g := set.First()
	assert.Equal(t, "비고", g.Cell(0, 2))
	assert.Equal(t, "냉동", g.Cell(1, 2))
}

func TestLoadTextDump(t *testing.T) {
	content := "MONITORING REPORT\n\n1\tABCD1234567   12.34.56\n    (5) PROBE 3    -18.0\r\n"
	path := writeFile(t, "ocr.txt", []byte(content))

	set, err := Load(path, Options{})
	require.NoError(t, err)

	g := set.First()
	require.Equal(t, 3, g.Len())
	assert.Equal(t, model.Row{"MONITORING REPORT"}, g.Rows[0])
	assert.Equal(t, model.Row{"1", "ABCD1234567", "12.34.56"}, g.Rows[1])
	assert.Equal(t, model.Row{"(5) PROBE 3", "-18.0"}, g.Rows[2])
}

func writeDocx(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)

	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`,
	}
	for name, content := range parts {
		part, err := w.Create(name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestLoadWordTables(t *testing.T) {
	body := `<w:p><w:r><w:t>Intro paragraph</w:t></w:r></w:p>
<w:tbl>
  <w:tr>
    <w:tc><w:tcPr><w:gridSpan w:val="2"/></w:tcPr><w:p><w:r><w:t>CONT</w:t></w:r><w:r><w:t xml:space="preserve"> ID</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>STOWAGE</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>1</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>ABCD1234567</w:t></w:r></w:p></w:tc>
    <w:tc><w:p/></w:tc>
  </w:tr>
</w:tbl>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>second</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`

	set, err := Load(writeDocx(t, body), Options{})
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	g := set.First()
	assert.Equal(t, "Table 1", g.Name)
	assert.Equal(t, model.Row{"CONT ID", "", "STOWAGE"}, g.Rows[0])
	assert.Equal(t, model.Row{"1", "ABCD1234567", ""}, g.Rows[1])
	assert.Equal(t, "second", set.Sheets[1].Cell(0, 0))
}

func TestWordNestedTableStaysInCell(t *testing.T) {
	grids, err := parseWordTables(`<w:document xmlns:w="urn:w"><w:body><w:tbl><w:tr><w:tc>
<w:p><w:r><w:t>outer</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>inner</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
</w:tc><w:tc><w:p><w:r><w:t>next</w:t></w:r></w:p></w:tc></w:tr></w:tbl></w:body></w:document>`)
	require.NoError(t, err)
	require.Len(t, grids, 1)
	assert.Equal(t, model.Row{"outer inner", "next"}, grids[0].Rows[0])
}

func TestWordWithoutTablesIsEmpty(t *testing.T) {
	_, err := Load(writeDocx(t, `<w:p><w:r><w:t>just text</w:t></w:r></w:p>`), Options{})
	assert.True(t, errors.Is(err, ErrEmptyDocument))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), Options{})
	assert.True(t, errors.Is(err, ErrFileNotFound))

	_, err = Load(writeFile(t, "legacy.xls", []byte("binary")), Options{})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(writeFile(t, "broken.pdf", []byte("not a pdf")), Options{})
	assert.Error(t, err)

	assert.True(t, IsSupported("REPORT.XLSX"))
	assert.False(t, IsSupported("report.xls"))
}

func TestDocumentError(t *testing.T) {
	err := NewDocumentError("monitoring report", "r.xlsx", ErrUnsupportedFormat)

	assert.Equal(t, `cannot read monitoring report "r.xlsx": unsupported document format`, err.Error())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ',', sniffDelimiter("a,b,c\n1;2"))
	assert.Equal(t, ';', sniffDelimiter("a;b;c"))
	assert.Equal(t, '\t', sniffDelimiter("a\tb\tc;d"))
}
