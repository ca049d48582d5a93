package domain

import "io"

// ReportReader decodes one uploaded report byte stream into a RawTable.
// The filename is used for format sensing (.csv vs .txt vs workbook).
type ReportReader interface {
	Read(r io.Reader, filename string) (*RawTable, error)
}

// AuditExporter renders a completed run as a downloadable workbook.
type AuditExporter interface {
	Workbook(result *AuditResult) ([]byte, error)
}
