// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

// Package store holds the local persistence layer: the append-only CSV audit
// log every invocation writes to, and the optional sqlite history of past
// runs.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/greentech-painting/greenpush/models"
)

// auditHeader is the fixed header row of the audit log. Column names are part
// of the external contract with the spreadsheet layer that consumes the file.
var auditHeader = []string{
	"timestamp", "reference", "customer_name", "items_count",
	"subtotal", "currency", "status", "pdf_path", "qbo_estimate_id", "error",
}

const maxErrorLen = 200

// CSVAuditLog appends one row per invocation to a CSV file. Rows are never
// rewritten or compacted. There is no file locking; concurrent writers are
// not supported beyond the trailing-newline repair.
type CSVAuditLog struct {
	path string
	now  func() time.Time
}

// NewAuditLog constructs an audit log writing to path. The file and its
// directory are created on first append.
func NewAuditLog(path string) *CSVAuditLog {
	return &CSVAuditLog{path: path, now: time.Now}
}

// Append writes exactly one row for entry, creating the directory and header
// as needed. If the file already has content, a missing trailing newline
// (from a corrupt or truncated prior write) is repaired first so the new row
// cannot concatenate onto the previous one.
func (l *CSVAuditLog) Append(entry models.AuditEntry) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create audit log dir: %w", err)
		}
	}

	needHeader, err := l.prepare()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	ts := entry.Timestamp
	if ts.IsZero() {
		ts = l.now()
	}

	w := csv.NewWriter(f)
	if needHeader {
		if err = w.Write(auditHeader); err != nil {
			return fmt.Errorf("write audit header: %w", err)
		}
	}

	row := []string{
		ts.UTC().Format("2006-01-02T15:04:05Z"),
		entry.Reference,
		entry.CustomerName,
		strconv.Itoa(entry.ItemsCount),
		fmt.Sprintf("%.2f", entry.Subtotal),
		entry.Currency,
		entry.Status,
		entry.PDFPath,
		entry.EstimateID,
		TruncateError(entry.Error),
	}
	if err = w.Write(row); err != nil {
		return fmt.Errorf("write audit row: %w", err)
	}

	w.Flush()
	return w.Error()
}

// prepare reports whether the header is still needed (new or empty file) and
// repairs a missing trailing newline otherwise.
func (l *CSVAuditLog) prepare() (bool, error) {
	info, err := os.Stat(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat audit log: %w", err)
	}
	if info.Size() == 0 {
		return true, nil
	}

	f, err := os.OpenFile(l.path, os.O_RDWR, 0)
	if err != nil {
		return false, fmt.Errorf("open audit log for repair: %w", err)
	}
	defer f.Close()

	last := make([]byte, 1)
	if _, err = f.ReadAt(last, info.Size()-1); err != nil {
		return false, fmt.Errorf("read audit log tail: %w", err)
	}

	if last[0] != '\n' && last[0] != '\r' {
		if _, err = f.Seek(0, io.SeekEnd); err != nil {
			return false, err
		}
		if _, err = f.Write([]byte("\n")); err != nil {
			return false, fmt.Errorf("repair audit log newline: %w", err)
		}
	}

	return false, nil
}

// TruncateError caps an error message at the audit log's limit.
func TruncateError(msg string) string {
	runes := []rune(msg)
	if len(runes) <= maxErrorLen {
		return msg
	}
	return string(runes[:maxErrorLen])
}
