// Package history keeps a CSV log of generated ABA files.
package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cameronfoundation/aba/internal/aba"
)

// Entry is one generation run. Totals are in cents.
type Entry struct {
	Timestamp   time.Time
	RunID       uuid.UUID
	Input       string
	Output      string
	Records     int
	CreditTotal int64
	DebitTotal  int64
	NetTotal    int64
}

// Header is the CSV header of the history file.
const Header = "timestamp,run_id,input,output,records,credit_total,debit_total,net_total"

const (
	numFields      = 8
	colTimestamp   = 0
	colRunID       = 1
	colInput       = 2
	colOutput      = 3
	colRecords     = 4
	colCreditTotal = 5
	colDebitTotal  = 6
	colNetTotal    = 7
)

// NewEntry records a batch generated from input into output.
func NewEntry(now time.Time, input, output string, totals aba.Totals) Entry {
	return Entry{
		Timestamp:   now.UTC(),
		RunID:       uuid.New(),
		Input:       input,
		Output:      output,
		Records:     totals.Count,
		CreditTotal: totals.Credit,
		DebitTotal:  totals.Debit,
		NetTotal:    totals.Net(),
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID.String()
	row[colInput] = e.Input
	row[colOutput] = e.Output
	row[colRecords] = strconv.Itoa(e.Records)
	row[colCreditTotal] = strconv.FormatInt(e.CreditTotal, 10)
	row[colDebitTotal] = strconv.FormatInt(e.DebitTotal, 10)
	row[colNetTotal] = strconv.FormatInt(e.NetTotal, 10)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	id, err := uuid.Parse(record[colRunID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing run id %q: %w", record[colRunID], err)
	}
	records, err := strconv.Atoi(record[colRecords])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing records %q: %w", record[colRecords], err)
	}

	var totals [3]int64
	for i, col := range []int{colCreditTotal, colDebitTotal, colNetTotal} {
		totals[i], err = strconv.ParseInt(record[col], 10, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("parsing total %q: %w", record[col], err)
		}
	}

	return Entry{
		Timestamp:   ts,
		RunID:       id,
		Input:       record[colInput],
		Output:      record[colOutput],
		Records:     records,
		CreditTotal: totals[0],
		DebitTotal:  totals[1],
		NetTotal:    totals[2],
	}, nil
}

// Append writes entries to path, creating the file, its directory and the
// header if needed.
func Append(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating history dir: %w", err)
		}
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from path, or nil if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading history CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
