package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"weightlog/internal/domain"
)

// Header is the column line written at the top of new record files.
var Header = []string{"date", "weight", "unit"}

// Codec reads and writes the date,weight,unit line format.
type Codec struct {
	// Strategies are tried in order for every date field.
	Strategies []DateStrategy
	// Location is used for dates that carry no zone of their own.
	Location *time.Location
	// OnSkip, if set, is called for every row dropped during a load.
	OnSkip func(line int, err error)
}

// NewCodec returns a Codec using DefaultDateStrategies in loc.
func NewCodec(loc *time.Location) Codec {
	if loc == nil {
		loc = time.Local
	}
	return Codec{Strategies: DefaultDateStrategies, Location: loc}
}

// Load reads every record in the file at path. A file that cannot be read
// yields no records and stats.Err wrapping domain.ErrIO.
func Load(path string) ([]domain.NormalizedRecord, domain.LoadStats) {
	return NewCodec(time.Local).Load(path)
}

// Append writes rec as a new last line of the file at path.
func Append(path string, rec domain.WeightRecord) error {
	return NewCodec(time.Local).Append(path, rec)
}

// Load reads every record in the file at path.
func (c Codec) Load(path string) ([]domain.NormalizedRecord, domain.LoadStats) {
	f, err := os.Open(path)
	if err != nil {
		return []domain.NormalizedRecord{}, domain.LoadStats{Err: fmt.Errorf("open %s: %w: %w", path, domain.ErrIO, err)}
	}
	defer func() { _ = f.Close() }()
	return c.Decode(f)
}

// Decode parses records from r in order, skipping a leading header row and
// dropping rows that fail to parse.
func (c Codec) Decode(r io.Reader) ([]domain.NormalizedRecord, domain.LoadStats) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	out := []domain.NormalizedRecord{}
	var stats domain.LoadStats
	first := true
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			stats.Rows++
			c.skip(&stats, perr.Line, err)
			first = false
			continue
		}
		if err != nil {
			stats.Err = fmt.Errorf("read records: %w: %w", domain.ErrIO, err)
			return []domain.NormalizedRecord{}, stats
		}
		if first {
			first = false
			if len(fields) > 0 {
				fields[0] = strings.TrimPrefix(fields[0], utf8BOM)
			}
			if isHeader(fields) {
				continue
			}
		}
		stats.Rows++
		rec, err := c.ParseRow(fields)
		if err != nil {
			line, _ := cr.FieldPos(0)
			c.skip(&stats, line, err)
			continue
		}
		out = append(out, rec)
	}
	return out, stats
}

func (c Codec) skip(stats *domain.LoadStats, line int, err error) {
	stats.Dropped++
	if c.OnSkip != nil {
		c.OnSkip(line, err)
	}
}

// ParseRow converts one date,weight,unit row to a normalised record.
func (c Codec) ParseRow(fields []string) (domain.NormalizedRecord, error) {
	if len(fields) != len(Header) {
		return domain.NormalizedRecord{}, fmt.Errorf("want %d fields, got %d", len(Header), len(fields))
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return domain.NormalizedRecord{}, fmt.Errorf("bad weight %q", fields[1])
	}
	unit, err := domain.ParseUnit(fields[2])
	if err != nil {
		return domain.NormalizedRecord{}, err
	}
	ts, err := ParseDate(strings.TrimSpace(fields[0]), c.location(), c.strategies())
	if err != nil {
		return domain.NormalizedRecord{}, err
	}
	return domain.Normalize(domain.WeightRecord{Timestamp: ts, RawWeight: w, Unit: unit}), nil
}

// FormatRow renders rec in the current on-disk encoding. The timestamp is
// written to whole seconds.
func (c Codec) FormatRow(rec domain.WeightRecord) []string {
	return []string{
		rec.Timestamp.In(c.location()).Format(TimestampLayout),
		strconv.FormatFloat(rec.RawWeight, 'f', -1, 64),
		string(rec.Unit),
	}
}

// Append validates rec and writes it as a new last line of the file at
// path. The file must already exist. Timestamps are stored to the second;
// a later Load returns the same instant for any rec already truncated.
func (c Codec) Append(path string, rec domain.WeightRecord) (err error) {
	if err := rec.Validate(); err != nil {
		return err
	}
	rec.Unit, _ = domain.ParseUnit(string(rec.Unit))
	rec.Timestamp = rec.Timestamp.Truncate(time.Second)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("open %s for append: %w: %w", path, domain.ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w: %w", path, domain.ErrIO, cerr)
		}
	}()

	if missingNewline(f) {
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("append to %s: %w: %w", path, domain.ErrIO, err)
		}
	}
	w := csv.NewWriter(f)
	if err := w.Write(c.FormatRow(rec)); err != nil {
		return fmt.Errorf("append to %s: %w: %w", path, domain.ErrIO, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append to %s: %w: %w", path, domain.ErrIO, err)
	}
	return nil
}

// missingNewline reports whether a non-empty file lacks a trailing newline.
func missingNewline(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil || fi.Size() == 0 {
		return false
	}
	b := make([]byte, 1)
	if _, err := f.ReadAt(b, fi.Size()-1); err != nil {
		return false
	}
	return b[0] != '\n'
}

// utf8BOM is prepended by some spreadsheet tools when saving CSV.
const utf8BOM = "\ufeff"

func isHeader(fields []string) bool {
	if len(fields) != len(Header) {
		return false
	}
	for i, h := range Header {
		if !strings.EqualFold(strings.TrimSpace(fields[i]), h) {
			return false
		}
	}
	return true
}

func (c Codec) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c Codec) strategies() []DateStrategy {
	if len(c.Strategies) == 0 {
		return DefaultDateStrategies
	}
	return c.Strategies
}
