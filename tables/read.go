package tables

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	_ "github.com/mattn/go-sqlite3"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/zorros"
	"io"
	"os"
	"path/filepath"
	"strings"
)

/*
Source describes how a frame is read from a file
*/
type Source struct {
	Types Types  // forced column types, others are detected
	Table string // SQL table for sqlite sources, 'clicks' by default
}

// DefaultTable is the sqlite table name used when Source.Table is empty
const DefaultTable = "clicks"

/*
ReadCSV reads comma separated values with a header row
*/
func ReadCSV(rd io.Reader, types Types) (Frame, error) {
	opts := []dataframe.LoadOption{dataframe.HasHeader(true)}
	if len(types) > 0 {
		opts = append(opts, dataframe.WithTypes(types))
	}
	return Ok(dataframe.ReadCSV(rd, opts...))
}

/*
Read reads a frame from the file choosing the format by file extension:
.csv, .csv.xz, .sqlite/.sqlite3/.db
*/
func (s Source) Read(ctx context.Context, path string) (Frame, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		return s.readCSVFile(path, false)
	case strings.HasSuffix(lower, ".csv.xz"):
		return s.readCSVFile(path, true)
	case strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"), strings.HasSuffix(lower, ".db"):
		return s.ReadSQLite(ctx, path)
	default:
		return Empty, zorros.Errorf("unsupported dataset format `%v`", filepath.Ext(path))
	}
}

/*
LuckyRead reads a frame and panics on error
*/
func (s Source) LuckyRead(ctx context.Context, path string) Frame {
	f, err := s.Read(ctx, path)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return f
}

func (s Source) readCSVFile(path string, compressed bool) (Frame, error) {
	fd, err := os.Open(path)
	if err != nil {
		return Empty, zorros.Wrapf(err, "failed to open dataset: %v", err.Error())
	}
	defer fd.Close()
	var rd io.Reader = bufio.NewReader(fd)
	if compressed {
		if rd, err = xz.NewReader(rd); err != nil {
			return Empty, zorros.Wrapf(err, "failed to decompress dataset: %v", err.Error())
		}
	}
	return ReadCSV(rd, s.Types)
}

/*
ReadSQLite reads all rows of the source table from the sqlite database file
*/
func (s Source) ReadSQLite(ctx context.Context, path string) (Frame, error) {
	if _, err := os.Stat(path); err != nil {
		return Empty, zorros.Wrapf(err, "failed to open dataset: %v", err.Error())
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return Empty, zorros.Trace(err)
	}
	defer db.Close()
	table := s.Table
	if table == "" {
		table = DefaultTable
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, strings.ReplaceAll(table, `"`, `""`)))
	if err != nil {
		return Empty, zorros.Wrapf(err, "failed to query table `%v`: %v", table, err.Error())
	}
	defer rows.Close()
	names, err := rows.Columns()
	if err != nil {
		return Empty, zorros.Trace(err)
	}
	records := [][]string{names}
	values := make([]sql.NullString, len(names))
	ptrs := make([]interface{}, len(names))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return Empty, zorros.Trace(err)
		}
		r := make([]string, len(names))
		for i, v := range values {
			if v.Valid {
				r[i] = v.String
			} else {
				r[i] = "NaN"
			}
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return Empty, zorros.Trace(err)
	}
	opts := []dataframe.LoadOption{dataframe.HasHeader(true)}
	if len(s.Types) > 0 {
		opts = append(opts, dataframe.WithTypes(s.Types))
	}
	return Ok(dataframe.LoadRecords(records, opts...))
}
