package tables

import (
	"bytes"
	"context"
	"database/sql"
	"github.com/go-gota/gota/series"
	"github.com/ulikunitz/xz"
	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const clicksCSV = `click_time,ip,app,is_attributed
2017-11-07 09:30:40,3,12,0
2017-11-07 09:30:38,1,12,0
2017-11-07 09:30:39,2,15,1
2017-11-07 09:30:38,4,12,0
`

var clicksTypes = Types{"click_time": series.String, "ip": series.Int, "app": series.Int, "is_attributed": series.Int}

func clicks(t *testing.T) Frame {
	f, err := ReadCSV(strings.NewReader(clicksCSV), clicksTypes)
	assert.NilError(t, err)
	return f
}

func Test_ReadCSV(t *testing.T) {
	f := clicks(t)
	assert.Equal(t, f.Nrow(), 4)
	assert.DeepEqual(t, f.Names(), []string{"click_time", "ip", "app", "is_attributed"})
	assert.Equal(t, f.Col("ip").Type(), series.Int)
}

func Test_SortBy(t *testing.T) {
	f, err := SortBy(clicks(t), "click_time")
	assert.NilError(t, err)
	ip, _ := f.Col("ip").Int()
	// rows with the same time keep their original order
	assert.DeepEqual(t, ip, []int{1, 4, 2, 3})
	_, err = SortBy(f, "nope")
	assert.ErrorContains(t, err, "nope")
}

func Test_Rows(t *testing.T) {
	f := clicks(t)
	assert.Equal(t, Rows(f, 1, 3).Nrow(), 2)
	e := Rows(f, 2, 2)
	assert.Equal(t, e.Nrow(), 0)
	assert.DeepEqual(t, e.Names(), f.Names())
}

func Test_JoinConcat(t *testing.T) {
	f := clicks(t)
	enc, err := Select(f, []string{"ip", "app"})
	assert.NilError(t, err)
	j, err := Join(f, enc, "_count")
	assert.NilError(t, err)
	assert.DeepEqual(t, j.Names(), []string{"click_time", "ip", "app", "is_attributed", "ip_count", "app_count"})
	_, err = Join(j, enc, "_count")
	assert.ErrorContains(t, err, "already exists")
	_, err = Join(f, Rows(f, 0, 1), "_x")
	assert.ErrorContains(t, err, "rows")

	c, err := Concat(Rows(f, 0, 2), Rows(f, 2, 2), Rows(f, 2, 4))
	assert.NilError(t, err)
	assert.NilError(t, Equal(f, c, 0))
	assert.Equal(t, LuckyConcat().Nrow(), 0)
}

func Test_Equal(t *testing.T) {
	f := clicks(t)
	assert.NilError(t, Equal(f, f.Copy(), DefaultTolerance))

	g := f.Mutate(series.New([]int{3, 1, 2, 5}, series.Int, "ip"))
	assert.ErrorContains(t, Equal(f, g, DefaultTolerance), "column `ip` row 3")

	a := f.Mutate(series.New([]float64{0.1, 0.2, 0.3, 0.4}, series.Float, "score"))
	b := f.Mutate(series.New([]float64{0.1, 0.2, 0.3 + 1e-12, 0.4}, series.Float, "score"))
	assert.NilError(t, Equal(a, b, DefaultTolerance))
	assert.Check(t, cmp.ErrorContains(Equal(a, b, 0), "score"))

	assert.ErrorContains(t, Equal(f, Rows(f, 0, 2), 0), "rows")
	sel, _ := Select(f, []string{"ip"})
	assert.ErrorContains(t, Equal(f, sel, 0), "columns")
}

func Test_ReadFiles(t *testing.T) {
	dir, err := os.MkdirTemp("", "tables")
	assert.NilError(t, err)
	defer os.RemoveAll(dir)
	src := Source{Types: clicksTypes}
	ctx := context.Background()

	csvPath := filepath.Join(dir, "clicks.csv")
	assert.NilError(t, os.WriteFile(csvPath, []byte(clicksCSV), 0644))
	f, err := src.Read(ctx, csvPath)
	assert.NilError(t, err)
	assert.NilError(t, Equal(clicks(t), f, 0))

	var bf bytes.Buffer
	w, err := xz.NewWriter(&bf)
	assert.NilError(t, err)
	_, err = w.Write([]byte(clicksCSV))
	assert.NilError(t, err)
	assert.NilError(t, w.Close())
	xzPath := filepath.Join(dir, "clicks.csv.xz")
	assert.NilError(t, os.WriteFile(xzPath, bf.Bytes(), 0644))
	f = src.LuckyRead(ctx, xzPath)
	assert.NilError(t, Equal(clicks(t), f, 0))

	dbPath := filepath.Join(dir, "clicks.sqlite")
	db, err := sql.Open("sqlite3", dbPath)
	assert.NilError(t, err)
	_, err = db.Exec(`CREATE TABLE clicks (click_time TEXT, ip INTEGER, app INTEGER, is_attributed INTEGER)`)
	assert.NilError(t, err)
	for _, r := range clicks(t).Records()[1:] {
		_, err = db.Exec(`INSERT INTO clicks VALUES (?,?,?,?)`, r[0], r[1], r[2], r[3])
		assert.NilError(t, err)
	}
	assert.NilError(t, db.Close())
	f, err = src.Read(ctx, dbPath)
	assert.NilError(t, err)
	assert.NilError(t, Equal(clicks(t), f, 0))

	_, err = src.Read(ctx, filepath.Join(dir, "clicks.parquet"))
	assert.ErrorContains(t, err, "unsupported")
	_, err = src.Read(ctx, filepath.Join(dir, "missing.csv"))
	assert.ErrorContains(t, err, "failed to open")
}
