// Package dirindex implements directory listing via secondary-index range
// queries on the inode column family, per spec.md §4.6.
package dirindex

import (
	"context"

	"golang.org/x/xerrors"

	"github.com/brisk/cfs/internal/columnstore"
)

// MaxResultRows is the per-query result-set cap of spec.md §4.6: callers
// must not silently truncate a larger result set.
const MaxResultRows = 100000

// ErrResultSetTruncated is returned when the column store reports a
// truncated result set but gives no paging token. A truncated result that
// does carry a token is paged through automatically.
var ErrResultSetTruncated = xerrors.New("dirindex: result set truncated, use the paging token")

// Lister runs shallow and deep directory listings against one inode column
// family (the regular or archive pool's "inode"/"inode_archive").
type Lister struct {
	Client       columnstore.Client
	ColumnFamily string
	Level        columnstore.ConsistencyLevel
}

// ListSubPaths returns the shallow listing of dir: every inode whose
// parent_path equals dir exactly.
func (l *Lister) ListSubPaths(ctx context.Context, dir string) ([]string, error) {
	expressions := []columnstore.IndexExpression{
		{Column: "sentinel", Op: columnstore.Equal, Value: []byte("x")},
		{Column: "parent_path", Op: columnstore.Equal, Value: []byte(dir)},
	}
	return l.scanAll(ctx, expressions, nil)
}

// ListDeepSubPaths returns the deep listing of dir: every inode whose path
// falls in (dir, successor(dir)). As documented in spec.md §4.6 and §9, this
// range also matches siblings that share dir as a byte-prefix without a '/'
// separator (e.g. listing "/p" also matches "/pa/..."); ListDeepSubPaths
// does not filter these out, matching the known source behavior, and
// callers that need exact descendants must filter on a '/' boundary
// themselves.
func (l *Lister) ListDeepSubPaths(ctx context.Context, dir string) ([]string, error) {
	upper := successor(dir)
	expressions := []columnstore.IndexExpression{
		{Column: "sentinel", Op: columnstore.Equal, Value: []byte("x")},
		{Column: "path", Op: columnstore.GreaterThan, Value: []byte(dir)},
		{Column: "path", Op: columnstore.LessThan, Value: []byte(upper)},
	}
	return l.scanAll(ctx, expressions, nil)
}

func (l *Lister) scanAll(ctx context.Context, expressions []columnstore.IndexExpression, startKey []byte) ([]string, error) {
	var paths []string
	for {
		rows, nextStart, truncated, err := l.Client.GetIndexedSlices(ctx, l.ColumnFamily, expressions, []string{"path"}, MaxResultRows, l.Level, startKey)
		if err != nil {
			return nil, xerrors.Errorf("dirindex: get_indexed_slices: %w", err)
		}
		for _, row := range rows {
			if p, ok := row.Columns["path"]; ok {
				paths = append(paths, string(p))
			}
		}
		if !truncated {
			return paths, nil
		}
		if len(nextStart) == 0 {
			return nil, ErrResultSetTruncated
		}
		startKey = nextStart
	}
}

// successor returns dir with its last byte/code point incremented by one,
// per spec.md §4.6's range-query upper bound.
func successor(dir string) string {
	if dir == "" {
		return dir
	}
	b := []byte(dir)
	b[len(b)-1]++
	return string(b)
}
