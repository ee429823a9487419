// Package columnstore defines the RPC surface the store layer depends on
// (spec.md §6), independent of its transport. grpc.go in this package binds
// it to the concrete ColumnStore gRPC service (Dial); tests dial
// internal/cfstest's in-process fake server through the same binding.
package columnstore

import (
	"context"
)

// ConsistencyLevel mirrors the levels the Thrift-era Cassandra API (and the
// brisk.consistencylevel.* configuration keys) expose.
type ConsistencyLevel int

const (
	One ConsistencyLevel = iota
	Quorum
	LocalQuorum
	All
)

func (c ConsistencyLevel) String() string {
	switch c {
	case One:
		return "ONE"
	case LocalQuorum:
		return "LOCAL_QUORUM"
	case All:
		return "ALL"
	default:
		return "QUORUM"
	}
}

// ParseConsistencyLevel parses a brisk.consistencylevel.* configuration
// value, defaulting to Quorum for unrecognized input.
func ParseConsistencyLevel(s string) ConsistencyLevel {
	switch s {
	case "ONE":
		return One
	case "LOCAL_QUORUM":
		return LocalQuorum
	case "ALL":
		return All
	default:
		return Quorum
	}
}

// MutationKind tags the three cases a Mutation can carry, per spec.md §9's
// design note replacing the source's generic mutation object with a tagged
// variant.
type MutationKind int

const (
	SetColumn MutationKind = iota
	SetSuperColumn
	DeleteColumn
)

// Mutation is one column-level change within a BatchMutate call.
type Mutation struct {
	Kind        MutationKind
	Column      []byte
	Value       []byte
	SuperColumn []byte
	Timestamp   int64
}

// RowMutations batches the mutations for one row of one column family.
type RowMutations struct {
	RowKey       []byte
	ColumnFamily string
	Mutations    []Mutation
}

// IndexOperator is the comparison operator of one IndexExpression.
type IndexOperator int

const (
	Equal IndexOperator = iota
	GreaterThan
	LessThan
)

// IndexExpression is one predicate of a GetIndexedSlices AND-clause.
type IndexExpression struct {
	Column string
	Op     IndexOperator
	Value  []byte
}

// IndexedRow is one row returned by GetIndexedSlices, with only the
// projected columns populated.
type IndexedRow struct {
	RowKey  []byte
	Columns map[string][]byte
}

// ColumnFamilyDef describes one column family to be created by
// SystemAddKeyspace.
type ColumnFamilyDef struct {
	Name                   string
	IndexedColumns         []string
	MinCompactionThreshold int
	MaxCompactionThreshold int
}

// KeyspaceDef describes a keyspace to be created by SystemAddKeyspace.
type KeyspaceDef struct {
	Name            string
	StrategyClass   string
	StrategyOptions map[string]int
	DurableWrites   bool
	ColumnFamilies  []ColumnFamilyDef
}

// LocalBlockDescriptor is returned by GetSubBlock when the queried hostname
// holds a local on-disk replica of the requested sub-block: the caller may
// memory-map [Offset, Offset+Length) of FilePath directly instead of
// copying the column value over RPC.
type LocalBlockDescriptor struct {
	FilePath string
	Offset   int64
	Length   int64
}

// SubBlockPayload is the result of GetSubBlock: exactly one of Local or
// Remote is non-nil.
type SubBlockPayload struct {
	Local  *LocalBlockDescriptor
	Remote []byte
}

// Client is the abstract RPC surface of spec.md §6, consumed by the store
// components (schema manager, block read/write path, directory index,
// block-location resolver).
type Client interface {
	// DescribeKeyspace reports whether keyspace exists and, if so, its
	// column family definitions.
	DescribeKeyspace(ctx context.Context, keyspace string) (exists bool, cfs []ColumnFamilyDef, err error)

	// SystemAddKeyspace creates a keyspace and its column families.
	SystemAddKeyspace(ctx context.Context, def KeyspaceDef) (schemaVersion string, err error)

	// DescribeSchemaVersions returns the distinct schema versions observed
	// across the cluster; schema agreement means len == 1.
	DescribeSchemaVersions(ctx context.Context) ([]string, error)

	// Get performs a point read of one column. found is false if the row or
	// column does not exist (spec.md §7's not-found case), never an error.
	Get(ctx context.Context, rowKey []byte, columnFamily string, column []byte, level ConsistencyLevel) (value []byte, timestamp int64, found bool, err error)

	// Insert writes a single column.
	Insert(ctx context.Context, rowKey []byte, columnFamily string, column, value []byte, timestamp int64, level ConsistencyLevel) error

	// BatchMutate applies a set of row mutations atomically per row.
	BatchMutate(ctx context.Context, rows []RowMutations, level ConsistencyLevel) error

	// Remove deletes a column (or, with a nil column, the whole row) at or
	// before timestamp.
	Remove(ctx context.Context, rowKey []byte, columnFamily string, column []byte, timestamp int64, level ConsistencyLevel) error

	// GetIndexedSlices runs a secondary-indexed scan. rowCountLimit bounds
	// the result set; if more rows exist, truncated is true and
	// nextStartKey can be used to page.
	GetIndexedSlices(ctx context.Context, columnFamily string, expressions []IndexExpression, project []string, rowCountLimit int, level ConsistencyLevel, startKey []byte) (rows []IndexedRow, nextStartKey []byte, truncated bool, err error)

	// GetSubBlock fetches one sub-block column, with a locality hint: if
	// hostname is a replica holding the block on local disk, the reply
	// carries a LocalBlockDescriptor instead of the raw column bytes.
	GetSubBlock(ctx context.Context, hostname string, blockRowKey, subBlockColumn []byte, pool string) (*SubBlockPayload, error)

	// DescribeKeys resolves row keys to the hostnames that hold replicas,
	// in one batched RPC.
	DescribeKeys(ctx context.Context, keyspace string, rowKeys [][]byte) ([][]string, error)

	// Close releases any underlying connection. Idempotent.
	Close() error
}
