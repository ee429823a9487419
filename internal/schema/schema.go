// Package schema implements the schema manager (spec.md §4.2): detecting
// and, if necessary, creating the keyspace and its four column families,
// then waiting for schema agreement across the cluster.
package schema

import (
	"context"
	"log"
	"math/rand"
	"time"

	"golang.org/x/xerrors"

	"github.com/brisk/cfs/internal/columnstore"
)

const (
	keyspace = "CFS"

	// maxDestagger bounds the random sleep used to destagger concurrent
	// keyspace creation by co-starting nodes (spec.md §4.2).
	maxDestagger = 5 * time.Second

	highThroughputFlushMS = 250
)

// Params configures keyspace creation.
type Params struct {
	AnalyticsDC string
	OLTPDC      string
	Replication int
}

// EnsureSchema detects the keyspace described in spec.md §3, creating it
// (and its four column families) if absent, then blocks until schema
// agreement is observed across the cluster. It is idempotent: concurrent
// callers racing to create the keyspace converge on the same result because
// each re-checks presence after its destagger sleep.
func EnsureSchema(ctx context.Context, c columnstore.Client, p Params) error {
	exists, _, err := c.DescribeKeyspace(ctx, keyspace)
	if err != nil {
		return xerrors.Errorf("schema: describe_keyspace: %w", err)
	}
	if exists {
		return waitForAgreement(ctx, c)
	}

	// Destagger concurrent creation by co-starting nodes.
	select {
	case <-time.After(time.Duration(rand.Int63n(int64(maxDestagger)))):
	case <-ctx.Done():
		return ctx.Err()
	}

	exists, _, err = c.DescribeKeyspace(ctx, keyspace)
	if err != nil {
		return xerrors.Errorf("schema: describe_keyspace (recheck): %w", err)
	}
	if exists {
		return waitForAgreement(ctx, c)
	}

	def := columnstore.KeyspaceDef{
		Name:          keyspace,
		StrategyClass: "NetworkTopologyStrategy",
		StrategyOptions: map[string]int{
			p.AnalyticsDC: replicationOrDefault(p.Replication),
			p.OLTPDC:      0,
		},
		DurableWrites:  replicationOrDefault(p.Replication) > 1,
		ColumnFamilies: columnFamilyDefs(),
	}
	log.Printf("schema: creating keyspace %s (replication %s=%d, %s=0)", keyspace, p.AnalyticsDC, replicationOrDefault(p.Replication), p.OLTPDC)
	if _, err := c.SystemAddKeyspace(ctx, def); err != nil {
		return xerrors.Errorf("schema: system_add_keyspace: %w", err)
	}
	return waitForAgreement(ctx, c)
}

func replicationOrDefault(r int) int {
	if r <= 0 {
		return 1
	}
	return r
}

// columnFamilyDefs returns the four column families of spec.md §3: two
// pools × {inode, sblocks}, each inode family secondary-indexed on path,
// parent_path and sentinel. No throughput or flush-interval setting is
// sent: a ColumnFamilyDef carries only its name, indexed columns and
// compaction thresholds. The regular pool allows normal compaction; the
// archive pool disables it (min/max thresholds of 0 is Cassandra's
// documented way to turn automatic compaction off).
func columnFamilyDefs() []columnstore.ColumnFamilyDef {
	return []columnstore.ColumnFamilyDef{
		{
			Name:                   "inode",
			IndexedColumns:         []string{"path", "parent_path", "sentinel"},
			MinCompactionThreshold: 4,
			MaxCompactionThreshold: 32,
		},
		{
			Name:                   "sblocks",
			MinCompactionThreshold: 4,
			MaxCompactionThreshold: 32,
		},
		{
			Name:                   "inode_archive",
			IndexedColumns:         []string{"path", "parent_path", "sentinel"},
			MinCompactionThreshold: 0,
			MaxCompactionThreshold: 0,
		},
		{
			Name:                   "sblocks_archive",
			MinCompactionThreshold: 0,
			MaxCompactionThreshold: 0,
		},
	}
}

// waitForAgreement polls DescribeSchemaVersions until the cluster reports a
// single schema version, per spec.md §4.2.
func waitForAgreement(ctx context.Context, c columnstore.Client) error {
	for {
		versions, err := c.DescribeSchemaVersions(ctx)
		if err != nil {
			return xerrors.Errorf("schema: describe_schema_versions: %w", err)
		}
		if len(versions) <= 1 {
			return nil
		}
		select {
		case <-time.After(200 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Keyspace returns the keyspace name this manager operates on.
func Keyspace() string { return keyspace }
