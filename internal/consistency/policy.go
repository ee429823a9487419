// Package consistency implements the consistency policy of spec.md §4.7:
// per-operation consistency level selection, and read-time escalation on a
// metadata miss.
package consistency

import (
	"context"
	"log"

	"golang.org/x/xerrors"

	"github.com/brisk/cfs/internal/columnstore"
)

// Policy picks consistency levels for reads and writes. New takes both
// levels verbatim; NewNetworkTopologyAware uses LocalQuorum for both, so
// that only the analytics datacenter is waited on. The Store builds its
// Policy with New from its Config (Quorum by default) and does not switch
// to LocalQuorum for its network-topology-aware keyspace.
type Policy struct {
	Read  columnstore.ConsistencyLevel
	Write columnstore.ConsistencyLevel
}

// NewNetworkTopologyAware returns the policy used for a NetworkTopologyStrategy
// keyspace: LocalQuorum for both reads and writes, per spec.md §4.7.
func NewNetworkTopologyAware() Policy {
	return Policy{Read: columnstore.LocalQuorum, Write: columnstore.LocalQuorum}
}

// New returns a policy using the given consistency levels verbatim, e.g.
// parsed from brisk.consistencylevel.read/write.
func New(read, write columnstore.ConsistencyLevel) Policy {
	return Policy{Read: read, Write: write}
}

// GetWithReadRepair performs a point read at Policy.Read; if that read
// misses (found == false) and Policy.Read is not already Quorum or higher,
// it retries once at Quorum before concluding the row is absent, per
// spec.md §4.7's read-repair-for-metadata rule.
func GetWithReadRepair(ctx context.Context, c columnstore.Client, p Policy, rowKey []byte, columnFamily string, column []byte) (value []byte, timestamp int64, found bool, err error) {
	value, timestamp, found, err = c.Get(ctx, rowKey, columnFamily, column, p.Read)
	if err != nil {
		return nil, 0, false, xerrors.Errorf("consistency: initial read: %w", err)
	}
	if found || p.Read == columnstore.Quorum || p.Read == columnstore.All {
		return value, timestamp, found, nil
	}
	log.Printf("consistency: miss at %v for %s, escalating to quorum", p.Read, columnFamily)
	value, timestamp, found, err = c.Get(ctx, rowKey, columnFamily, column, columnstore.Quorum)
	if err != nil {
		return nil, 0, false, xerrors.Errorf("consistency: escalated read: %w", err)
	}
	return value, timestamp, found, nil
}
