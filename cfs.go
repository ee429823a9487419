// Package cfs implements the store layer of a distributed filesystem
// façade over a replicated wide-column database: it translates
// filesystem-shaped operations (inode lookup, block read/write, directory
// listing, block location) into rows and columns, manages block-level
// snappy compression, and prefers a memory-mapped local replica over a
// remote RPC fetch when one is available.
package cfs

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Pool selects one of the two parallel storage pools. The regular pool is
// tuned for frequent compaction (MapReduce scratch data); the archive pool
// disables automatic compaction (long-lived data).
type Pool int

const (
	PoolRegular Pool = iota
	PoolArchive
)

func (p Pool) String() string {
	if p == PoolArchive {
		return "archive"
	}
	return "regular"
}

// InodeColumnFamily returns the name of the inode column family for this
// pool, per spec.md §3.
func (p Pool) InodeColumnFamily() string {
	if p == PoolArchive {
		return "inode_archive"
	}
	return "inode"
}

// SubBlockColumnFamily returns the name of the sub-block column family for
// this pool, per spec.md §3.
func (p Pool) SubBlockColumnFamily() string {
	if p == PoolArchive {
		return "sblocks_archive"
	}
	return "sblocks"
}

const (
	schemeRegular = "cfs"
	schemeArchive = "cfs-archive"

	// DefaultRPCPort is substituted for URIs with port -1, matching the
	// convention described in spec.md §6.
	DefaultRPCPort = 9160
)

// URI is a parsed cfs://host:port/ or cfs-archive://host:port/ endpoint.
type URI struct {
	Pool Pool
	Host string
	Port int
}

// ParseURI parses a store URI per spec.md §6. A null, empty, or literal
// "null" host is replaced by the local hostname; a port of -1 is replaced
// by DefaultRPCPort.
func ParseURI(raw string) (*URI, error) {
	var scheme, rest string
	switch {
	case strings.HasPrefix(raw, schemeArchive+"://"):
		scheme, rest = schemeArchive, strings.TrimPrefix(raw, schemeArchive+"://")
	case strings.HasPrefix(raw, schemeRegular+"://"):
		scheme, rest = schemeRegular, strings.TrimPrefix(raw, schemeRegular+"://")
	default:
		return nil, xerrors.Errorf("cfs.ParseURI(%q): unsupported scheme, want %q or %q", raw, schemeRegular, schemeArchive)
	}
	rest = strings.TrimSuffix(rest, "/")

	host := rest
	port := -1
	if idx := strings.LastIndex(rest, ":"); idx > -1 {
		host = rest[:idx]
		p, err := strconv.Atoi(rest[idx+1:])
		if err != nil {
			return nil, xerrors.Errorf("cfs.ParseURI(%q): invalid port: %w", raw, err)
		}
		port = p
	}

	if host == "" || host == "null" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, xerrors.Errorf("cfs.ParseURI(%q): resolving local hostname: %w", raw, err)
		}
		host = hostname
	}
	if port == -1 {
		port = DefaultRPCPort
	}

	pool := PoolRegular
	if scheme == schemeArchive {
		pool = PoolArchive
	}
	return &URI{Pool: pool, Host: host, Port: port}, nil
}

// Target returns the "host:port" dial target for this URI.
func (u *URI) Target() string {
	return net.JoinHostPort(u.Host, strconv.Itoa(u.Port))
}

func (u *URI) String() string {
	scheme := schemeRegular
	if u.Pool == PoolArchive {
		scheme = schemeArchive
	}
	return fmt.Sprintf("%s://%s/", scheme, u.Target())
}

// Config holds the configuration keys described in spec.md §6.
type Config struct {
	// ReadConsistency and WriteConsistency correspond to
	// brisk.consistencylevel.read / brisk.consistencylevel.write.
	ReadConsistency  string
	WriteConsistency string

	// Replication corresponds to cfs.replication (system-wide, default 1).
	Replication int

	// AnalyticsDC and OLTPDC name the two datacenters used when building a
	// network-topology-aware replication strategy (spec.md §4.2).
	AnalyticsDC string
	OLTPDC      string
}

// DefaultConfig returns the configuration defaults named in spec.md §6.
func DefaultConfig() Config {
	return Config{
		ReadConsistency:  "QUORUM",
		WriteConsistency: "QUORUM",
		Replication:      1,
		AnalyticsDC:      "analytics",
		OLTPDC:           "oltp",
	}
}

// version is bumped whenever the on-disk schema or wire protocol changes.
const version = "cfs-store/1.0"

// GetVersion implements the Store contract's getVersion operation.
func GetVersion() string {
	return version
}
