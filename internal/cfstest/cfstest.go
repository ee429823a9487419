// Package cfstest provides an in-process fake ColumnStore gRPC server for
// exercising the store layer without a real cluster, adapted from the
// teacher's listen-then-serve pattern (internal/distritest.Export dials an
// external process; this package starts a goroutine-local grpc.Server
// instead since the "cluster" under test is pure Go).
package cfstest

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"google.golang.org/grpc"

	"github.com/brisk/cfs/pb"
)

// Server is a fake ColumnStore: an in-memory column table plus a temp
// directory used to simulate local on-disk replicas for the mmap fast
// path exercised by internal/blockstore.
type Server struct {
	mu sync.Mutex

	// columns[columnFamily][rowKey][column] = {value, timestamp}
	columns map[string]map[string]map[string]cell

	keyspace      string
	keyspaceDefs  []pb.ColumnFamilyDef
	schemaVersion string

	// LocalHostname, if set, makes GetSubBlock respond with a
	// LocalBlockDescriptor (backed by a file under localDir) whenever the
	// request's hostname matches it; any other hostname gets the raw bytes.
	LocalHostname string
	localDir      string

	// Hosts, if set, overrides the per-row-key replica list returned by
	// DescribeKeys; unset row keys default to []string{LocalHostname}.
	Hosts map[string][]string
}

type cell struct {
	value     []byte
	timestamp int64
}

// New constructs a fake server. localDir is used to materialize simulated
// local replica files; pass t.TempDir() from a test.
func New(localDir string) *Server {
	return &Server{
		columns:  map[string]map[string]map[string]cell{},
		localDir: localDir,
	}
}

// Start registers s on a fresh in-process listener and returns its address
// and a teardown function. Modeled on the teacher's readiness-pipe idiom in
// internal/distritest.Export: the listener address is available the moment
// net.Listen returns, so no separate readiness signal is needed here.
func Start(s *Server) (addr string, stop func(), err error) {
	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return "", nil, err
	}
	srv := grpc.NewServer()
	pb.RegisterColumnStoreServer(srv, s)
	go srv.Serve(lis)
	return lis.Addr().String(), srv.Stop, nil
}

func (s *Server) DescribeKeyspace(ctx context.Context, req *pb.DescribeKeyspaceRequest) (*pb.DescribeKeyspaceReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keyspace != req.Keyspace {
		return &pb.DescribeKeyspaceReply{Exists: false}, nil
	}
	cfs := make([]*pb.ColumnFamilyDef, len(s.keyspaceDefs))
	for i := range s.keyspaceDefs {
		def := s.keyspaceDefs[i]
		cfs[i] = &def
	}
	return &pb.DescribeKeyspaceReply{Exists: true, ColumnFamilies: cfs}, nil
}

func (s *Server) SystemAddKeyspace(ctx context.Context, req *pb.SystemAddKeyspaceRequest) (*pb.SystemAddKeyspaceReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyspace = req.Keyspace
	s.keyspaceDefs = nil
	for _, cf := range req.ColumnFamilies {
		s.keyspaceDefs = append(s.keyspaceDefs, *cf)
		if _, ok := s.columns[cf.Name]; !ok {
			s.columns[cf.Name] = map[string]map[string]cell{}
		}
	}
	s.schemaVersion = fmt.Sprintf("schema-%d", len(s.keyspaceDefs))
	return &pb.SystemAddKeyspaceReply{SchemaVersion: s.schemaVersion}, nil
}

func (s *Server) DescribeSchemaVersions(ctx context.Context, req *pb.DescribeSchemaVersionsRequest) (*pb.DescribeSchemaVersionsReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.schemaVersion == "" {
		return &pb.DescribeSchemaVersionsReply{Versions: []string{"UNREACHABLE"}}, nil
	}
	return &pb.DescribeSchemaVersionsReply{Versions: []string{s.schemaVersion}}, nil
}

func (s *Server) Get(ctx context.Context, req *pb.GetRequest) (*pb.GetReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.lookup(req.ColumnFamily, req.RowKey, req.Column)
	if !ok {
		return &pb.GetReply{Found: false}, nil
	}
	return &pb.GetReply{Found: true, Value: c.value, Timestamp: c.timestamp}, nil
}

func (s *Server) Insert(ctx context.Context, req *pb.InsertRequest) (*pb.InsertReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(req.ColumnFamily, req.RowKey, req.Column, req.Value, req.Timestamp)
	return &pb.InsertReply{}, nil
}

func (s *Server) BatchMutate(ctx context.Context, req *pb.BatchMutateRequest) (*pb.BatchMutateReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range req.Rows {
		for _, m := range row.Mutations {
			switch m.Kind {
			case pb.MutationKind_DELETE:
				s.delete(row.ColumnFamily, row.RowKey, m.Column)
			default:
				s.put(row.ColumnFamily, row.RowKey, m.Column, m.Value, m.Timestamp)
			}
		}
	}
	return &pb.BatchMutateReply{}, nil
}

func (s *Server) Remove(ctx context.Context, req *pb.RemoveRequest) (*pb.RemoveReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Column == nil {
		delete(s.columns[req.ColumnFamily], string(req.RowKey))
	} else {
		s.delete(req.ColumnFamily, req.RowKey, req.Column)
	}
	return &pb.RemoveReply{}, nil
}

func (s *Server) GetIndexedSlices(ctx context.Context, req *pb.GetIndexedSlicesRequest) (*pb.GetIndexedSlicesReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.columns[req.ColumnFamily]
	rowKeys := make([]string, 0, len(rows))
	for k := range rows {
		rowKeys = append(rowKeys, k)
	}
	sort.Strings(rowKeys)

	var matched []*pb.IndexedRow
	for _, rk := range rowKeys {
		if len(req.StartKey) > 0 && rk < string(req.StartKey) {
			continue
		}
		row := rows[rk]
		if !matchesAll(row, req.Expressions) {
			continue
		}
		projected := map[string][]byte{}
		for _, col := range req.ProjectColumns {
			if c, ok := row[col]; ok {
				projected[col] = c.value
			}
		}
		matched = append(matched, &pb.IndexedRow{RowKey: []byte(rk), Columns: projected})
	}

	limit := int(req.RowCountLimit)
	if limit <= 0 || len(matched) <= limit {
		return &pb.GetIndexedSlicesReply{Rows: matched, Truncated: false}, nil
	}
	return &pb.GetIndexedSlicesReply{Rows: matched[:limit], NextStartKey: matched[limit].RowKey, Truncated: true}, nil
}

func matchesAll(row map[string]cell, exprs []*pb.IndexExpression) bool {
	for _, e := range exprs {
		c, ok := row[e.Column]
		value := string(c.value)
		switch e.Op {
		case pb.IndexOperator_EQ:
			if !ok || value != string(e.Value) {
				return false
			}
		case pb.IndexOperator_GT:
			if !ok || !(value > string(e.Value)) {
				return false
			}
		case pb.IndexOperator_LT:
			if !ok || !(value < string(e.Value)) {
				return false
			}
		}
	}
	return true
}

func (s *Server) GetSubBlock(ctx context.Context, req *pb.GetSubBlockRequest) (*pb.GetSubBlockReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.lookup(req.Pool, req.BlockRowKey, req.SubBlockColumn)
	if !ok {
		return &pb.GetSubBlockReply{Found: false}, nil
	}
	if s.LocalHostname != "" && req.Hostname == s.LocalHostname {
		fn := filepath.Join(s.localDir, fmt.Sprintf("%s-%s", hex(req.BlockRowKey), hex(req.SubBlockColumn)))
		if err := os.WriteFile(fn, c.value, 0644); err != nil {
			return nil, err
		}
		return &pb.GetSubBlockReply{
			Found:         true,
			Local:         true,
			LocalFilePath: fn,
			LocalOffset:   0,
			LocalLength:   int64(len(c.value)),
		}, nil
	}
	return &pb.GetSubBlockReply{Found: true, RemoteValue: c.value}, nil
}

func (s *Server) DescribeKeys(ctx context.Context, req *pb.DescribeKeysRequest) (*pb.DescribeKeysReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hosts := make([]*pb.HostList, len(req.RowKeys))
	for i, k := range req.RowKeys {
		if h, ok := s.Hosts[string(k)]; ok {
			hosts[i] = &pb.HostList{Hostnames: h}
			continue
		}
		hosts[i] = &pb.HostList{Hostnames: []string{s.LocalHostname}}
	}
	return &pb.DescribeKeysReply{Hosts: hosts}, nil
}

func (s *Server) lookup(columnFamily string, rowKey, column []byte) (cell, bool) {
	rows, ok := s.columns[columnFamily]
	if !ok {
		return cell{}, false
	}
	cols, ok := rows[string(rowKey)]
	if !ok {
		return cell{}, false
	}
	c, ok := cols[string(column)]
	return c, ok
}

func (s *Server) put(columnFamily string, rowKey, column, value []byte, timestamp int64) {
	rows, ok := s.columns[columnFamily]
	if !ok {
		rows = map[string]map[string]cell{}
		s.columns[columnFamily] = rows
	}
	cols, ok := rows[string(rowKey)]
	if !ok {
		cols = map[string]cell{}
		rows[string(rowKey)] = cols
	}
	cols[string(column)] = cell{value: value, timestamp: timestamp}
}

func (s *Server) delete(columnFamily string, rowKey, column []byte) {
	if rows, ok := s.columns[columnFamily]; ok {
		if cols, ok := rows[string(rowKey)]; ok {
			delete(cols, string(column))
		}
	}
}

func hex(b []byte) string {
	var sb strings.Builder
	const table = "0123456789abcdef"
	for _, v := range b {
		sb.WriteByte(table[v>>4])
		sb.WriteByte(table[v&0x0f])
	}
	return sb.String()
}
