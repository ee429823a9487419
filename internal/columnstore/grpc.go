package columnstore

import (
	"context"

	"golang.org/x/xerrors"
	"google.golang.org/grpc"

	"github.com/brisk/cfs/pb"
)

// grpcClient adapts pb.ColumnStoreClient to the Client interface.
type grpcClient struct {
	conn *grpc.ClientConn
	rpc  pb.ColumnStoreClient
}

// Dial connects to a ColumnStore gRPC endpoint, blocking until the
// connection is established, matching the teacher's
// grpc.DialContext(ctx, target, grpc.WithInsecure(), grpc.WithBlock())
// idiom.
func Dial(ctx context.Context, target string) (Client, error) {
	conn, err := grpc.DialContext(ctx, target, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		return nil, xerrors.Errorf("columnstore.Dial(%s): %w", target, err)
	}
	return &grpcClient{conn: conn, rpc: pb.NewColumnStoreClient(conn)}, nil
}

// NewFromConn wraps an already-established connection.
func NewFromConn(conn *grpc.ClientConn) Client {
	return &grpcClient{conn: conn, rpc: pb.NewColumnStoreClient(conn)}
}

func (c *grpcClient) Close() error {
	return c.conn.Close()
}

func toPBLevel(l ConsistencyLevel) pb.ConsistencyLevel {
	switch l {
	case One:
		return pb.ConsistencyLevel_ONE
	case LocalQuorum:
		return pb.ConsistencyLevel_LOCAL_QUORUM
	case All:
		return pb.ConsistencyLevel_ALL
	default:
		return pb.ConsistencyLevel_QUORUM
	}
}

func (c *grpcClient) DescribeKeyspace(ctx context.Context, keyspace string) (bool, []ColumnFamilyDef, error) {
	reply, err := c.rpc.DescribeKeyspace(ctx, &pb.DescribeKeyspaceRequest{Keyspace: keyspace})
	if err != nil {
		return false, nil, xerrors.Errorf("DescribeKeyspace(%s): %w", keyspace, err)
	}
	if !reply.Exists {
		return false, nil, nil
	}
	cfs := make([]ColumnFamilyDef, 0, len(reply.ColumnFamilies))
	for _, cf := range reply.ColumnFamilies {
		cfs = append(cfs, ColumnFamilyDef{
			Name:                   cf.Name,
			IndexedColumns:         cf.IndexedColumns,
			MinCompactionThreshold: int(cf.MinCompactionThreshold),
			MaxCompactionThreshold: int(cf.MaxCompactionThreshold),
		})
	}
	return true, cfs, nil
}

func (c *grpcClient) SystemAddKeyspace(ctx context.Context, def KeyspaceDef) (string, error) {
	opts := make(map[string]int32, len(def.StrategyOptions))
	for k, v := range def.StrategyOptions {
		opts[k] = int32(v)
	}
	cfs := make([]*pb.ColumnFamilyDef, 0, len(def.ColumnFamilies))
	for _, cf := range def.ColumnFamilies {
		cfs = append(cfs, &pb.ColumnFamilyDef{
			Name:                   cf.Name,
			IndexedColumns:         cf.IndexedColumns,
			MinCompactionThreshold: int32(cf.MinCompactionThreshold),
			MaxCompactionThreshold: int32(cf.MaxCompactionThreshold),
		})
	}
	reply, err := c.rpc.SystemAddKeyspace(ctx, &pb.SystemAddKeyspaceRequest{
		Keyspace:        def.Name,
		StrategyClass:   def.StrategyClass,
		StrategyOptions: opts,
		DurableWrites:   def.DurableWrites,
		ColumnFamilies:  cfs,
	})
	if err != nil {
		return "", xerrors.Errorf("SystemAddKeyspace(%s): %w", def.Name, err)
	}
	return reply.SchemaVersion, nil
}

func (c *grpcClient) DescribeSchemaVersions(ctx context.Context) ([]string, error) {
	reply, err := c.rpc.DescribeSchemaVersions(ctx, &pb.DescribeSchemaVersionsRequest{})
	if err != nil {
		return nil, xerrors.Errorf("DescribeSchemaVersions: %w", err)
	}
	return reply.Versions, nil
}

func (c *grpcClient) Get(ctx context.Context, rowKey []byte, columnFamily string, column []byte, level ConsistencyLevel) ([]byte, int64, bool, error) {
	reply, err := c.rpc.Get(ctx, &pb.GetRequest{
		RowKey:       rowKey,
		ColumnFamily: columnFamily,
		Column:       column,
		Consistency:  toPBLevel(level),
	})
	if err != nil {
		return nil, 0, false, xerrors.Errorf("Get(%s): %w", columnFamily, err)
	}
	return reply.Value, reply.Timestamp, reply.Found, nil
}

func (c *grpcClient) Insert(ctx context.Context, rowKey []byte, columnFamily string, column, value []byte, timestamp int64, level ConsistencyLevel) error {
	_, err := c.rpc.Insert(ctx, &pb.InsertRequest{
		RowKey:       rowKey,
		ColumnFamily: columnFamily,
		Column:       column,
		Value:        value,
		Timestamp:    timestamp,
		Consistency:  toPBLevel(level),
	})
	if err != nil {
		return xerrors.Errorf("Insert(%s): %w", columnFamily, err)
	}
	return nil
}

func toPBMutationKind(k MutationKind) pb.MutationKind {
	switch k {
	case SetSuperColumn:
		return pb.MutationKind_SET_SUPER_COLUMN
	case DeleteColumn:
		return pb.MutationKind_DELETE
	default:
		return pb.MutationKind_SET_COLUMN
	}
}

func (c *grpcClient) BatchMutate(ctx context.Context, rows []RowMutations, level ConsistencyLevel) error {
	pbRows := make([]*pb.RowMutations, 0, len(rows))
	for _, row := range rows {
		muts := make([]*pb.Mutation, 0, len(row.Mutations))
		for _, m := range row.Mutations {
			muts = append(muts, &pb.Mutation{
				Kind:        toPBMutationKind(m.Kind),
				Column:      m.Column,
				Value:       m.Value,
				SuperColumn: m.SuperColumn,
				Timestamp:   m.Timestamp,
			})
		}
		pbRows = append(pbRows, &pb.RowMutations{
			RowKey:       row.RowKey,
			ColumnFamily: row.ColumnFamily,
			Mutations:    muts,
		})
	}
	_, err := c.rpc.BatchMutate(ctx, &pb.BatchMutateRequest{Rows: pbRows, Consistency: toPBLevel(level)})
	if err != nil {
		return xerrors.Errorf("BatchMutate: %w", err)
	}
	return nil
}

func (c *grpcClient) Remove(ctx context.Context, rowKey []byte, columnFamily string, column []byte, timestamp int64, level ConsistencyLevel) error {
	_, err := c.rpc.Remove(ctx, &pb.RemoveRequest{
		RowKey:       rowKey,
		ColumnFamily: columnFamily,
		Column:       column,
		Timestamp:    timestamp,
		Consistency:  toPBLevel(level),
	})
	if err != nil {
		return xerrors.Errorf("Remove(%s): %w", columnFamily, err)
	}
	return nil
}

func toPBOperator(op IndexOperator) pb.IndexOperator {
	switch op {
	case GreaterThan:
		return pb.IndexOperator_GT
	case LessThan:
		return pb.IndexOperator_LT
	default:
		return pb.IndexOperator_EQ
	}
}

func (c *grpcClient) GetIndexedSlices(ctx context.Context, columnFamily string, expressions []IndexExpression, project []string, rowCountLimit int, level ConsistencyLevel, startKey []byte) ([]IndexedRow, []byte, bool, error) {
	exprs := make([]*pb.IndexExpression, 0, len(expressions))
	for _, e := range expressions {
		exprs = append(exprs, &pb.IndexExpression{Column: e.Column, Op: toPBOperator(e.Op), Value: e.Value})
	}
	reply, err := c.rpc.GetIndexedSlices(ctx, &pb.GetIndexedSlicesRequest{
		ColumnFamily:    columnFamily,
		Expressions:     exprs,
		ProjectColumns:  project,
		RowCountLimit:   int32(rowCountLimit),
		Consistency:     toPBLevel(level),
		StartKey:        startKey,
	})
	if err != nil {
		return nil, nil, false, xerrors.Errorf("GetIndexedSlices(%s): %w", columnFamily, err)
	}
	rows := make([]IndexedRow, 0, len(reply.Rows))
	for _, r := range reply.Rows {
		rows = append(rows, IndexedRow{RowKey: r.RowKey, Columns: r.Columns})
	}
	return rows, reply.NextStartKey, reply.Truncated, nil
}

func (c *grpcClient) GetSubBlock(ctx context.Context, hostname string, blockRowKey, subBlockColumn []byte, pool string) (*SubBlockPayload, error) {
	reply, err := c.rpc.GetSubBlock(ctx, &pb.GetSubBlockRequest{
		Hostname:       hostname,
		BlockRowKey:    blockRowKey,
		SubBlockColumn: subBlockColumn,
		Pool:           pool,
	})
	if err != nil {
		return nil, xerrors.Errorf("GetSubBlock: %w", err)
	}
	if !reply.Found {
		return nil, nil
	}
	if reply.Local {
		return &SubBlockPayload{Local: &LocalBlockDescriptor{
			FilePath: reply.LocalFilePath,
			Offset:   reply.LocalOffset,
			Length:   reply.LocalLength,
		}}, nil
	}
	return &SubBlockPayload{Remote: reply.RemoteValue}, nil
}

func (c *grpcClient) DescribeKeys(ctx context.Context, keyspace string, rowKeys [][]byte) ([][]string, error) {
	reply, err := c.rpc.DescribeKeys(ctx, &pb.DescribeKeysRequest{Keyspace: keyspace, RowKeys: rowKeys})
	if err != nil {
		return nil, xerrors.Errorf("DescribeKeys: %w", err)
	}
	hosts := make([][]string, 0, len(reply.Hosts))
	for _, h := range reply.Hosts {
		hosts = append(hosts, h.Hostnames)
	}
	return hosts, nil
}
