package inode

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}

// Marshal serializes n per spec.md §4.3's big-endian, self-describing
// binary format.
func (n *INode) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(CurrentVersion)

	if err := writeString(&buf, n.User); err != nil {
		return nil, err
	}
	if err := writeString(&buf, n.Group); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, n.Permissions); err != nil {
		return nil, err
	}
	buf.WriteByte(byte(n.Kind))
	buf.WriteByte(n.Replication)
	if err := binary.Write(&buf, binary.BigEndian, n.BlockSize); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, n.MTime.UnixNano()/int64(1e6)); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, uint32(len(n.Blocks))); err != nil {
		return nil, err
	}
	for _, b := range n.Blocks {
		buf.Write(b.ID[:])
		if err := binary.Write(&buf, binary.BigEndian, b.Offset); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.BigEndian, b.Length); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.BigEndian, uint32(len(b.SubBlocks))); err != nil {
			return nil, err
		}
		for _, sb := range b.SubBlocks {
			buf.Write(sb.ID[:])
			if err := binary.Write(&buf, binary.BigEndian, sb.Offset); err != nil {
				return nil, err
			}
			if err := binary.Write(&buf, binary.BigEndian, sb.Length); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}

// Unmarshal parses an INode's Blocks and attributes from their binary form
// (spec.md §4.3). Path is not part of the wire format (it is the row's own
// `path` column); Unmarshal sets n.Path from the path argument. It rejects
// an unknown version and fails cleanly on truncated input; on error n is
// left unchanged.
func (n *INode) Unmarshal(path string, data []byte) error {
	r := bytes.NewReader(data)

	version, err := r.ReadByte()
	if err != nil {
		return xerrors.Errorf("inode: truncated: reading version: %w", err)
	}
	if version != CurrentVersion {
		return xerrors.Errorf("inode: unsupported version %d (want %d)", version, CurrentVersion)
	}

	user, err := readString(r)
	if err != nil {
		return xerrors.Errorf("inode: truncated: reading user: %w", err)
	}
	group, err := readString(r)
	if err != nil {
		return xerrors.Errorf("inode: truncated: reading group: %w", err)
	}
	var perm uint16
	if err := binary.Read(r, binary.BigEndian, &perm); err != nil {
		return xerrors.Errorf("inode: truncated: reading permissions: %w", err)
	}
	kindByte, err := r.ReadByte()
	if err != nil {
		return xerrors.Errorf("inode: truncated: reading kind: %w", err)
	}
	replication, err := r.ReadByte()
	if err != nil {
		return xerrors.Errorf("inode: truncated: reading replication: %w", err)
	}
	var blockSize uint64
	if err := binary.Read(r, binary.BigEndian, &blockSize); err != nil {
		return xerrors.Errorf("inode: truncated: reading block size: %w", err)
	}
	var mtimeMillis int64
	if err := binary.Read(r, binary.BigEndian, &mtimeMillis); err != nil {
		return xerrors.Errorf("inode: truncated: reading mtime: %w", err)
	}
	var blockCount uint32
	if err := binary.Read(r, binary.BigEndian, &blockCount); err != nil {
		return xerrors.Errorf("inode: truncated: reading block count: %w", err)
	}

	blocks := make([]Block, 0, blockCount)
	for i := uint32(0); i < blockCount; i++ {
		var b Block
		if _, err := io.ReadFull(r, b.ID[:]); err != nil {
			return xerrors.Errorf("inode: truncated: reading block %d id: %w", i, err)
		}
		if err := binary.Read(r, binary.BigEndian, &b.Offset); err != nil {
			return xerrors.Errorf("inode: truncated: reading block %d offset: %w", i, err)
		}
		if err := binary.Read(r, binary.BigEndian, &b.Length); err != nil {
			return xerrors.Errorf("inode: truncated: reading block %d length: %w", i, err)
		}
		var subCount uint32
		if err := binary.Read(r, binary.BigEndian, &subCount); err != nil {
			return xerrors.Errorf("inode: truncated: reading block %d sub-count: %w", i, err)
		}
		b.SubBlocks = make([]SubBlock, 0, subCount)
		for j := uint32(0); j < subCount; j++ {
			var sb SubBlock
			if _, err := io.ReadFull(r, sb.ID[:]); err != nil {
				return xerrors.Errorf("inode: truncated: reading block %d sub-block %d id: %w", i, j, err)
			}
			if err := binary.Read(r, binary.BigEndian, &sb.Offset); err != nil {
				return xerrors.Errorf("inode: truncated: reading block %d sub-block %d offset: %w", i, j, err)
			}
			if err := binary.Read(r, binary.BigEndian, &sb.Length); err != nil {
				return xerrors.Errorf("inode: truncated: reading block %d sub-block %d length: %w", i, j, err)
			}
			b.SubBlocks = append(b.SubBlocks, sb)
		}
		blocks = append(blocks, b)
	}

	n.Path = path
	n.User = user
	n.Group = group
	n.Permissions = perm
	n.Kind = Kind(kindByte)
	n.Replication = replication
	n.BlockSize = blockSize
	n.MTime = millisToTime(mtimeMillis)
	n.Blocks = blocks
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	if err := binary.Write(buf, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	buf.WriteString(s)
	return nil
}

func readString(r *bytes.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

// NewSubBlockID allocates a fresh time-based UUID for a SubBlock.
func NewSubBlockID() (uuid.UUID, error) {
	return uuid.NewUUID()
}
