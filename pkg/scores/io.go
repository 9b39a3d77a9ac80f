package scores

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// WriteTo serializes the table: u32 little-endian capacity, then one
// record per bucket in table order, id (key width), f64 value, u8 used
// flag. Empty slots are written too; the stored form is not compacted.
func (t *Table[K]) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(t.buckets))); err != nil {
		return 0, fmt.Errorf("writing table capacity: %w", err)
	}
	written := int64(4)
	for i := range t.buckets {
		b := &t.buckets[i]
		if err := binary.Write(bw, binary.LittleEndian, b.id); err != nil {
			return written, fmt.Errorf("writing bucket %d id: %w", i, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, b.value); err != nil {
			return written, fmt.Errorf("writing bucket %d value: %w", i, err)
		}
		used := byte(0)
		if b.used {
			used = 1
		}
		if err := bw.WriteByte(used); err != nil {
			return written, fmt.Errorf("writing bucket %d flag: %w", i, err)
		}
		written += int64(binary.Size(b.id)) + 8 + 1
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flushing table: %w", err)
	}
	return written, nil
}

// ReadTable deserializes a table written by WriteTo into a fresh
// instance of the same key width.
func ReadTable[K Key](r io.Reader) (*Table[K], error) {
	br := bufio.NewReader(r)
	var capacity uint32
	if err := binary.Read(br, binary.LittleEndian, &capacity); err != nil {
		return nil, fmt.Errorf("reading table capacity: %w", err)
	}
	t := &Table[K]{buckets: make([]bucket[K], capacity)}
	for i := range t.buckets {
		b := &t.buckets[i]
		if err := binary.Read(br, binary.LittleEndian, &b.id); err != nil {
			return nil, fmt.Errorf("reading bucket %d id: %w", i, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &b.value); err != nil {
			return nil, fmt.Errorf("reading bucket %d value: %w", i, err)
		}
		flag, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("reading bucket %d flag: %w", i, err)
		}
		b.used = flag != 0
		if b.used {
			t.used++
		}
	}
	return t, nil
}
