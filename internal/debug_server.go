package internal

import (
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const defaultInspectLimit = 200

type InspectRow struct {
	Key       string `json:"key"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	EntityID  string `json:"entityId"`
	Namespace string `json:"namespace"`
	Detail    string `json:"detail"`
}

type RowMapper func(key string, val []byte) InspectRow

// Inspector lists raw badger entries by prefix, for the /debug/inspect endpoint
// and the inspect tool. It never decodes values, only sizes them.
type Inspector struct {
	db     *badger.DB
	mapper RowMapper
}

func NewInspector(db *badger.DB, mapper RowMapper) *Inspector {
	if mapper == nil {
		mapper = DefaultMapper
	}
	return &Inspector{db: db, mapper: mapper}
}

func (i *Inspector) Scan(prefix string, limit int) ([]InspectRow, error) {
	if limit <= 0 {
		limit = defaultInspectLimit
	}
	rows := make([]InspectRow, 0)
	err := i.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)) && len(rows) < limit; it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				rows = append(rows, i.mapper(string(item.Key()), val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return rows, err
}

// DefaultMapper understands "msg:{channel}:{ts}:{id}" and "channel:{id}" keys.
func DefaultMapper(key string, val []byte) InspectRow {
	parts := strings.Split(key, ":")
	row := InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Namespace: "default",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	switch {
	case parts[0] == "msg" && len(parts) >= 4:
		row.Type = "MESSAGE"
		row.Namespace = parts[1]
		if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).UTC().Format("15:04:05")
		}
		row.EntityID = shorten(parts[3])
	case parts[0] == "channel" && len(parts) == 2:
		row.Type = "CHANNEL"
		row.Namespace = "directory"
		row.EntityID = shorten(parts[1])
	}
	return row
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
