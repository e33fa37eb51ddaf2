package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"talk-lab/internal"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// "msg:" lists history, "channel:" the directory
	prefix := flag.String("prefix", "msg:", "Prefix to scan")
	limit := flag.Int("limit", 500, "Maximum rows")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	rows, err := internal.NewInspector(db, detailMapper).Scan(*prefix, *limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "Entity ID", "Namespace", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, row := range rows {
		table.Append([]string{row.Key, row.Type, row.Timestamp, row.EntityID, row.Namespace, row.Detail})
	}
	table.Render()
	fmt.Printf("\n%d row(s) under %q\n", len(rows), *prefix)
}

// detailMapper decodes the stored struct to show something readable:
// "sender: content" for messages, "name (topic)" for channels.
func detailMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	var value structpb.Struct
	if err := proto.Unmarshal(val, &value); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	fields := value.AsMap()
	switch row.Type {
	case "MESSAGE":
		row.Detail = fmt.Sprintf("%v: %v", fields["sender_name"], fields["content"])
	case "CHANNEL":
		row.Detail = fmt.Sprintf("%v (%v)", fields["name"], fields["topic"])
		if hash, _ := fields["password_hash"].(string); hash != "" {
			row.Detail += " [protected]"
		}
	}
	return row
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		// A crashed server leaves a vlog to truncate, which needs a writable open
		repaired, repairErr := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
		if repairErr != nil {
			return nil, fmt.Errorf("repair failed: %w", repairErr)
		}
		_ = repaired.Close()
		return badger.Open(opts)
	}
	return db, err
}
