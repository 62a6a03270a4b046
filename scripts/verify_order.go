//go:build ignore

// verify_order re-reads a sorted workbook and checks that its container
// blocks are in Bay-Row-Tier order against the full list.
//
//	go run scripts/verify_order.go <full_list> [sorted.xlsx]
package main

import (
	"fmt"
	"log"
	"os"

	"stowsort/internal/blocks"
	"stowsort/internal/codec"
	"stowsort/internal/normalize"
	"stowsort/internal/stowmap"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: verify_order <full_list> [sorted.xlsx]")
	}
	fullList := os.Args[1]
	filename := "output/monitoring-sorted.xlsx"
	if len(os.Args) > 2 {
		filename = os.Args[2]
	}

	opts := normalize.Options{Encodings: normalize.DefaultEncodings}

	set, err := normalize.Load(fullList, opts)
	if err != nil {
		log.Fatal(err)
	}
	stowage := stowmap.Build(set, stowmap.DefaultHeaderScanRows)

	sorted, err := normalize.Load(filename, opts)
	if err != nil {
		log.Fatal(err)
	}
	grid := sorted.First()
	structure := blocks.Parse(grid)

	fmt.Printf("=== ORDER CHECK: %s ===\n", filename)
	fmt.Printf("Sheet: %s, blocks: %d, map entries: %d\n\n", grid.Name, len(structure.Blocks), stowage.Len())

	prev := ""
	violations := 0
	for i, b := range structure.Blocks {
		raw, ok := stowage.Lookup(b.ID)
		key := codec.KeyOf(raw, ok)
		if key < prev {
			fmt.Printf("❌ OUT OF ORDER at block %d (%s, row %d): %s after %s\n", i+1, b.ID, b.Start+1, key, prev)
			violations++
		}
		prev = key
	}

	fmt.Println()
	if violations == 0 {
		fmt.Println("✅ Blocks are in Bay-Row-Tier order")
	} else {
		fmt.Printf("❌ %d block(s) out of order\n", violations)
		os.Exit(1)
	}
}
