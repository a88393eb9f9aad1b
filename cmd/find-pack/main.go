package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/catalog"
)

// Small debug tool: resolve a pack id against the derived catalog and print
// what a client would see.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-pack/main.go <pack-id>")
		fmt.Println("Example: go run cmd/find-pack/main.go restaurant")
		os.Exit(1)
	}

	packID := os.Args[1]

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cat := catalog.New(logger)

	pack, err := cat.PackByID(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lookup failed: %v\n", err)
		fmt.Println("\nKnown packs:")
		for _, p := range cat.Packs() {
			fmt.Printf("  %-12s %s\n", p.ID, p.Title)
		}
		os.Exit(1)
	}

	fmt.Printf("Pack: %s (%s)\n", pack.Title, pack.ID)
	fmt.Printf("Description: %s\n", pack.Description)
	fmt.Printf("Total: %.2f TND (discount %s, %s)\n", pack.TotalPrice, pack.Discount, pack.Availability)
	fmt.Println("Items:")
	for _, item := range pack.Items {
		marker := ""
		if item.IsPersonalizable {
			marker = " (personnalisable)"
		}
		fmt.Printf("  %-24s %8.2f TND%s\n", item.Name, item.Price, marker)
	}
}
