// Command zonedump prints every zone and DNS record visible to a
// Cloudflare API token. Useful for eyeballing an account or diffing
// snapshots outside the daemon.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mdewolf/cfadmin/internal/cloudflare"
)

func main() {
	var (
		token   = flag.String("token", "", "Cloudflare API token (or set CFADMIN_TOKEN)")
		timeout = flag.Duration("timeout", 2*time.Minute, "Overall deadline for the dump")
	)
	flag.Parse()

	if *token == "" {
		*token = os.Getenv("CFADMIN_TOKEN")
	}
	if *token == "" {
		fmt.Fprintf(os.Stderr, "Usage: zonedump -token <api-token>\n")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := cloudflare.New(*token)

	active, err := client.VerifyToken(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to verify token: %v\n", err)
		os.Exit(1)
	}
	if !active {
		fmt.Fprintf(os.Stderr, "token is not active\n")
		os.Exit(1)
	}

	zones, err := client.ListZones(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list zones: %v\n", err)
		os.Exit(1)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].Name < zones[j].Name })

	for _, z := range zones {
		fmt.Printf("ZONE: %s (%s, %s)\n", z.Name, z.ID, z.Status)

		records, err := client.ListDnsRecords(ctx, z.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to list records for %s: %v\n", z.Name, err)
			os.Exit(1)
		}

		sort.Slice(records, func(i, j int) bool {
			a, b := records[i], records[j]
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			if a.Type != b.Type {
				return a.Type < b.Type
			}
			return a.Content < b.Content
		})

		for _, r := range records {
			line := fmt.Sprintf("  %s %d %s %s", r.Name, r.TTL, r.Type, r.Content)
			if r.Priority != nil {
				line += fmt.Sprintf(" (prio %d)", *r.Priority)
			}
			if r.Proxied {
				line += " [proxied]"
			}
			fmt.Println(line)
		}
	}
}
