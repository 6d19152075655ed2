// Copyright (C) 2026 thud
//
// This file is part of codeforces-api-go.
//
// codeforces-api-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// codeforces-api-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with codeforces-api-go.  If not, see <https://www.gnu.org/licenses/>.

// Fetches a blog entry with blogEntry.view and prints it.
//
// Usage:
//
//	CODEFORCES_API_KEY=... CODEFORCES_API_SECRET=... go run ./cmd/examples/blog-entry
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/thud/codeforces-api-go/pkg/client"
	"github.com/thud/codeforces-api-go/pkg/commands"
	"github.com/thud/codeforces-api-go/pkg/protocol"
	"github.com/thud/codeforces-api-go/pkg/signer"
	"github.com/thud/codeforces-api-go/pkg/transport"
)

type config struct {
	APIKey    string        `envconfig:"CODEFORCES_API_KEY" required:"true"`
	APISecret string        `envconfig:"CODEFORCES_API_SECRET" required:"true"`
	Timeout   time.Duration `envconfig:"CODEFORCES_TIMEOUT" default:"30s"`

	BlogEntryID int64 `envconfig:"BLOG_ENTRY_ID" default:"82347"`
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	c := client.New(
		signer.Credentials{Key: cfg.APIKey, Secret: cfg.APISecret},
		client.WithTransport(transport.NewHTTPTransport(&http.Client{Timeout: cfg.Timeout})),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	res, err := c.Do(ctx, &commands.BlogEntryView{BlogEntryID: cfg.BlogEntryID})
	if err != nil {
		log.Fatalf("blogEntry.view failed: %v", err)
	}

	entry := res.(*protocol.BlogEntry)
	fmt.Printf("Blog entry %d by %s\n", entry.ID, entry.AuthorHandle)
	fmt.Printf("  Title:  %s\n", entry.Title)
	fmt.Printf("  Rating: %d\n", entry.Rating)
	fmt.Printf("  Tags:   %v\n", entry.Tags)
}
