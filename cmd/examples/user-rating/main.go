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

// Prints a user's rating history with user.rating.
//
// Usage:
//
//	CODEFORCES_API_KEY=... CODEFORCES_API_SECRET=... HANDLE=thud \
//	    go run ./cmd/examples/user-rating
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/thud/codeforces-api-go/pkg/client"
	"github.com/thud/codeforces-api-go/pkg/commands"
	"github.com/thud/codeforces-api-go/pkg/protocol"
	"github.com/thud/codeforces-api-go/pkg/signer"
)

type config struct {
	APIKey    string        `envconfig:"CODEFORCES_API_KEY" required:"true"`
	APISecret string        `envconfig:"CODEFORCES_API_SECRET" required:"true"`
	Timeout   time.Duration `envconfig:"CODEFORCES_TIMEOUT" default:"30s"`

	Handle string `envconfig:"HANDLE" default:"thud"`
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	c := client.New(signer.Credentials{Key: cfg.APIKey, Secret: cfg.APISecret})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	res, err := c.Do(ctx, &commands.UserRating{Handle: cfg.Handle})
	if err != nil {
		var apiErr *protocol.APIError
		if errors.As(err, &apiErr) {
			log.Fatalf("Codeforces rejected the request: %s", apiErr.Comment)
		}
		log.Fatalf("user.rating failed: %v", err)
	}

	changes := res.(protocol.RatingChanges)
	if len(changes) == 0 {
		fmt.Printf("%s has no rated contests yet\n", cfg.Handle)
		return
	}
	for _, ch := range changes {
		fmt.Printf("%s: rank %d in %q, %d -> %d\n",
			time.Unix(ch.RatingUpdateTimeSeconds, 0).Format("2006-01-02"),
			ch.Rank, ch.ContestName, ch.OldRating, ch.NewRating)
	}
}
