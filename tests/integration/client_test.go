// Package integration holds smoke tests against the live Bonusly API.
// They run only when BONUSLY_TOKEN is set and are skipped otherwise,
// so the normal test run stays offline.
package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/madninja/bonusly-go/pkg/bonuses"
	"github.com/madninja/bonusly-go/pkg/client"
	"github.com/madninja/bonusly-go/pkg/companies"
	"github.com/madninja/bonusly-go/pkg/config"
	"github.com/madninja/bonusly-go/pkg/users"
)

func liveClient(t *testing.T) *client.Client {
	t.Helper()

	if os.Getenv("BONUSLY_TOKEN") == "" {
		t.Skip("BONUSLY_TOKEN not set, skipping live API test")
	}

	settings, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	cfg := client.DefaultConfig(settings.Token)
	cfg.BaseURL = settings.BaseURL
	cfg.Timeout = 30 * time.Second
	c, err := client.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

func TestMe(t *testing.T) {
	c := liveClient(t)

	me, err := users.Me(context.Background(), c)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if me.ID == "" {
		t.Error("Expected authenticated user to have an ID")
	}
	t.Logf("Authenticated as %s", me.Username)
}

func TestListUsers(t *testing.T) {
	c := liveClient(t)
	ctx := context.Background()

	pager, err := users.All(c, 5, nil)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}

	// Two pages worth, enough to exercise the skip/limit cursor
	// against the real endpoint.
	found, err := pager.Take(ctx, 10)
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	if len(found) == 0 {
		t.Fatal("Expected at least one user")
	}
	for _, u := range found {
		if u.ID == "" {
			t.Error("User without ID in listing")
		}
	}
	t.Logf("Listed %d users", len(found))
}

func TestListBonuses(t *testing.T) {
	c := liveClient(t)
	ctx := context.Background()

	pager, err := bonuses.All(c, 5, nil)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}

	found, err := pager.Take(ctx, 5)
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	t.Logf("Listed %d bonuses", len(found))
}

func TestCompanyShow(t *testing.T) {
	c := liveClient(t)

	company, err := companies.Show(context.Background(), c)
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if company.Name == "" {
		t.Error("Expected company to have a name")
	}
}

func TestAPIErrorTaxonomy(t *testing.T) {
	c := liveClient(t)

	_, err := bonuses.Get(context.Background(), c, "does-not-exist")
	if err == nil {
		t.Fatal("Expected error for unknown bonus ID")
	}
	kind := client.KindOf(err)
	if kind != client.KindAPI && kind != client.KindHTTPStatus {
		t.Errorf("KindOf() = %q, want api or http_status", kind)
	}
	t.Logf("Lookup of unknown ID failed as expected: %v", err)
}
