package integration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	_ "github.com/lib/pq"
)

func setupPQ(t *testing.T) *sql.DB {
	t.Helper()

	var db *sql.DB
	setupDatabase(t, func(dsn string) error {
		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupPGX(t *testing.T) *pgxpool.Pool {
	t.Helper()

	var db *pgxpool.Pool
	setupDatabase(t, func(dsn string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		var err error
		db, err = pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		return db.Ping(ctx)
	})
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})

	return db
}

func setupDatabase(t *testing.T, connect func(string) error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("Could not connect to Docker: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=test",
			"POSTGRES_USER=test",
			"POSTGRES_DB=filters",
			"listen_addresses='*'",
			"fsync='off'",
			"full_page_writes='off'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(120) //nolint:errcheck

	dsn := fmt.Sprintf("postgres://test:test@%s/filters?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		return connect(dsn)
	}); err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatalf("Could not purge resource: %s", err)
		}
	})
}

// createPlayersTable creates a players table with 10 players whose text
// columns use mixed case.
func createPlayersTable(t *testing.T, exec func(query string) error) {
	t.Helper()

	if err := exec(`
		CREATE TABLE players (
			"id" serial PRIMARY KEY,
			"name" text,
			"class" text,
			"level" int,
			"mount" text,
			"joined_at" date
		);
	`); err != nil {
		t.Fatal(err)
	}
	if err := exec(`
		INSERT INTO players
			("id", "name",    "class",   "level", "mount",   "joined_at") VALUES
			(1,    'Alice',   'Warrior', 10,      'Horse',   '2019-03-01'),
			(2,    'Bob',     'mage',    20,      'horse',   '2020-07-15'),
			(3,    'Charlie', 'ROGUE',   30,      NULL,      '2020-12-31'),
			(4,    'David',   'warrior', 40,      NULL,      '2021-01-01'),
			(5,    'Eve',     'Mage',    50,      'Griffon', '2021-06-30'),
			(6,    'Frank',   'rogue',   60,      'griffon', '2022-02-02'),
			(7,    'Grace',   'warrior', 70,      'Dragon',  '2022-09-09'),
			(8,    'Hank',    'mage',    80,      'dragon',  '2023-01-01'),
			(9,    'Ivy',     'Rogue',   90,      'Phoenix', '2023-05-05'),
			(10,   'Jack',    'WARRIOR', 100,     'phoenix', '2024-01-01');
	`); err != nil {
		t.Fatal(err)
	}
}
