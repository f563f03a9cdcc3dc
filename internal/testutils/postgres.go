package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDBUser = "staffing"
	testDBName = "staffing"
)

// SetupPostgresForIntegration returns a connection to an empty database and
// a cleanup func. TEST_DB_DSN points at an existing server; otherwise a
// throwaway postgres container is started. The caller migrates the schema.
func SetupPostgresForIntegration() (*sql.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		db, err := openWithRetry(dsn, 1)
		if err != nil {
			log.Fatalf("test database %q: %v", dsn, err)
		}
		return db, func() { _ = db.Close() }
	}

	ctx := context.Background()
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:15-alpine",
			Env: map[string]string{
				"POSTGRES_USER":     testDBUser,
				"POSTGRES_PASSWORD": testDBUser,
				"POSTGRES_DB":       testDBName,
			},
			ExposedPorts: []string{"5432/tcp"},
			// postgres logs readiness once for the init server and once for
			// the real one.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}

	endpoint, err := pg.Endpoint(ctx, "")
	if err != nil {
		_ = pg.Terminate(ctx)
		log.Fatalf("postgres endpoint: %v", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", testDBUser, testDBUser, endpoint, testDBName)
	db, err := openWithRetry(dsn, 10)
	if err != nil {
		_ = pg.Terminate(ctx)
		log.Fatalf("connect to postgres container: %v", err)
	}

	return db, func() {
		_ = db.Close()
		_ = pg.Terminate(ctx)
	}
}

func openWithRetry(dsn string, attempts int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	for i := 0; i < attempts; i++ {
		if err = db.Ping(); err == nil {
			return db, nil
		}
		time.Sleep(time.Second)
	}
	_ = db.Close()
	return nil, err
}
