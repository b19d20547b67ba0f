package testutil

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

type PostgresContainerInfo struct {
	DSN     string
	Cleanup func()
}

// StartPostgresContainer runs a pgvector-enabled PostgreSQL image, so
// the vector extension used by the moments schema is available.
func StartPostgresContainer() (*PostgresContainerInfo, error) {
	const (
		image        = "pgvector/pgvector"
		tag          = "pg16"
		user         = "postgres"
		password     = "secret"
		internalPort = "5432/tcp"
	)

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: image,
		Tag:        tag,
		Env: []string{
			fmt.Sprintf("POSTGRES_PASSWORD=%s", password),
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres container: %w", err)
	}

	var dsn string
	if err := pool.Retry(func() error {
		port := resource.GetPort(internalPort)
		dsn = fmt.Sprintf("postgres://%s:%s@localhost:%s/postgres?sslmode=disable", user, password, port)
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer func(db *sql.DB) {
			err := db.Close()
			if err != nil {
				return
			}
		}(db)
		return db.Ping()
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres did not become ready: %w", err)
	}

	ci := &PostgresContainerInfo{
		DSN: dsn,
		Cleanup: func() {
			if err := pool.Purge(resource); err != nil {
				log.Printf("could not purge postgres container: %s", err)
			}
		},
	}
	return ci, nil
}
