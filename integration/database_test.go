//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestStackrankWithMySQL tests the stackrank CLI with a MySQL snapshot backend.
func TestStackrankWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "stackrank",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/stackrank?parseTime=true", host, port.Port())
	verifySnapshotBackend(t, "mysql", connStr)
}

// TestStackrankWithPostgres tests the stackrank CLI with a PostgreSQL snapshot backend.
func TestStackrankWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
	verifySnapshotBackend(t, "postgres", connStr)
}

// verifySnapshotBackend runs a generate/analyze cycle against the given backend
// and checks that the snapshot cache fills and clears.
func verifySnapshotBackend(t *testing.T, backend, connStr string) {
	t.Setenv("STACKRANK_CACHE_BACKEND", backend)
	t.Setenv("STACKRANK_CACHE_DB_CONNECT", connStr)

	workDir := t.TempDir()
	dataPath := filepath.Join(workDir, "pipeline.csv")

	// Start from a clean slate; this also runs the embedded migrations.
	_, err := runStackrank(t, "cache", "clear")
	require.NoError(t, err)

	_, err = runStackrank(t, "generate", dataPath, "--rows", "100", "--seed", "11")
	require.NoError(t, err)

	// First run computes and stores a snapshot.
	outPath := filepath.Join(workDir, "first.json")
	_, err = runStackrank(t, "analyze", dataPath, "--output", "json", "--output-file", outPath)
	require.NoError(t, err)

	status, err := runStackrank(t, "cache", "status")
	require.NoError(t, err)
	assert.Contains(t, status, backend)
	assert.Contains(t, status, "1", "one snapshot after the first analyze run")

	// Second run over the same dataset serves the cached snapshot.
	secondPath := filepath.Join(workDir, "second.json")
	_, err = runStackrank(t, "analyze", dataPath, "--output", "json", "--output-file", secondPath)
	require.NoError(t, err)

	first, err := os.ReadFile(outPath)
	require.NoError(t, err)
	second, err := os.ReadFile(secondPath)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second), "cache hit replays the stored snapshot")

	_, err = runStackrank(t, "cache", "clear")
	require.NoError(t, err)

	status, err = runStackrank(t, "cache", "status")
	require.NoError(t, err)
	assert.Contains(t, status, "0", "clear empties the snapshot table")
}
