package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesWorkspaceAndEnforcesForeignKeys(t *testing.T) {
	dir := t.TempDir()

	conn, err := Open(Config{Workspace: dir})
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`CREATE TABLE fk_parent (id TEXT PRIMARY KEY);
		CREATE TABLE fk_child (id TEXT PRIMARY KEY, parent_id TEXT NOT NULL REFERENCES fk_parent(id))`)
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO fk_child (id, parent_id) VALUES ('c1', 'missing')`)
	assert.Error(t, err, "foreign keys must be on")

	info, err := os.Stat(Path(dir))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, ".gridworks", "gridworks.db"), Path(dir))
}

func TestPathDefaultsToCurrentDir(t *testing.T) {
	assert.Equal(t, filepath.Join(".", ".gridworks", "gridworks.db"), Path(""))
}
