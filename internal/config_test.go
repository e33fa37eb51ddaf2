package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/tmp/badger")
	t.Setenv("BLUGE_FILEPATH", "/tmp/bluge")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://talk.example.org")
	t.Setenv("DEFAULT_CHANNELS", "General,,Music ")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal(5000, config.Port)
	req.Equal(30*time.Second, config.PingInterval)
	req.Nil(config.LimitMessages)
	req.Equal([]string{"http://localhost:3000", "https://talk.example.org"}, config.Origins())
	req.Equal([]string{"General", "Music"}, config.Channels())
}

func TestLoadConfig_From_File(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "test.env")
	req.NoError(os.WriteFile(path, []byte("BADGER_FILEPATH=/data/badger\nBLUGE_FILEPATH=/data/bluge\nLIMIT_MESSAGES=25\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("BADGER_FILEPATH")
		_ = os.Unsetenv("BLUGE_FILEPATH")
		_ = os.Unsetenv("LIMIT_MESSAGES")
	})

	config, err := LoadConfig(path)

	req.NoError(err)
	req.Equal("/data/badger", config.BadgerFilepath)
	req.NotNil(config.LimitMessages)
	req.Equal(25, *config.LimitMessages)
}

func TestLoadConfig_Missing_Required(t *testing.T) {
	t.Setenv("BADGER_FILEPATH", "")
	_ = os.Unsetenv("BADGER_FILEPATH")

	_, err := LoadConfig()

	require.Error(t, err)
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("**")
	req.Error(err)
}

func TestInspector_Scan(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	req.NoError(db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("msg:general:0000000000000000001:7d444840-9dc0"), []byte("abc")); err != nil {
			return err
		}
		return txn.Set([]byte("channel:general"), []byte("x"))
	}))
	inspector := NewInspector(db, nil)

	rows, err := inspector.Scan("msg:", 0)

	req.NoError(err)
	req.Len(rows, 1)
	req.Equal("MESSAGE", rows[0].Type)
	req.Equal("general", rows[0].Namespace)
	req.Equal("7d444840", rows[0].EntityID)
	req.Equal("Size: 3 bytes", rows[0].Detail)

	rows, err = inspector.Scan("", 1)
	req.NoError(err)
	req.Len(rows, 1)
}
