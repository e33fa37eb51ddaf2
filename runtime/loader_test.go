package runtime

import (
	"testing"
	"testing/fstest"

	"talk-lab/errors"

	"github.com/stretchr/testify/require"
)

func TestCensoredLoader_LoadAll(t *testing.T) {
	req := require.New(t)

	// Given two languages sharing a word, with windows line endings and comments
	fsys := fstest.MapFS{
		"censored/en.txt":    {Data: []byte("# english\nbadger\r\nSnake\n\n")},
		"censored/fr.txt":    {Data: []byte("blaireau\nbadger\n")},
		"censored/README.md": {Data: []byte("not a list")},
	}

	// When the folder is loaded
	data, err := NewCensoredLoader(fsys).LoadAll("censored")

	// Then words are merged, deduplicated and lower cased
	req.NoError(err)
	req.Equal([]string{"badger", "blaireau", "snake"}, data.Words)
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)
}

func TestCensoredLoader_Empty(t *testing.T) {
	fsys := fstest.MapFS{
		"censored/en.txt": {Data: []byte("\n# nothing\n")},
	}

	_, err := NewCensoredLoader(fsys).LoadAll("censored")

	require.ErrorIs(t, err, errors.ErrEmptyWords)
}

func TestCensoredLoader_Embedded(t *testing.T) {
	req := require.New(t)

	data, err := NewCensoredLoader(censoredFolder).LoadAll("censored")

	req.NoError(err)
	req.NotEmpty(data.Words)
	req.Contains(data.Languages, "en")
}
