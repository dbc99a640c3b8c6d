package main_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/diffpager"
	main "github.com/fwojciec/diffpager/cmd/diffpager"
	"github.com/fwojciec/diffpager/gitdiff"
	"github.com/fwojciec/diffpager/mock"
)

const diffInput = `commit abc123 Fix bug
diff --git a/src/main b/src/main
--- a/src/main
+++ b/src/main
@@ -1,3 +1,4 @@
 one
+two
 three
`

func TestApp_Run_ParsesAndViews(t *testing.T) {
	t.Parallel()

	var viewed *diffpager.Document
	app := &main.App{
		Input:  strings.NewReader(diffInput),
		Parser: gitdiff.NewParser(),
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, doc *diffpager.Document) error {
				viewed = doc
				return nil
			},
		},
	}

	require.NoError(t, app.Run(context.Background()))

	require.NotNil(t, viewed)
	assert.Len(t, viewed.Lines, 8)
	got := viewed.Index.Resolve(7)
	assert.Equal(t, "abc123", got.Commit.ID)
	assert.Equal(t, "src/main", got.FilePath)
}

func TestApp_Run_ReadsFromFilePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "changes.patch")
	require.NoError(t, os.WriteFile(path, []byte(diffInput), 0o644))

	var viewed *diffpager.Document
	app := &main.App{
		FilePath: path,
		Parser:   gitdiff.NewParser(),
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, doc *diffpager.Document) error {
				viewed = doc
				return nil
			},
		},
	}

	require.NoError(t, app.Run(context.Background()))
	require.NotNil(t, viewed)
	assert.Len(t, viewed.Lines, 8)
}

func TestApp_Run_FileNotFound(t *testing.T) {
	t.Parallel()

	app := &main.App{
		FilePath: "/nonexistent/path/changes.patch",
		Parser:   gitdiff.NewParser(),
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, _ *diffpager.Document) error {
				t.Error("viewer should not be called when the file cannot be opened")
				return nil
			},
		},
	}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin gone")
}

func TestApp_Run_InputReadFailure(t *testing.T) {
	t.Parallel()

	app := &main.App{
		Input:  errReader{},
		Parser: gitdiff.NewParser(),
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, _ *diffpager.Document) error {
				t.Error("viewer should not be called when input cannot be read")
				return nil
			},
		},
	}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin gone")
}

func TestApp_Run_EmptyInputIsNotAnError(t *testing.T) {
	t.Parallel()

	var viewed *diffpager.Document
	app := &main.App{
		Input:  strings.NewReader(""),
		Parser: gitdiff.NewParser(),
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, doc *diffpager.Document) error {
				viewed = doc
				return nil
			},
		},
	}

	require.NoError(t, app.Run(context.Background()))
	require.NotNil(t, viewed)
	assert.Empty(t, viewed.Lines)
	assert.True(t, viewed.Index.Resolve(0).IsZero())
}

func TestApp_Run_ViewerError(t *testing.T) {
	t.Parallel()

	app := &main.App{
		Input:  strings.NewReader(diffInput),
		Parser: gitdiff.NewParser(),
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, _ *diffpager.Document) error {
				return errors.New("terminal exploded")
			},
		},
	}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal exploded")
}
