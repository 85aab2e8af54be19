package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleModify = `--- a/pkg/foo.go
+++ b/pkg/foo.go
@@ -1,3 +1,3 @@
 line1
-line2
+line2x
 line3
`

func TestParse_SimpleModify(t *testing.T) {
	files, err := Parse(simpleModify)
	require.NoError(t, err)
	require.Len(t, files, 1)

	fd := files[0]
	assert.Equal(t, "pkg/foo.go", fd.Path)
	assert.False(t, fd.IsNew)
	assert.False(t, fd.IsDelete)
	require.Len(t, fd.Hunks, 1)

	h := fd.Hunks[0]
	assert.Equal(t, 1, h.OldStart)
	assert.Equal(t, 3, h.OldLines)
	assert.Equal(t, 1, h.NewStart)
	assert.Equal(t, 3, h.NewLines)
	assert.Equal(t, []string{" line1", "-line2", "+line2x", " line3"}, h.Lines)
}

func TestParse_NewAndDeletedFiles(t *testing.T) {
	text := `--- /dev/null
+++ b/new.go
@@ -0,0 +1,2 @@
+package new
+var X = 1
--- a/old.go
+++ /dev/null
@@ -1,1 +0,0 @@
-package old
`
	files, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "new.go", files[0].Path)
	assert.True(t, files[0].IsNew)
	assert.False(t, files[0].IsDelete)

	assert.Equal(t, "old.go", files[1].Path)
	assert.False(t, files[1].IsNew)
	assert.True(t, files[1].IsDelete)
}

func TestParse_GitStyleHeadersTolerated(t *testing.T) {
	text := `diff --git a/pkg/foo.go b/pkg/foo.go
index 1234567..89abcde 100644
--- a/pkg/foo.go
+++ b/pkg/foo.go
@@ -1,1 +1,1 @@
-old
+new
`
	files, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "pkg/foo.go", files[0].Path)
}

func TestParse_BodyLinesThatLookLikeHeaders(t *testing.T) {
	// A removed line starting with "--- " sits inside the hunk body and
	// must not open a new file.
	text := `--- a/README.md
+++ b/README.md
@@ -1,2 +1,1 @@
---- separator
 kept
`
	files, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Len(t, files[0].Hunks, 1)
	assert.Equal(t, []string{"---- separator", " kept"}, files[0].Hunks[0].Lines)
}

func TestParse_NoNewlineMarkerSkipped(t *testing.T) {
	text := `--- a/foo.txt
+++ b/foo.txt
@@ -1,1 +1,1 @@
-old
+new
\ No newline at end of file
`
	files, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, files[0].Hunks, 1)
	assert.Len(t, files[0].Hunks[0].Lines, 2)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", "   \n"},
		{"no file headers", "just some text\nwith lines\n"},
		{"hunk before file header", "@@ -1,1 +1,1 @@\n-a\n+b\n"},
		{"count mismatch", "--- a/f\n+++ b/f\n@@ -1,5 +1,5 @@\n only one line\n--- a/g\n+++ b/g\n@@ -1,1 +1,1 @@\n-x\n+y\n"},
		{"both sides dev null", "--- /dev/null\n+++ /dev/null\n@@ -0,0 +0,0 @@\n"},
		{"file without hunks", "--- a/f\n+++ b/f\n"},
		{"bad hunk header", "--- a/f\n+++ b/f\n@@ nonsense @@\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.ErrorIs(t, err, ErrMalformedDiff)
		})
	}
}

func TestParse_PathStripping(t *testing.T) {
	text := "--- a/dir/file.go\t2024-01-01 00:00:00\n+++ b/dir/file.go\t2024-01-02 00:00:00\n@@ -1,1 +1,1 @@\n-a\n+b\n"
	files, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "dir/file.go", files[0].Path)
}

func TestHunk_PureAddition(t *testing.T) {
	add := &Hunk{OldStart: 10, OldLines: 0, Lines: []string{"+a", "+b"}}
	assert.True(t, add.PureAddition())

	mod := &Hunk{OldStart: 10, OldLines: 1, Lines: []string{"-a", "+b"}}
	assert.False(t, mod.PureAddition())
}

func TestHunk_Overlaps(t *testing.T) {
	a := &Hunk{OldStart: 1, OldLines: 3}
	b := &Hunk{OldStart: 3, OldLines: 2}
	c := &Hunk{OldStart: 5, OldLines: 1}
	assert.True(t, a.overlaps(b))
	assert.False(t, a.overlaps(c))
	assert.True(t, b.overlaps(c))

	// Two insertions at the same anchor occupy the same point.
	x := &Hunk{OldStart: 7, OldLines: 0}
	y := &Hunk{OldStart: 7, OldLines: 0}
	assert.True(t, x.overlaps(y))
}
