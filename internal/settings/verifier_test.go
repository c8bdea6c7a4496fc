package settings

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/geneloader/internal/config"
)

// denyFs refuses to open the listed paths, standing in for missing read permissions.
type denyFs struct {
	afero.Fs
	denied map[string]bool
}

func (d denyFs) Open(name string) (afero.File, error) {
	if d.denied[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Open(name)
}

type harness struct {
	verifier *Verifier
	store    *config.Store
	out      *bytes.Buffer
}

func newHarness(t *testing.T, fsys afero.Fs, input string, defaults map[string]config.Value) *harness {
	t.Helper()
	if fsys == nil {
		fsys = afero.NewMemMapFs()
	}
	store := config.NewStore(defaults)
	out := &bytes.Buffer{}
	return &harness{
		verifier: New(strings.NewReader(input), out, fsys, store),
		store:    store,
		out:      out,
	}
}

func memFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, f := range files {
		if strings.HasSuffix(f, "/") {
			require.NoError(t, fsys.MkdirAll(f, 0o755))
			continue
		}
		require.NoError(t, afero.WriteFile(fsys, f, []byte("x"), 0o644))
	}
	return fsys
}

func TestVerify_Enumerated(t *testing.T) {
	h := newHarness(t, nil, "maybe\nYES\n", nil)

	val, err := h.verifier.Verify(context.Background(), Request{
		Key:     "confirm",
		Message: "Continue?",
		Kind:    KindEnumerated,
		Choices: []string{"yes", "No"},
	})

	require.NoError(t, err)
	assert.Equal(t, "yes", val.String())
	assert.Equal(t, "yes", h.store.String("confirm"))
	assert.Contains(t, h.out.String(), "Please choose one of: yes, no.")
	assert.Equal(t, 2, strings.Count(h.out.String(), "Continue?"), "expected one re-prompt")
}

func TestVerify_EnumeratedNeverCommitsNonMembers(t *testing.T) {
	h := newHarness(t, nil, "perhaps\nnah\n", map[string]config.Value{"confirm": config.StringValue("unset")})

	_, err := h.verifier.Verify(context.Background(), Request{
		Key:     "confirm",
		Message: "Continue?",
		Kind:    KindEnumerated,
		Choices: []string{"yes", "no"},
	})

	require.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, "unset", h.store.String("confirm"))
}

func TestVerify_IntegerRange(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		rng   Range
		want  int
	}{
		{name: "closed range", input: "abc\n0\n11\n7\n", rng: Between(1, 10), want: 7},
		{name: "inclusive bounds", input: "10\n", rng: Between(1, 10), want: 10},
		{name: "lower bound only", input: "2\n1000\n", rng: AtLeast(5), want: 1000},
		{name: "upper bound only", input: "6\n-3\n", rng: AtMost(5), want: -3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, nil, tc.input, nil)

			val, err := h.verifier.Verify(context.Background(), Request{
				Key:     "limit",
				Message: "Limit",
				Kind:    KindIntegerRange,
				Range:   tc.rng,
			})

			require.NoError(t, err)
			n, ok := val.Int()
			require.True(t, ok)
			assert.Equal(t, tc.want, n)
			assert.True(t, tc.rng.Contains(n))

			stored, _ := h.store.Get("limit")
			assert.Equal(t, val, stored)
		})
	}
}

func TestVerify_IntegerRangeDiagnostics(t *testing.T) {
	h := newHarness(t, nil, "ten\n42\n3\n", nil)

	_, err := h.verifier.Verify(context.Background(), Request{Key: "limit", Message: "Limit", Kind: KindIntegerRange, Range: Between(1, 10)})

	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Please enter a whole number.")
	assert.Contains(t, h.out.String(), "Please enter a number between 1 and 10.")
}

func TestVerify_MalformedRequestsFailWithoutPrompting(t *testing.T) {
	testCases := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "open range", req: Request{Key: "limit", Kind: KindIntegerRange}, wantErr: ErrMalformedRange},
		{name: "inverted range", req: Request{Key: "limit", Kind: KindIntegerRange, Range: Between(10, 1)}, wantErr: ErrMalformedRange},
		{name: "unknown kind", req: Request{Key: "limit", Kind: Kind(42)}, wantErr: ErrUnknownKind},
		{name: "zero kind", req: Request{Key: "limit"}, wantErr: ErrUnknownKind},
		{name: "no choices", req: Request{Key: "confirm", Kind: KindEnumerated}, wantErr: ErrNoChoices},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, nil, "5\n", nil)

			_, err := h.verifier.Verify(context.Background(), tc.req)

			require.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, h.out.String(), "nothing may be prompted for a malformed request")
			_, stored := h.store.Get(tc.req.Key)
			assert.False(t, stored)
		})
	}
}

func TestVerify_EmptyInputReusesDefault(t *testing.T) {
	fsys := memFs(t, "/data/genes.txt")
	h := newHarness(t, fsys, "\n/data/genes.txt\n\n", map[string]config.Value{config.KeyGeneList: config.StringValue("all")})
	req := Request{Key: config.KeyGeneList, Message: "Gene list", Kind: KindFile}

	first, err := h.verifier.Verify(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "all", first.String())

	second, err := h.verifier.Verify(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/data/genes.txt", second.String())

	third, err := h.verifier.Verify(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, second, third, "enter must keep the committed value")
	assert.Contains(t, h.out.String(), "  Gene list [/data/genes.txt] : ")
}

func TestVerify_EmptyInputWithoutDefault(t *testing.T) {
	fsys := memFs(t, "/data/genes.txt")
	h := newHarness(t, fsys, "\n/data/genes.txt\n", nil)

	val, err := h.verifier.Verify(context.Background(), Request{Key: "list", Message: "List", Kind: KindFile})

	require.NoError(t, err)
	assert.Equal(t, "/data/genes.txt", val.String())
	assert.Contains(t, h.out.String(), "Please enter a value.")
	assert.Contains(t, h.out.String(), "  List : ")
}

func TestVerify_PromptShowsDefault(t *testing.T) {
	h := newHarness(t, nil, "\n", map[string]config.Value{config.KeyTranscriptList: config.StringValue("best")})

	_, err := h.verifier.Verify(context.Background(), Request{
		Key:     config.KeyTranscriptList,
		Message: "Transcripts",
		Kind:    KindFile,
		Choices: []string{"all", "best"},
	})

	require.NoError(t, err)
	assert.Equal(t, "  Transcripts [best] : ", h.out.String())
}

func TestVerify_TranscriptLiteralIsCaseInsensitive(t *testing.T) {
	h := newHarness(t, nil, "ALL\n", map[string]config.Value{config.KeyTranscriptList: config.StringValue("best")})

	val, err := h.verifier.Verify(context.Background(), Request{
		Key:     config.KeyTranscriptList,
		Message: "Transcripts",
		Kind:    KindFile,
		Choices: []string{"all", "best"},
	})

	require.NoError(t, err)
	assert.Equal(t, "all", val.String())
	assert.Equal(t, "all", h.store.String(config.KeyTranscriptList))
}

func TestVerify_PathRejectsNonDirectories(t *testing.T) {
	fsys := memFs(t, "/data/genes.txt", "/data/")
	h := newHarness(t, fsys, "/data/genes.txt\n/nowhere\n/data\n", nil)

	val, err := h.verifier.Verify(context.Background(), Request{Key: "dir", Message: "Directory", Kind: KindPath})

	require.NoError(t, err)
	assert.Equal(t, "/data", val.String())
	assert.Equal(t, 2, strings.Count(h.out.String(), "Given path is not a directory."))
}

func TestVerify_PathRejectsUnreadableDirectories(t *testing.T) {
	fsys := denyFs{Fs: memFs(t, "/locked/", "/open/"), denied: map[string]bool{"/locked": true}}
	h := newHarness(t, fsys, "/locked\n/open\n", nil)

	val, err := h.verifier.Verify(context.Background(), Request{Key: "dir", Message: "Directory", Kind: KindPath})

	require.NoError(t, err)
	assert.Equal(t, "/open", val.String())
	assert.Contains(t, h.out.String(), "Cannot read given path.")
}

func TestVerify_FileKind(t *testing.T) {
	fsys := denyFs{
		Fs:     memFs(t, "/data/secret.txt", "/data/genes.txt", "/locked/"),
		denied: map[string]bool{"/data/secret.txt": true, "/locked": true},
	}
	h := newHarness(t, fsys, "/data/missing.txt\n/data/secret.txt\n/locked\n/data\n", nil)

	val, err := h.verifier.Verify(context.Background(), Request{Key: "list", Message: "List", Kind: KindFile})

	require.NoError(t, err)
	assert.Equal(t, "/data", val.String(), "a readable directory is accepted by the file kind")
	assert.Equal(t, 3, strings.Count(h.out.String(), "Cannot read given path."))
}

func TestVerify_LOVDPathTopLevel(t *testing.T) {
	fsys := memFs(t, "/var/www/lovd/config.ini.php")
	h := newHarness(t, fsys, "/var/www/lovd\n", map[string]config.Value{config.KeyLOVDPath: config.StringValue("")})

	val, err := h.verifier.Verify(context.Background(), Request{Key: config.KeyLOVDPath, Message: "LOVD path", Kind: KindLOVDPath})

	require.NoError(t, err)
	assert.Equal(t, "/var/www/lovd", val.String())
}

func TestVerify_LOVDPathSourceSubdirectory(t *testing.T) {
	fsys := memFs(t, "/var/www/lovd/src/config.ini.php")
	h := newHarness(t, fsys, "/var/www/lovd\n", nil)

	val, err := h.verifier.Verify(context.Background(), Request{Key: config.KeyLOVDPath, Message: "LOVD path", Kind: KindLOVDPath})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/www/lovd", "src"), val.String())
	assert.Equal(t, val.String(), h.store.String(config.KeyLOVDPath))
}

func TestVerify_LOVDPathWithoutMarkerIsRejected(t *testing.T) {
	fsys := memFs(t, "/srv/empty/", "/srv/lovd/config.ini.php")
	h := newHarness(t, fsys, "/srv/empty\n/srv/lovd\n", nil)

	val, err := h.verifier.Verify(context.Background(), Request{Key: config.KeyLOVDPath, Message: "LOVD path", Kind: KindLOVDPath})

	require.NoError(t, err)
	assert.Equal(t, "/srv/lovd", val.String())
	out := h.out.String()
	assert.Contains(t, out, "Cannot locate config.ini.php in given path")
	assert.Contains(t, out, filepath.Join("/srv/empty", "config.ini.php"))
	assert.Contains(t, out, filepath.Join("/srv/empty", "src", "config.ini.php"))
	assert.Contains(t, out, "    Please check that the given path is a correct path to an LOVD installation.")
}

func TestVerify_LOVDPathNeverCommitsWithoutMarker(t *testing.T) {
	fsys := memFs(t, "/srv/empty/")
	h := newHarness(t, fsys, "/srv/empty\n", nil)

	_, err := h.verifier.Verify(context.Background(), Request{Key: config.KeyLOVDPath, Message: "LOVD path", Kind: KindLOVDPath})

	require.ErrorIs(t, err, ErrInputClosed)
	_, stored := h.store.Get(config.KeyLOVDPath)
	assert.False(t, stored)
}

func TestVerify_LOVDPathUnreadableMarker(t *testing.T) {
	fsys := denyFs{
		Fs:     memFs(t, "/a/config.ini.php", "/b/config.ini.php"),
		denied: map[string]bool{"/a/config.ini.php": true},
	}
	h := newHarness(t, fsys, "/a\n/b\n", nil)

	val, err := h.verifier.Verify(context.Background(), Request{Key: config.KeyLOVDPath, Message: "LOVD path", Kind: KindLOVDPath})

	require.NoError(t, err)
	assert.Equal(t, "/b", val.String())
	assert.Contains(t, h.out.String(), "Cannot read configuration file in given LOVD directory.")
}

func TestVerify_CustomLayout(t *testing.T) {
	fsys := memFs(t, "/lovd/web/settings.ini")
	store := config.NewStore(nil)
	v := New(strings.NewReader("/lovd\n"), &bytes.Buffer{}, fsys, store, WithLayout(Layout{MarkerFile: "settings.ini", SourceDir: "web"}))

	val, err := v.Verify(context.Background(), Request{Key: config.KeyLOVDPath, Message: "LOVD path", Kind: KindLOVDPath})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/lovd", "web"), val.String())
}

func TestVerify_LastLineWithoutNewline(t *testing.T) {
	h := newHarness(t, nil, "best", nil)

	val, err := h.verifier.Verify(context.Background(), Request{Key: "mode", Message: "Mode", Kind: KindEnumerated, Choices: []string{"all", "best"}})

	require.NoError(t, err)
	assert.Equal(t, "best", val.String())
}

func TestVerify_StopsOnCancelledContext(t *testing.T) {
	h := newHarness(t, nil, "x\n", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.verifier.Verify(ctx, Request{Key: "mode", Message: "Mode", Kind: KindEnumerated, Choices: []string{"all"}})

	require.True(t, errors.Is(err, context.Canceled))
}

func TestParseRange(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		contains  []int
		excludes  []int
	}{
		{name: "closed", raw: "1,3", contains: []int{1, 2, 3}, excludes: []int{0, 4}},
		{name: "lower only", raw: "1,", contains: []int{1, 99999}, excludes: []int{0, -1}},
		{name: "upper only", raw: ",3", contains: []int{-10, 3}, excludes: []int{4}},
		{name: "single value", raw: "4,4", contains: []int{4}, excludes: []int{3, 5}},
		{name: "error - both empty", raw: ",", expectErr: true},
		{name: "error - inverted bounds", raw: "5,1", expectErr: true},
		{name: "error - no comma", raw: "5", expectErr: true},
		{name: "error - negative bound", raw: "-1,3", expectErr: true},
		{name: "error - not a number", raw: "a,b", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ParseRange(tc.raw)
			if tc.expectErr {
				require.ErrorIs(t, err, ErrMalformedRange)
				return
			}
			require.NoError(t, err)
			for _, n := range tc.contains {
				assert.True(t, r.Contains(n), "expected %d in %s", n, tc.raw)
			}
			for _, n := range tc.excludes {
				assert.False(t, r.Contains(n), "expected %d outside %s", n, tc.raw)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "lovd_path", KindLOVDPath.String())
	assert.Equal(t, "integer_range", KindIntegerRange.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
