package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"debate-split/config"
	"debate-split/pkg/model"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAnnotations 生成 9 条合格推文（时间倒序写入）和若干不合格的行
func buildAnnotations() string {
	var b strings.Builder
	b.WriteString("tweet.id\tpub.date.GMT\tcontent\tauthor.name\tauthor.nickname\trating.1\trating.2\trating.3\n")
	contents := []string{"Go Obama!", "McCain wins", "Obama and McCain debated", "taxes are too high"}
	for i := 8; i >= 0; i-- {
		fmt.Fprintf(&b, "%d\t2008-09-26 22:%02d:00\t%s\tuser%d\t\t2\t2\t1\n", 100+i, 10+i, contents[i%len(contents)], i)
	}
	b.WriteString("200\t2008-09-26 22:05:00\tsplit decision\tsplitter\tsp\t1\t2\t4\n")
	b.WriteString("201\t2008-09-26 22:06:00\tmixed feelings\tmixer\tmx\t3\t3\t1\n")
	b.WriteString("202\t2008-09-26 22:07:00\tnobody voted\tlonely\tln\n")
	b.WriteString("203\tbroken line\n")
	return b.String()
}

func newTestService(t *testing.T, fs afero.Fs, mutate func(*config.SplitConfig)) *SplitService {
	t.Helper()
	cfg := config.NewDefaultSplitConfig()
	cfg.OutputDir = "out"
	if mutate != nil {
		mutate(cfg)
	}
	svc, err := NewSplitService(fs, cfg)
	require.NoError(t, err)
	return svc
}

func readDataset(t *testing.T, fs afero.Fs, path string) decodedDataset {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	var doc decodedDataset
	require.NoError(t, xml.Unmarshal(data, &doc))
	return doc
}

func TestSplitService_Run(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "annotations.tsv", []byte(buildAnnotations()), 0644))

	result, err := newTestService(t, fs, nil).Run(context.Background(), "annotations.tsv")
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 14, result.Parse.Lines)
	assert.Equal(t, 13, result.Parse.DataLines)
	assert.Equal(t, 1, result.Parse.Malformed)
	assert.Equal(t, 1, result.Disqualified[BelowThreshold])
	assert.Equal(t, 1, result.Disqualified[MixedLabel])
	assert.Equal(t, 1, result.Disqualified[NoVotes])
	assert.True(t, result.Chronological)
	require.Len(t, result.Corpus, 9)

	wantIDs := [][]string{
		{"100", "101", "102"},
		{"103", "104", "105"},
		{"106", "107", "108"},
	}
	for i, split := range model.Splits {
		path := filepath.Join("out", string(split)+".xml")
		assert.Equal(t, path, result.Files[split])

		doc := readDataset(t, fs, path)
		var got []string
		for _, item := range doc.Items {
			got = append(got, item.TweetID)
			assert.Equal(t, "positive", item.Label)
		}
		assert.Equal(t, wantIDs[i], got, "split %s", split)
	}

	train := readDataset(t, fs, "out/train.xml")
	assert.Equal(t, "obama", train.Items[0].Target)
	assert.Equal(t, "mccain", train.Items[1].Target)
	assert.Equal(t, "both", train.Items[2].Target)
	assert.Equal(t, "user0", train.Items[0].Username)
	assert.Equal(t, 3, result.Targets[model.TargetObama])
	assert.Equal(t, 2, result.Targets[model.TargetMcCain])
	assert.Equal(t, 2, result.Targets[model.TargetBoth])
	assert.Equal(t, 2, result.Targets[model.TargetGeneral])
}

func TestSplitService_RunIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "annotations.tsv", []byte(buildAnnotations()), 0644))
	svc := newTestService(t, fs, nil)

	_, err := svc.Run(context.Background(), "annotations.tsv")
	require.NoError(t, err)
	first := map[model.Split][]byte{}
	for _, split := range model.Splits {
		first[split], err = afero.ReadFile(fs, filepath.Join("out", string(split)+".xml"))
		require.NoError(t, err)
	}

	_, err = svc.Run(context.Background(), "annotations.tsv")
	require.NoError(t, err)
	for _, split := range model.Splits {
		second, err := afero.ReadFile(fs, filepath.Join("out", string(split)+".xml"))
		require.NoError(t, err)
		assert.Equal(t, first[split], second, "split %s", split)
	}
}

func TestSplitService_StrictParseAborts(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "annotations.tsv", []byte(buildAnnotations()), 0644))
	svc := newTestService(t, fs, func(cfg *config.SplitConfig) { cfg.StrictParse = true })

	_, err := svc.Run(context.Background(), "annotations.tsv")
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 14, parseErr.Line)

	exists, err := afero.Exists(fs, "out/train.xml")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSplitService_InputNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := newTestService(t, fs, nil).Run(context.Background(), "missing.tsv")

	var notFound *InputNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing.tsv", notFound.Path)
}

func TestSplitService_InputIsDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("data", 0755))
	_, err := newTestService(t, fs, nil).Run(context.Background(), "data")

	var notFound *InputNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestSplitService_WriteErrorAborts(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "annotations.tsv", []byte(buildAnnotations()), 0644))
	_, err := newTestService(t, afero.NewReadOnlyFs(base), nil).Run(context.Background(), "annotations.tsv")

	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, model.SplitTrain, writeErr.Split)
}

func TestSplitService_CancelledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "annotations.tsv", []byte(buildAnnotations()), 0644))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(t, fs, nil).Run(ctx, "annotations.tsv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSplitService_BuildWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "annotations.tsv", []byte(buildAnnotations()), 0644))

	result, err := newTestService(t, fs, nil).Build(context.Background(), "annotations.tsv")
	require.NoError(t, err)
	assert.Equal(t, 9, result.Partition.Len())
	assert.Empty(t, result.Files)

	exists, err := afero.DirExists(fs, "out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewSplitService_InvalidThreshold(t *testing.T) {
	cfg := config.NewDefaultSplitConfig()
	cfg.VoteThreshold = "1/3"
	_, err := NewSplitService(afero.NewMemMapFs(), cfg)
	assert.Error(t, err)
}
