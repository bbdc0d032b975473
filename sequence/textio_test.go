package sequence_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/dynvec/sequence"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	r := strings.NewReader("  1 2\n3\t4 tail")
	s := mustNew[int](t, 4)

	require.NoError(t, sequence.Scan(r, s))
	require.Equal(t, []int{1, 2, 3, 4}, s.Data())

	rest := new(strings.Builder)
	_, err := r.WriteTo(rest)
	require.NoError(t, err)
	require.Equal(t, " tail", rest.String()) // positioned right after the last token
}

func TestScanParseError(t *testing.T) {
	s := mustNew[int](t, 3)
	err := sequence.Scan(strings.NewReader("7 x 9"), s)
	require.Error(t, err)
	require.Contains(t, err.Error(), "element 1")
	require.Equal(t, 7, s.Get(0)) // earlier elements kept

	err = sequence.Scan(strings.NewReader("1"), s)
	require.Error(t, err)
	require.Contains(t, err.Error(), "element 1")
}

func TestFprintGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	var buf bytes.Buffer
	require.NoError(t, sequence.Fprint(&buf, ramp(t, 5, 1)))
	g.Assert(t, "ints", buf.Bytes())

	buf.Reset()
	require.NoError(t, sequence.Fprint(&buf, seqOf(t, 0.5, -1.25, 3.0)))
	g.Assert(t, "floats", buf.Bytes())
}

func TestFprintScanRoundTrip(t *testing.T) {
	src := seqOf(t, 3.5, -2.0, 1e-3)
	var buf bytes.Buffer
	require.NoError(t, sequence.Fprint(&buf, src))

	dst := mustNew[float64](t, 3)
	require.NoError(t, sequence.Scan(&buf, dst))
	require.True(t, sequence.Equal(src, dst))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFprintWriteError(t *testing.T) {
	err := sequence.Fprint(failWriter{}, ramp(t, 3, 1))
	require.ErrorContains(t, err, "disk full")
}
