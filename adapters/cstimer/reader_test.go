package cstimer

import (
	"os"
	"path/filepath"
	"testing"

	"solvestats/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const sampleExport = `No.;Time;Comment;Scramble;Date;P.1
1;12.10;;R U R' U';2024-01-01 12:00:00;12.10
2;13.50;;F R U R';2024-01-01 12:01:00;13.50
3;DNF(15.00);;D2 F2 L;2024-01-01 12:02:00;15.00
4;1:04.00;;B U2 F;2024-01-01 12:03:00;1:04.00
`

func TestReader_ReadSolves(t *testing.T) {
	path := writeExport(t, sampleExport)

	solves, err := NewReader(path, DefaultOptions()).ReadSolves()
	require.NoError(t, err)
	require.Len(t, solves, 4)

	assert.Equal(t, 12.10, solves[0].Seconds)
	assert.False(t, solves[0].DNF)
	assert.True(t, solves[2].DNF)
	assert.Equal(t, 64.0, solves[3].Seconds, "mm:ss.ff raw time must be converted")
}

func TestReader_MissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.csv"), DefaultOptions()).ReadSolves()
	require.Error(t, err)
	assert.True(t, core.IsSourceReadError(err))
}

func TestReader_MissingColumns(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no status column", header: "No.;Comment;P.1\n1;;12.10\n"},
		{name: "no raw time column", header: "No.;Time;Comment\n1;12.10;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeExport(t, tt.header)
			_, err := NewReader(path, DefaultOptions()).ReadSolves()
			require.Error(t, err)
			assert.True(t, core.IsSourceReadError(err))
		})
	}
}

func TestReader_MalformedTimeAborts(t *testing.T) {
	path := writeExport(t, "No.;Time;P.1\n1;12.10;12.10\n2;13.00;not-a-time\n")

	_, err := NewReader(path, DefaultOptions()).ReadSolves()
	require.Error(t, err)
	assert.True(t, core.IsMalformedTimeError(err))
}

func TestReader_SkipMalformed(t *testing.T) {
	path := writeExport(t, "No.;Time;P.1\n1;12.10;12.10\n2;13.00;not-a-time\n3;14.00;14.00\n")

	opts := DefaultOptions()
	opts.SkipMalformed = true
	solves, err := NewReader(path, opts).ReadSolves()
	require.NoError(t, err)
	assert.Len(t, solves, 2)
}

func TestReader_UnknownStatusRejected(t *testing.T) {
	path := writeExport(t, "No.;Time;P.1\n1;pending;12.10\n")

	_, err := NewReader(path, DefaultOptions()).ReadSolves()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownStatus)
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status  string
		dnf     bool
		wantErr bool
	}{
		{status: "12.34", dnf: false},
		{status: "14.55+", dnf: false},
		{status: "DNF(12.34)", dnf: true},
		{status: "DNF", dnf: true},
		{status: "", wantErr: true},
		{status: "error", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			dnf, err := classifyStatus(1, tt.status)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dnf, dnf)
		})
	}
}
