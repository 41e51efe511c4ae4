package minter

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/pkg/parquetutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
)

func TestNewOutcomeRecord(t *testing.T) {
	attemptedAt := time.UnixMilli(1714521600000)
	success := Success(0xFF8800, receipt("0xabc", 50_000))
	success.AttemptedAt = attemptedAt
	success.Duration = 1500 * time.Millisecond

	assert.Equal(t, OutcomeRecord{
		TokenID:     0xFF8800,
		Hex:         "FF8800",
		Kind:        "success",
		TxHash:      "0xabc",
		GasUsed:     50_000,
		FeeWei:      "50000000000000",
		AttemptedAt: 1714521600000,
		DurationMs:  1500,
	}, NewOutcomeRecord(success))

	assert.Equal(t, OutcomeRecord{
		TokenID: 1,
		Hex:     "000001",
		Kind:    "benign_failure",
		Reason:  ReasonAlreadyMintedInRun,
		FeeWei:  "0",
	}, NewOutcomeRecord(BenignFailure(1, ReasonAlreadyMintedInRun, nil)))
}

func TestReportExportParquet(t *testing.T) {
	report := &Report{
		Outcomes: []Outcome{
			Success(1, receipt("0x01", 21_000)),
			BenignFailure(2, ReasonAlreadyMinted, nil),
			FatalFailure(3, errors.New("nonce too low")),
		},
	}
	path := filepath.Join(t.TempDir(), "run.parquet")
	require.NoError(t, report.ExportParquet(path))

	file, err := local.NewLocalFileReader(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := parquetutils.ReadAll[OutcomeRecord](file)
	require.NoError(t, err)
	assert.Equal(t, report.Records(), records)
	assert.Equal(t, "nonce too low", records[2].Reason)
}

func TestReportWriteParquet(t *testing.T) {
	report := &Report{
		Outcomes: []Outcome{
			Success(0xABCDEF, receipt("0xdef", 42_000)),
			BenignFailure(0xABCDEF, ReasonAlreadyMintedInRun, nil),
		},
	}

	var out bytes.Buffer
	require.NoError(t, report.WriteParquet(&out))
	assert.Equal(t, "PAR1", string(out.Bytes()[:4]))

	records, err := parquetutils.ReadAll[OutcomeRecord](parquetutils.NewBufferFrom(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, report.Records(), records)
}
