package minter

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/pkg/parquetutils"
)

// OutcomeRecord is the flat form of an outcome written to run exports.
type OutcomeRecord struct {
	TokenID     int64  `parquet:"name=token_id, type=INT64"`
	Hex         string `parquet:"name=hex, type=BYTE_ARRAY, convertedtype=UTF8"`
	Kind        string `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8"`
	TxHash      string `parquet:"name=tx_hash, type=BYTE_ARRAY, convertedtype=UTF8"`
	Reason      string `parquet:"name=reason, type=BYTE_ARRAY, convertedtype=UTF8"`
	BlockNumber int64  `parquet:"name=block_number, type=INT64"`
	GasUsed     int64  `parquet:"name=gas_used, type=INT64"`
	FeeWei      string `parquet:"name=fee_wei, type=BYTE_ARRAY, convertedtype=UTF8"`
	AttemptedAt int64  `parquet:"name=attempted_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	DurationMs  int64  `parquet:"name=duration_ms, type=INT64"`
}

func NewOutcomeRecord(o Outcome) OutcomeRecord {
	record := OutcomeRecord{
		TokenID:    int64(o.TokenID),
		Hex:        o.TokenID.Hex(),
		Kind:       string(o.Kind),
		TxHash:     o.TxHash,
		Reason:     o.Reason,
		FeeWei:     "0",
		DurationMs: o.Duration.Milliseconds(),
	}
	if !o.AttemptedAt.IsZero() {
		record.AttemptedAt = o.AttemptedAt.UnixMilli()
	}
	if o.Receipt != nil {
		record.BlockNumber = int64(o.Receipt.BlockNumber)
		record.GasUsed = int64(o.Receipt.GasUsed)
		record.FeeWei = o.Receipt.Fee().String()
	}
	return record
}

// Records returns one record per outcome of the run, in order.
func (r *Report) Records() []OutcomeRecord {
	records := make([]OutcomeRecord, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		records = append(records, NewOutcomeRecord(o))
	}
	return records
}

// ExportParquet writes the outcomes of the run to a parquet file at path.
func (r *Report) ExportParquet(path string) error {
	if err := parquetutils.WriteFile(path, r.Records()); err != nil {
		return errors.Wrap(err, "failed to export run")
	}
	return nil
}

// WriteParquet writes the outcomes of the run as a parquet file to w.
func (r *Report) WriteParquet(w io.Writer) error {
	if err := parquetutils.Write(w, r.Records()); err != nil {
		return errors.Wrap(err, "failed to export run")
	}
	return nil
}
