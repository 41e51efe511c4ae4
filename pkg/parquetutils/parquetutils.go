package parquetutils

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

var (
	// ReaderConcurrency parallel number of file readers.
	ReaderConcurrency int64 = 8

	// WriterConcurrency parallel number of row group marshalers.
	WriterConcurrency int64 = 4
)

// ReadAll reads all records from the parquet file.
func ReadAll[T any](sourceFile source.ParquetFile) ([]T, error) {
	r, err := reader.NewParquetReader(sourceFile, new(T), ReaderConcurrency)
	if err != nil {
		return nil, errors.Wrap(err, "can't create parquet reader")
	}
	defer r.ReadStop()

	data := make([]T, r.GetNumRows())
	if err = r.Read(&data); err != nil {
		return nil, errors.Wrap(err, "failed to read parquet data")
	}

	return data, nil
}

// WriteAll writes all records into the parquet file. T must carry `parquet` struct tags.
// The caller owns the file and must close it.
func WriteAll[T any](file source.ParquetFile, records []T) error {
	w, err := writer.NewParquetWriter(file, new(T), WriterConcurrency)
	if err != nil {
		return errors.Wrap(err, "can't create parquet writer")
	}
	w.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range records {
		if err := w.Write(records[i]); err != nil {
			return errors.Wrapf(err, "failed to write record #%d", i)
		}
	}
	if err := w.WriteStop(); err != nil {
		return errors.Wrap(err, "failed to flush parquet data")
	}
	return nil
}

// WriteFile writes all records into a local parquet file at path.
func WriteFile[T any](path string, records []T) error {
	file, err := local.NewLocalFileWriter(path)
	if err != nil {
		return errors.Wrapf(err, "can't create parquet file %q", path)
	}
	defer file.Close()

	return errors.WithStack(WriteAll(file, records))
}

// Write encodes all records as a parquet file into w.
func Write[T any](w io.Writer, records []T) error {
	buf := NewBuffer()
	if err := WriteAll(buf, records); err != nil {
		return errors.WithStack(err)
	}
	_, err := buf.WriteTo(w)
	return errors.Wrap(err, "failed to write parquet data")
}
