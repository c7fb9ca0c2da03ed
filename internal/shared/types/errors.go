package types

import "errors"

var (
	ErrUnsupportedConfigFormat = errors.New("unsupported configuration file format")
	ErrUnsupportedReportType   = errors.New("unsupported report type")
	ErrSheetNotFound           = errors.New("scorecard sheet not found")
	ErrColumnNotFound          = errors.New("scorecard column not found")
	ErrNoBucket                = errors.New("no publish bucket configured")
	ErrUnknownFactor           = errors.New("unknown scorecard factor")
	ErrRegionFetch             = errors.New("region list request failed")
	ErrNoWorkbook              = errors.New("no scorecard workbook given")
)
