package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	Bound         string
	ReportName    string
	ReportType    []string
	Dir           string
	OtherFraction *float64
	Debug         bool

	PublishBucket string
	PublishPrefix string
	AWSProfile    string
	AWSRegion     string

	// scorecard
	Workbook string
	Sheet    string
	GeoJSON  string
	Factor   string
}
