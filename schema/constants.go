package schema

// Custom string types for type safety.
type (
	// Column represents a named column in the opportunity dataset.
	Column string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshot caching.
	DatabaseBackend string
)

// Required columns of the opportunity dataset.
const (
	ColOpportunityID      Column = "OpportunityID"
	ColOwner              Column = "Owner"
	ColRole               Column = "Role"
	ColRegion             Column = "Region"
	ColCreatedDate        Column = "CreatedDate"
	ColCloseDate          Column = "CloseDate"
	ColStage              Column = "Stage"
	ColAmount             Column = "Amount"
	ColSource             Column = "Source"
	ColLeadSourceCategory Column = "LeadSourceCategory"
)

// Optional derived columns. Accepted on ingest for compatibility with exports
// that carry them, but always recomputed from the raw fields.
const (
	ColQualifiedPipeQTD   Column = "QualifiedPipeQTD"
	ColLateStageAmount    Column = "LateStageAmount"
	ColAvgAge             Column = "AvgAge"
	ColStage0Age          Column = "Stage0Age"
	ColStage0Count        Column = "Stage0Count"
	ColPipelineCreatedQTD Column = "PipelineCreatedQTD"
	ColPipelineTargetQTD  Column = "PipelineTargetQTD"
)

// RequiredColumns returns the required column contract in canonical order.
func RequiredColumns() []Column {
	return []Column{
		ColOpportunityID,
		ColOwner,
		ColRole,
		ColRegion,
		ColCreatedDate,
		ColCloseDate,
		ColStage,
		ColAmount,
		ColSource,
		ColLeadSourceCategory,
	}
}

// DerivedColumns returns the optional derived columns in canonical order.
func DerivedColumns() []Column {
	return []Column{
		ColQualifiedPipeQTD,
		ColLateStageAmount,
		ColAvgAge,
		ColStage0Age,
		ColStage0Count,
		ColPipelineCreatedQTD,
		ColPipelineTargetQTD,
	}
}

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgres"
	NoneBackend       DatabaseBackend = "none"
)

// DateFormat is the wire format for CreatedDate and CloseDate cells.
const DateFormat = "2006-01-02"

// TargetStretchFactor is the fixed stretch-target convention: the QTD pipeline
// target for an owner is 120% of the pipeline they created this quarter.
const TargetStretchFactor = 1.20

// NoDataSource is the sentinel key used in the source breakdown when the
// dataset has no rows, so presentation layers never render an empty chart.
const NoDataSource = "No Data"
