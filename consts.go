package tracelog

const (
	emptyString = ""

	// recordTimeFormat is the timestamp layout used inside leveled records.
	recordTimeFormat = "2006-01-02 15:04:05"

	stackTraceHeader = "====== Stack Trace ======"
	stackTraceFooter = "========================="

	msgInitialised = "Log initialised"
	msgShutdown    = "Log shutting down"

	beginPrefix = "BEGIN - "
	endPrefix   = "END - "
)

const (
	errMsgNilService    = "logger service is nil"
	errMsgNilConfig     = "logging config is nil"
	errMsgConfigInvalid = "logging configuration is invalid"
	errMsgNoChannels    = "no logging channels enabled"
)
