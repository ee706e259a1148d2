package tracelog

// Logger is the interface satisfied by *Service. Consumers that only
// emit records and manage scopes should depend on this rather than the
// concrete type.
type Logger interface {
	Write(message string)
	Log(level Level, message string) bool
	Fatal(message string) bool
	Error(message string) bool
	Warn(message string) bool
	Info(message string) bool
	Debug(message string) bool

	Push(label string) bool
	Pop() string
	Peek() (string, error)
	Scope(label string) func()
}

var _ Logger = (*Service)(nil)
