package i

// Logger is the leveled logger shared across services.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
