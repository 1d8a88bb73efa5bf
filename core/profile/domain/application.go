package domain

// NewApp wires the command and query handlers to their storage ports.
func NewApp(reader ProfileReadStore, writer ProfileWriteStore) *Application {
	return &Application{reader: reader, writer: writer}
}
