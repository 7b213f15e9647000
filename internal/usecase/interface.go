package usecase

// Appender is the journal dependency of the transform use cases. The
// usecase layer depends on this interface, not on the concrete writer.
//
//go:generate mockgen -destination=mocks/mock_appender.go -source=interface.go Appender
type Appender interface {
	Append(record map[string]any) error
}
