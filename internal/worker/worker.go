package worker

import "context"

// Worker - фоновый обработчик. Start блокирует до остановки.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
