package loader

import (
	"context"

	"github.com/folhaponto/usuarios-migration/internal/processor"
)

// Loader writes a batch of rendered records to its destination
type Loader interface {
	Connect(ctx context.Context) error
	Load(ctx context.Context, records processor.RecordBatcher) error
	Close(ctx context.Context) error
}
