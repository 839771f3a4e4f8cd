package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("descriptor loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("descriptor loader: fs is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, err
	}
	if len(data) > maxDescriptorBytes {
		return nil, fmt.Errorf("descriptor loader: %s exceeds the %d byte descriptor limit", name, maxDescriptorBytes)
	}
	return data, nil
}
