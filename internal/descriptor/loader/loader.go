package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-acfgen/pkg/descriptor"
)

// maxDescriptorBytes caps descriptor payloads. Field group exports run a few
// kilobytes; anything in the megabytes is the wrong file.
const maxDescriptorBytes = 4 << 20

// Loader implements descriptor.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ descriptor.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options descriptor.LoaderOptions) descriptor.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src descriptor.Source) (descriptor.Document, error) {
	if src == nil {
		return descriptor.Document{}, errors.New("descriptor loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case descriptor.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case descriptor.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case descriptor.SourceKindURL:
		if !l.allowHTTP {
			return descriptor.Document{}, errors.New("descriptor loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("descriptor loader: unsupported source kind")
	}
	if err != nil {
		return descriptor.Document{}, err
	}

	return descriptor.NewDocument(src, data)
}
