package restyutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

// DebugDirEnv names the directory HTTP exchanges are dumped into. When
// unset, dumping is disabled.
const DebugDirEnv = "COURTSIDE_HTTP_DEBUG_DIR"

type Output interface {
	Write(id string, contents string)
}

type FilesystemOutput struct {
	directory string
}

func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		return FilesystemOutput{}, err
	}
	return FilesystemOutput{directory: dir}, nil
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id+".txt"), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write http exchange dump", "id", id, "err", err)
	}
}

// OutputFromEnv returns a filesystem output rooted at DebugDirEnv, or
// nil when the variable is unset.
func OutputFromEnv() Output {
	dir, ok := os.LookupEnv(DebugDirEnv)
	if !ok || dir == "" {
		return nil
	}
	out, err := NewFilesystemOutput(dir)
	if err != nil {
		slog.Warn("failed to create http debug output", "dir", dir, "err", err)
		return nil
	}
	return out
}

// AttachDebugOutput dumps every completed exchange on the client to the
// given output. A nil output makes this a no-op.
func AttachDebugOutput(client *resty.Client, output Output) {
	if output == nil {
		return
	}
	var idcounter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		id := strconv.FormatUint(atomic.AddUint64(&idcounter, 1), 10)
		output.Write(id, FormatExchange(res))
		return nil
	})
}
