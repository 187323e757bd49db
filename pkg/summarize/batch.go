package summarize

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/JongHoB/mqsim-summary/pkg/metrics"
)

// Config drives one batch run over a directory of result files.
type Config struct {
	// InputDir is scanned (non-recursively) for wl_*.xml result files.
	InputDir   string
	PowerModel metrics.PowerModel
	// Parallelism bounds the number of files summarized concurrently;
	// 0 uses the number of CPUs.
	Parallelism int
	// Progress renders a progress bar over the batch on stdout.
	Progress bool
}

// Run summarizes every result file discovered in the input directory.
// Discovering zero files is fatal for the batch; a file that fails to parse
// is not. Rows are ordered by file name and the header is the sorted union of
// all field names, so output is reproducible regardless of completion order.
func Run(config Config) (*Summary, error) {
	files, err := discoverResultFiles(config.InputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no wl_*.xml result files found in %q", config.InputDir)
	}
	sort.Strings(files)

	logrus.Infof("Summarizing %d result files from %q", len(files), config.InputDir)

	workers := config.Parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(files) {
		workers = len(files)
	}

	var bar *pb.ProgressBar
	if config.Progress {
		bar = pb.StartNew(len(files))
	}

	// Records land at the index of their file, keeping the sorted file
	// order independent of which worker finishes first.
	records := make([]Record, len(files))
	indexes := make(chan int)
	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				records[i] = SummarizeFile(files[i], config.PowerModel)
				if message := records[i].ParseError(); message != "" {
					logrus.Warnf("Result file %q is unparseable: %s", files[i], message)
				} else {
					logrus.Debugf("Summarized %q", files[i])
				}
				if bar != nil {
					bar.Increment()
				}
			}
		}()
	}
	for i := range files {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if bar != nil {
		bar.Finish()
	}

	return NewSummary(records), nil
}

func discoverResultFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading input directory %q failed", dir)
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "wl_") && strings.HasSuffix(strings.ToLower(name), ".xml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}
