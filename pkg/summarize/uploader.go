package summarize

import (
	"github.com/pkg/errors"
)

// Uploader pushes a finished summary into external media (like a database).
type Uploader interface {
	SendSummary(runID string, summary *Summary) error
}

// Publish sends the summary to every uploader, stopping at the first failure.
// Publishing happens after the output artifact is written, so a failed upload
// never loses the batch result.
func Publish(runID string, summary *Summary, uploaders ...Uploader) error {
	for _, uploader := range uploaders {
		if err := uploader.SendSummary(runID, summary); err != nil {
			return errors.Wrap(err, "uploading summary failed")
		}
	}
	return nil
}
