// mqsim-summary scans a directory of MQSim XML result files (wl_*.xml) and
// writes a summary CSV with one row per result file: host-visible I/O
// metrics, FTL/CMT and GC statistics, TSU transaction statistics per class,
// per-chip activity fractions and a relative energy-per-I/O index.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/JongHoB/mqsim-summary/pkg/conf"
	"github.com/JongHoB/mqsim-summary/pkg/metrics"
	"github.com/JongHoB/mqsim-summary/pkg/summarize"
	"github.com/JongHoB/mqsim-summary/pkg/summarize/uploaders"
	"github.com/JongHoB/mqsim-summary/pkg/utils/errutil"
	"github.com/JongHoB/mqsim-summary/pkg/utils/uuid"
	"github.com/JongHoB/mqsim-summary/pkg/visualization"
)

var (
	inputDirFlag    = conf.NewDirFlag("input_dir", "Directory containing MQSim result files (wl_*.xml)", ".")
	outputCSVFlag   = conf.NewStringFlag("output_csv", "Path of the output CSV file", "mqsim_summary.csv")
	parallelismFlag = conf.NewIntFlag("parallelism", "Number of result files summarized concurrently (0 = number of CPUs)", 0)

	previewFlag        = conf.NewBoolFlag("preview", "Render a preview of the summary table on stdout", false)
	previewColumnsFlag = conf.NewIntFlag("preview_columns", "Number of leading columns shown in the preview table", 8)

	cassandraUploadFlag = conf.NewBoolFlag("cassandra_upload", "Upload summary rows to Cassandra", false)

	powerExecFlag     = conf.NewFloatFlag("power_exec", "Relative chip power weight while executing flash commands", metrics.DefaultPowerModel().Exec)
	powerDataXferFlag = conf.NewFloatFlag("power_dataxfer", "Relative chip power weight during data transfer", metrics.DefaultPowerModel().DataXfer)
	powerOverlapFlag  = conf.NewFloatFlag("power_overlap", "Relative chip power weight when transfer and execution overlap", metrics.DefaultPowerModel().Overlap)
	powerIdleFlag     = conf.NewFloatFlag("power_idle", "Relative chip power weight while idle", metrics.DefaultPowerModel().Idle)
)

func main() {
	conf.SetAppName("mqsim-summary")
	conf.SetHelp("Summarizes MQSim XML result files into a single CSV table.")
	err := conf.ParseFlags()
	errutil.CheckWithContext(err, "Cannot parse command line flags")

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.100"})
	logrus.SetLevel(conf.LogLevel())
	logrus.SetOutput(os.Stderr)

	runID := uuid.New()
	logrus.Info("Starting summary run ", runID)

	summary, err := summarize.Run(summarize.Config{
		InputDir: inputDirFlag.Value(),
		PowerModel: metrics.PowerModel{
			Exec:     powerExecFlag.Value(),
			DataXfer: powerDataXferFlag.Value(),
			Overlap:  powerOverlapFlag.Value(),
			Idle:     powerIdleFlag.Value(),
		},
		Parallelism: parallelismFlag.Value(),
		// A bar would interleave with per-file log lines on verbose runs.
		Progress: conf.LogLevel() == logrus.ErrorLevel && !previewFlag.Value(),
	})
	errutil.CheckWithContext(err, "Summarizing result files failed")

	outputPath := outputCSVFlag.Value()
	output, err := os.Create(outputPath)
	errutil.CheckWithContext(err, "Cannot create output CSV file")
	err = summary.WriteCSV(output)
	errutil.CheckWithContext(err, "Writing output CSV failed")
	err = output.Close()
	errutil.CheckWithContext(err, "Closing output CSV failed")

	fmt.Printf("Wrote summary for %d MQSim result files to %s\n", len(summary.Records()), outputPath)

	if previewFlag.Value() {
		drawPreview(summary, previewColumnsFlag.Value())
	}

	if cassandraUploadFlag.Value() {
		cassandra := uploaders.NewCassandra(uploaders.CassandraConfigFromFlags())
		err = cassandra.Connect()
		errutil.CheckWithContext(err, "Cannot connect to Cassandra cluster")
		err = summarize.Publish(runID, summary, cassandra)
		errutil.CheckWithContext(err, "Cannot upload summary to Cassandra")
		logrus.Info("Uploaded summary rows for run ", runID)
	}
}

func drawPreview(summary *summarize.Summary, columns int) {
	headers := summary.Header()
	if columns > 0 && len(headers) > columns {
		headers = headers[:columns]
	}
	data := [][]string{}
	for _, row := range summary.Rows() {
		if len(row) > len(headers) {
			row = row[:len(headers)]
		}
		data = append(data, row)
	}
	visualization.NewTable(headers, data).Draw(os.Stdout)
}
