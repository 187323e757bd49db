package summarize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/JongHoB/mqsim-summary/pkg/experiment"
	"github.com/JongHoB/mqsim-summary/pkg/metrics"
)

const goodResultDocument = `<?xml version="1.0" encoding="UTF-8"?>
<MQSim_Results>
  <Host>
    <Host.IO_Flow Name="flow.0">
      <Request_Count>100</Request_Count>
      <Read_Request_Count>60</Read_Request_Count>
      <Write_Request_Count>40</Write_Request_Count>
      <IOPS>50000</IOPS>
      <Bandwidth>1048576</Bandwidth>
      <Device_Response_Time>80</Device_Response_Time>
      <End_to_End_Request_Delay>2000</End_to_End_Request_Delay>
    </Host.IO_Flow>
  </Host>
  <SSDDevice>
    <SSDDevice.FTL
      Issued_Flash_Read_CMD="40"
      Issued_Flash_Program_CMD="20"
      Issued_Flash_Erase_CMD="2"
      Issued_Flash_Read_CMD_For_Mapping="4"
      Total_CMT_Queries="50"
      CMT_Hits="25"
      Total_GC_Executions="3"
      Average_Page_Movement_For_GC="1.5"/>
    <SSDDevice.TSU ID="tsu.0">
      <Queue Name="User_Read_TR_Queue" No_Of_Transactions_Enqueued="10" No_Of_Transactions_Dequeued="10"
             Avg_Transaction_Waiting_Time="5.0" Avg_Queue_Length="1.0"/>
      <Queue Name="Mapping_TR_Queue" No_Of_Transactions_Enqueued="4" No_Of_Transactions_Dequeued="4"
             Avg_Transaction_Waiting_Time="2.0" Avg_Queue_Length="0.5"/>
    </SSDDevice.TSU>
    <SSDDevice.FlashChips ID="chip.0.0"
      Fraction_of_Time_in_Execution="0.5"
      Fraction_of_Time_in_DataXfer="0.25"
      Fraction_of_Time_in_DataXfer_and_Execution="0.0"
      Fraction_of_Time_Idle="0.25"/>
  </SSDDevice>
</MQSim_Results>`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file %q failed: %v", path, err)
	}
	return path
}

func TestSummarizeFile(t *testing.T) {
	Convey("While summarizing a single result file", t, func() {
		dir := t.TempDir()
		model := metrics.DefaultPowerModel()

		Convey("A well-formed file combines identity and all extractor fields", func() {
			path := writeTestFile(t, dir, "wl_ioqd32_4kb_randwrite_scenario_1.xml", goodResultDocument)

			record := SummarizeFile(path, model)

			So(record.ParseError(), ShouldEqual, "")
			So(record.Identity.Category, ShouldEqual, experiment.CategoryIOQD)
			So(record.Fields["exp_name"], ShouldEqual, "wl_ioqd32_4kb_randwrite_scenario_1")
			So(record.Fields["io_queue_depth"], ShouldEqual, int64(32))
			So(record.Fields["host_Request_Count"], ShouldEqual, int64(100))
			So(record.Fields["host_BW_MiB_per_s"], ShouldEqual, 1.0)
			So(record.Fields["ftl_Total_Flash_Read_CMD"], ShouldEqual, int64(40))
			So(record.Fields["ftl_CMT_Hit_Rate"], ShouldEqual, 0.5)
			So(record.Fields["tsu_User_Avg_Waiting_Time"], ShouldEqual, 5.0)
			So(record.Fields["tsu_GC_Transactions_Enqueued"], ShouldBeNil)
			So(record.Fields["chip_Avg_Fraction_Exec"], ShouldEqual, 0.5)
			// 0.5*1.0 + 0.25*0.8 + 0.0*1.1 + 0.25*0.3 = 0.775 over 100 requests.
			So(record.Fields["energy_Energy_per_IO_Index"], ShouldAlmostEqual, 0.00775)
		})

		Convey("A malformed file keeps identity and records the parse error", func() {
			path := writeTestFile(t, dir, "wl_cache128MB_4kb_randread_scenario_1.xml", "<MQSim_Results><broken>")

			record := SummarizeFile(path, model)

			So(record.ParseError(), ShouldNotEqual, "")
			So(record.Identity.Category, ShouldEqual, experiment.CategoryCache)
			So(record.Fields["exp_name"], ShouldEqual, "wl_cache128MB_4kb_randread_scenario_1")
			So(*record.Identity.CacheSize, ShouldEqual, "128MB")
			for name := range record.Fields {
				if name == "parse_error" {
					continue
				}
				So(isIdentityField(name), ShouldBeTrue)
			}
		})

		Convey("A missing file keeps identity and records the open failure", func() {
			record := SummarizeFile(filepath.Join(dir, "wl_ioqd8_4kb_randread_scenario_9.xml"), model)

			So(record.ParseError(), ShouldContainSubstring, "opening result file")
			So(record.Identity.Category, ShouldEqual, experiment.CategoryIOQD)
		})

		Convey("Extractor field prefixes stay disjoint", func() {
			path := writeTestFile(t, dir, "wl_ch4_chip2_4kb_randread_scenario_1.xml", goodResultDocument)

			record := SummarizeFile(path, model)

			prefixes := []string{"host_", "ftl_", "tsu_", "chip_", "energy_"}
			for name := range record.Fields {
				if isIdentityField(name) || name == "parse_error" {
					continue
				}
				owners := 0
				for _, prefix := range prefixes {
					if strings.HasPrefix(name, prefix) {
						owners++
					}
				}
				So(owners, ShouldEqual, 1)
			}
		})
	})
}

func isIdentityField(name string) bool {
	switch name {
	case "exp_name", "category", "cache_size", "channels", "chips_per_channel",
		"io_queue_depth", "block_size", "access_pattern", "tpcc_variant":
		return true
	}
	return false
}
