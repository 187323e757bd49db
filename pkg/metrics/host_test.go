package metrics

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/JongHoB/mqsim-summary/pkg/results"
)

func parseDocument(t *testing.T, data string) *results.Document {
	doc, err := results.Parse([]byte(data))
	if err != nil {
		t.Fatalf("parsing test document failed: %v", err)
	}
	return doc
}

func TestHostMetrics(t *testing.T) {
	Convey("Given a result document with a host I/O flow", t, func() {
		doc := parseDocument(t, `<MQSim_Results>
  <Host>
    <Host.IO_Flow Name="flow.0">
      <Request_Count>1000</Request_Count>
      <Read_Request_Count>700</Read_Request_Count>
      <Write_Request_Count>300</Write_Request_Count>
      <IOPS>50000</IOPS>
      <Read_IOPS>35000</Read_IOPS>
      <Write_IOPS>15000</Write_IOPS>
      <Bandwidth>2097152</Bandwidth>
      <Read_Bandwidth>1048576</Read_Bandwidth>
      <Device_Response_Time>120.5</Device_Response_Time>
      <End_to_End_Request_Delay>1500</End_to_End_Request_Delay>
    </Host.IO_Flow>
  </Host>
</MQSim_Results>`)

		row := HostMetrics(doc)

		Convey("Counters and IOPS pass through", func() {
			So(row["host_Request_Count"], ShouldEqual, int64(1000))
			So(row["host_Read_Request_Count"], ShouldEqual, int64(700))
			So(row["host_Write_Request_Count"], ShouldEqual, int64(300))
			So(row["host_IOPS"], ShouldEqual, 50000.0)
		})

		Convey("Bandwidth is exported raw and converted to MiB/s", func() {
			So(row["host_BW_Bytes_per_s"], ShouldEqual, 2097152.0)
			So(row["host_BW_MiB_per_s"], ShouldEqual, 2.0)
			So(row["host_Read_BW_MiB_per_s"], ShouldEqual, 1.0)
		})

		Convey("A missing bandwidth leaves both raw and derived cells out", func() {
			So(row["host_Write_BW_Bytes_per_s"], ShouldBeNil)
			So(row, ShouldNotContainKey, "host_Write_BW_MiB_per_s")
		})

		Convey("Latency is exported raw and scaled to milliseconds", func() {
			So(row["host_Device_Response_Time"], ShouldEqual, 120.5)
			So(row["host_End_to_End_Request_Delay"], ShouldEqual, 1500.0)
			So(row["host_E2E_Latency_ms_assuming_us"], ShouldEqual, 1.5)
		})
	})

	Convey("A document without a host I/O flow yields an empty row", t, func() {
		doc := parseDocument(t, `<MQSim_Results><SSDDevice/></MQSim_Results>`)

		So(HostMetrics(doc), ShouldBeEmpty)
	})

	Convey("A host flow without a delay derives no latency column", t, func() {
		doc := parseDocument(t, `<MQSim_Results>
  <Host>
    <Host.IO_Flow Name="flow.0">
      <Request_Count>10</Request_Count>
    </Host.IO_Flow>
  </Host>
</MQSim_Results>`)

		row := HostMetrics(doc)
		So(row["host_Request_Count"], ShouldEqual, int64(10))
		So(row["host_End_to_End_Request_Delay"], ShouldBeNil)
		So(row, ShouldNotContainKey, "host_E2E_Latency_ms_assuming_us")
	})
}
