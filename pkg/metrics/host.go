package metrics

import (
	"github.com/JongHoB/mqsim-summary/pkg/results"
)

const hostFlowPath = "Host/Host.IO_Flow"

const bytesPerMiB = 1024.0 * 1024.0

// HostMetrics extracts host-visible I/O metrics: request counts, IOPS,
// bandwidth (with derived MiB/s variants) and latency. MQSim reports
// bandwidth in bytes per second. The derived end-to-end latency column
// assumes the raw delay unit is microseconds; callers needing other units
// must rescale downstream, which is why the assumption is spelled out in the
// column name.
func HostMetrics(doc *results.Document) Row {
	out := Row{}
	host := doc.FindPath(hostFlowPath)
	if host == nil {
		return out
	}

	out["host_Request_Count"] = intOrNil(host.IntChild("Request_Count"))
	out["host_Read_Request_Count"] = intOrNil(host.IntChild("Read_Request_Count"))
	out["host_Write_Request_Count"] = intOrNil(host.IntChild("Write_Request_Count"))

	out["host_IOPS"] = floatOrNil(host.FloatChild("IOPS"))
	out["host_Read_IOPS"] = floatOrNil(host.FloatChild("Read_IOPS"))
	out["host_Write_IOPS"] = floatOrNil(host.FloatChild("Write_IOPS"))

	bwTotal, okTotal := host.FloatChild("Bandwidth")
	bwRead, okRead := host.FloatChild("Read_Bandwidth")
	bwWrite, okWrite := host.FloatChild("Write_Bandwidth")

	out["host_BW_Bytes_per_s"] = floatOrNil(bwTotal, okTotal)
	out["host_Read_BW_Bytes_per_s"] = floatOrNil(bwRead, okRead)
	out["host_Write_BW_Bytes_per_s"] = floatOrNil(bwWrite, okWrite)

	if okTotal {
		out["host_BW_MiB_per_s"] = bwTotal / bytesPerMiB
	}
	if okRead {
		out["host_Read_BW_MiB_per_s"] = bwRead / bytesPerMiB
	}
	if okWrite {
		out["host_Write_BW_MiB_per_s"] = bwWrite / bytesPerMiB
	}

	out["host_Device_Response_Time"] = floatOrNil(host.FloatChild("Device_Response_Time"))

	delay, okDelay := host.FloatChild("End_to_End_Request_Delay")
	out["host_End_to_End_Request_Delay"] = floatOrNil(delay, okDelay)
	if okDelay {
		out["host_E2E_Latency_ms_assuming_us"] = delay / 1000.0
	}

	return out
}
