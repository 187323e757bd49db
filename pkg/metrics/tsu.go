package metrics

import (
	"strings"

	"github.com/JongHoB/mqsim-summary/pkg/results"
)

const tsuPath = "SSDDevice/SSDDevice.TSU"

// tsuClasses are the transaction classes retained from queue names; a queue
// named "User_Read_TR_Queue" belongs to class "User". Other prefixes are
// ignored.
var tsuClasses = []string{"User", "GC", "Mapping"}

// tsuAccumulator gathers per-class queue statistics over one extraction call.
type tsuAccumulator struct {
	queues       int64
	enqueued     int64
	dequeued     int64
	waitWeighted float64 // per-queue average wait weighted by enqueued count
	lengthSum    float64
}

// TSUMetrics extracts transaction-scheduling-unit statistics per transaction
// class. The average waiting time is weighted by each queue's enqueued count,
// not a naive mean of per-queue averages. A class that appears in the
// document reports its sums even when they are zero, plus a Queue_Count
// presence signal; a class with no queues at all reports nil throughout.
func TSUMetrics(doc *results.Document) Row {
	out := Row{}
	tsu := doc.FindPath(tsuPath)
	if tsu == nil {
		return out
	}

	accumulators := map[string]*tsuAccumulator{}
	for _, class := range tsuClasses {
		accumulators[class] = &tsuAccumulator{}
	}

	for _, queue := range tsu.Children {
		name, _ := queue.Attr("Name")
		class := name
		if separator := strings.Index(name, "_"); separator >= 0 {
			class = name[:separator]
		}
		accumulator, retained := accumulators[class]
		if !retained {
			continue
		}

		enqueued, _ := queue.IntAttr("No_Of_Transactions_Enqueued")
		dequeued, _ := queue.IntAttr("No_Of_Transactions_Dequeued")
		avgWait, _ := queue.FloatAttr("Avg_Transaction_Waiting_Time")
		avgLength, _ := queue.FloatAttr("Avg_Queue_Length")

		accumulator.queues++
		accumulator.enqueued += enqueued
		accumulator.dequeued += dequeued
		accumulator.waitWeighted += avgWait * float64(enqueued)
		accumulator.lengthSum += avgLength
	}

	for _, class := range tsuClasses {
		accumulator := accumulators[class]

		if accumulator.queues == 0 {
			out["tsu_"+class+"_Queue_Count"] = nil
			out["tsu_"+class+"_Transactions_Enqueued"] = nil
			out["tsu_"+class+"_Transactions_Dequeued"] = nil
			out["tsu_"+class+"_Avg_Waiting_Time"] = nil
			out["tsu_"+class+"_Avg_Queue_Length"] = nil
			continue
		}

		out["tsu_"+class+"_Queue_Count"] = accumulator.queues
		out["tsu_"+class+"_Transactions_Enqueued"] = accumulator.enqueued
		out["tsu_"+class+"_Transactions_Dequeued"] = accumulator.dequeued

		if accumulator.enqueued > 0 {
			out["tsu_"+class+"_Avg_Waiting_Time"] = accumulator.waitWeighted / float64(accumulator.enqueued)
		} else {
			out["tsu_"+class+"_Avg_Waiting_Time"] = nil
		}

		out["tsu_"+class+"_Avg_Queue_Length"] = accumulator.lengthSum / float64(accumulator.queues)
	}

	return out
}
